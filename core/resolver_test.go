package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/svisuals/seq4d/schema"
)

// fakeProfileStore serves groups from a map, always including DEFAULT.
type fakeProfileStore struct {
	groups map[string]schema.ProfileGroup
}

func newFakeProfileStore(groups ...schema.ProfileGroup) *fakeProfileStore {
	s := &fakeProfileStore{groups: map[string]schema.ProfileGroup{
		schema.DefaultGroupName: schema.DefaultProfileGroup(),
	}}
	for _, g := range groups {
		s.groups[g.Name] = g
	}
	return s
}

func (s *fakeProfileStore) Group(name string) (schema.ProfileGroup, bool) {
	g, ok := s.groups[name]
	return g, ok
}

func (s *fakeProfileStore) GroupNames() []string {
	names := make([]string, 0, len(s.groups))
	for name := range s.groups {
		names = append(names, name)
	}
	return names
}

func structuralGroup() schema.ProfileGroup {
	return schema.ProfileGroup{
		Name: "Structural",
		Profiles: []schema.AppearanceProfile{
			{Name: "CONSTRUCTION", StartColor: schema.Color{0, 1, 0, 1}},
			{Name: "CUSTOM_PHASE", StartColor: schema.Color{0, 0, 1, 1}},
		},
	}
}

func TestProfileResolverChain(t *testing.T) {
	tests := []struct {
		name        string
		task        schema.Task
		activeGroup string
		expected    string
	}{
		{
			name: "enabled override wins",
			task: schema.Task{
				ID:              "t1",
				CategoricalType: "CONSTRUCTION",
				Overrides: map[string]schema.ProfileOverride{
					"Structural": {Enabled: true, Profile: "CUSTOM_PHASE"},
				},
			},
			activeGroup: "Structural",
			expected:    "CUSTOM_PHASE",
		},
		{
			name: "disabled override falls through to type",
			task: schema.Task{
				ID:              "t2",
				CategoricalType: "CONSTRUCTION",
				Overrides: map[string]schema.ProfileOverride{
					"Structural": {Enabled: false, Profile: "CUSTOM_PHASE"},
				},
			},
			activeGroup: "Structural",
			expected:    "CONSTRUCTION",
		},
		{
			name: "override naming a missing profile falls through",
			task: schema.Task{
				ID:              "t3",
				CategoricalType: "CONSTRUCTION",
				Overrides: map[string]schema.ProfileOverride{
					"Structural": {Enabled: true, Profile: "GONE"},
				},
			},
			activeGroup: "Structural",
			expected:    "CONSTRUCTION",
		},
		{
			name:        "type missing in active group uses DEFAULT",
			task:        schema.Task{ID: "t4", CategoricalType: "DEMOLITION"},
			activeGroup: "Structural",
			expected:    "DEMOLITION",
		},
		{
			name:        "unknown type lands on NOTDEFINED",
			task:        schema.Task{ID: "t5", CategoricalType: "FOO"},
			activeGroup: "Structural",
			expected:    schema.NotDefinedProfile,
		},
		{
			name:        "empty type lands on NOTDEFINED",
			task:        schema.Task{ID: "t6"},
			activeGroup: "Structural",
			expected:    schema.NotDefinedProfile,
		},
		{
			name:        "unknown active group still resolves via DEFAULT",
			task:        schema.Task{ID: "t7", CategoricalType: "CONSTRUCTION"},
			activeGroup: "Missing",
			expected:    "CONSTRUCTION",
		},
	}

	resolver := NewProfileResolver(newFakeProfileStore(structuralGroup()))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := resolver.Resolve(tt.task, tt.activeGroup)
			assert.Equal(t, tt.expected, p.Name)
		})
	}
}

func TestProfileResolverActivateStack(t *testing.T) {
	resolver := NewProfileResolver(newFakeProfileStore(structuralGroup()))

	active, changed := resolver.ActivateStack(schema.GroupStack{
		{Group: "Structural", Enabled: true},
	})
	assert.Equal(t, "Structural", active)
	assert.True(t, changed)
	v1 := resolver.Version()

	// Re-activating the same winner is a no-op.
	active, changed = resolver.ActivateStack(schema.GroupStack{
		{Group: "Structural", Enabled: true},
	})
	assert.Equal(t, "Structural", active)
	assert.False(t, changed)
	assert.Equal(t, v1, resolver.Version())

	// Disabling the entry falls back to DEFAULT and bumps the version.
	active, changed = resolver.ActivateStack(schema.GroupStack{
		{Group: "Structural", Enabled: false},
	})
	assert.Equal(t, schema.DefaultGroupName, active)
	assert.True(t, changed)
	assert.Greater(t, resolver.Version(), v1)
}

func TestProfileResolverCacheFollowsGroup(t *testing.T) {
	resolver := NewProfileResolver(newFakeProfileStore(structuralGroup()))
	task := schema.Task{ID: "t1", CategoricalType: "CUSTOM_PHASE"}

	p := resolver.Resolve(task, "Structural")
	require.Equal(t, "CUSTOM_PHASE", p.Name)

	// Same task under DEFAULT resolves differently: CUSTOM_PHASE is not a
	// canonical profile, so the chain ends at NOTDEFINED.
	p = resolver.Resolve(task, schema.DefaultGroupName)
	assert.Equal(t, schema.NotDefinedProfile, p.Name)

	// And back again, proving the cache was not poisoned across groups.
	p = resolver.Resolve(task, "Structural")
	assert.Equal(t, "CUSTOM_PHASE", p.Name)
}
