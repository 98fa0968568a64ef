package profilestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/svisuals/seq4d/schema"
)

func TestCatalogAlwaysServesDefault(t *testing.T) {
	catalog := NewCatalog(nil, nil)

	group, ok := catalog.Group(schema.DefaultGroupName)
	require.True(t, ok)
	assert.Len(t, group.Profiles, len(schema.CanonicalProfileNames))

	names := catalog.GroupNames()
	assert.Equal(t, []string{schema.DefaultGroupName}, names)
}

func TestCatalogInlineShadowsPersisted(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SaveGroup(schema.ProfileGroup{
		Name:     "Structural",
		Profiles: []schema.AppearanceProfile{{Name: "FROM_DB"}},
	}))

	catalog := NewCatalog(store, []schema.ProfileGroup{{
		Name:     "Structural",
		Profiles: []schema.AppearanceProfile{{Name: "FROM_FILE"}},
	}})

	group, ok := catalog.Group("Structural")
	require.True(t, ok)
	require.Len(t, group.Profiles, 1)
	assert.Equal(t, "FROM_FILE", group.Profiles[0].Name)
}

func TestCatalogFallsThroughToStore(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SaveGroup(sampleGroup()))

	catalog := NewCatalog(store, nil)
	group, ok := catalog.Group("Structural")
	require.True(t, ok)
	assert.Len(t, group.Profiles, 2)

	_, ok = catalog.Group("Missing")
	assert.False(t, ok)
}

func TestCatalogIgnoresInlineDefaultOverride(t *testing.T) {
	catalog := NewCatalog(nil, []schema.ProfileGroup{{
		Name:     schema.DefaultGroupName,
		Profiles: []schema.AppearanceProfile{{Name: "HIJACKED"}},
	}})

	group, ok := catalog.Group(schema.DefaultGroupName)
	require.True(t, ok)
	_, found := group.Find("HIJACKED")
	assert.False(t, found)
}

func TestCatalogGroupNames(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SaveGroup(schema.ProfileGroup{Name: "Zeta"}))

	catalog := NewCatalog(store, []schema.ProfileGroup{{Name: "Alpha"}})
	assert.Equal(t, []string{schema.DefaultGroupName, "Alpha", "Zeta"}, catalog.GroupNames())
}
