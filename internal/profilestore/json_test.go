package profilestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/svisuals/seq4d/schema"
)

func TestDecodeGroupDefaults(t *testing.T) {
	payload := []byte(`{
		"name": "Minimal",
		"profiles": [
			{"name": "CONSTRUCTION"},
			{"name": "DEMOLITION"}
		]
	}`)

	group, err := DecodeGroup(payload)
	require.NoError(t, err)
	assert.Equal(t, "Minimal", group.Name)
	require.Len(t, group.Profiles, 2)

	construction := group.Profiles[0]
	assert.True(t, construction.ConsiderStart)
	assert.True(t, construction.ConsiderActive)
	assert.True(t, construction.ConsiderEnd)
	assert.False(t, construction.HideAtEnd)
	assert.True(t, construction.UseEndOriginalColor)
	assert.False(t, construction.UseStartOriginalColor)
	assert.Equal(t, schema.Color{1, 1, 1, 1}, construction.StartColor)
	assert.Equal(t, schema.Color{1, 1, 0, 1}, construction.ActiveColor)
	assert.Equal(t, schema.Color{0, 1, 0, 1}, construction.EndColor)
	assert.Zero(t, construction.StartTransparency)
	assert.Equal(t, 1.0, construction.ActiveTransparencyInterpol)
	assert.Equal(t, schema.InstantEffect, construction.Effect)

	// Removal-class names default hide_at_end on.
	demolition := group.Profiles[1]
	assert.True(t, demolition.HideAtEnd)
}

func TestDecodeGroupExplicitValuesWin(t *testing.T) {
	payload := []byte(`{
		"name": "Custom",
		"profiles": [
			{
				"name": "DEMOLITION",
				"consider_start": false,
				"hide_at_end": false,
				"use_end_original_color": false,
				"start_transparency": 0.5,
				"effect": "growth"
			}
		]
	}`)

	group, err := DecodeGroup(payload)
	require.NoError(t, err)

	p := group.Profiles[0]
	assert.False(t, p.ConsiderStart)
	assert.False(t, p.HideAtEnd)
	assert.False(t, p.UseEndOriginalColor)
	assert.Equal(t, 0.5, p.StartTransparency)
	assert.Equal(t, schema.GrowthEffect, p.Effect)
}

func TestDecodeGroupRejects(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: `{{`},
		{name: "missing group name", payload: `{"profiles": []}`},
		{name: "unnamed profile", payload: `{"name": "G", "profiles": [{}]}`},
		{name: "duplicate profile", payload: `{"name": "G", "profiles": [{"name": "A"}, {"name": "A"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeGroup([]byte(tt.payload))
			assert.Error(t, err)
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := schema.DefaultProfileGroup()

	payload, err := EncodeGroup(original)
	require.NoError(t, err)

	decoded, err := DecodeGroup(payload)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}
