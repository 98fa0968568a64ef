package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/svisuals/seq4d/schema"
)

func TestColorEffectLabel(t *testing.T) {
	assert.Equal(t, "instant", ColorEffectLabel(schema.InstantEffect, false))
	assert.Equal(t, GrowingValue, ColorEffectLabel(schema.GrowthEffect, false))
	assert.Contains(t, ColorEffectLabel(schema.GrowthEffect, true), GrowingValue)
}

func TestVisibilityLabel(t *testing.T) {
	assert.Equal(t, VisibleValue, VisibilityLabel(true))
	assert.Equal(t, HiddenValue, VisibilityLabel(false))
	assert.Equal(t, VisibleValue, ColorVisibilityLabel(true, false))
}
