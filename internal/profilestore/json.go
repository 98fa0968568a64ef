// Package profilestore persists appearance profile groups and serves them to
// the resolver, always including the built-in DEFAULT group.
package profilestore

import (
	"encoding/json"
	"fmt"

	"github.com/svisuals/seq4d/schema"
)

// rawProfile mirrors the exchange format with pointer fields so absent keys
// are distinguishable from explicit zero values and can take their documented
// defaults.
type rawProfile struct {
	Name                       string            `json:"name"`
	ConsiderStart              *bool             `json:"consider_start"`
	ConsiderActive             *bool             `json:"consider_active"`
	ConsiderEnd                *bool             `json:"consider_end"`
	HideAtEnd                  *bool             `json:"hide_at_end"`
	Effect                     schema.EffectKind `json:"effect"`
	StartColor                 *schema.Color     `json:"start_color"`
	ActiveColor                *schema.Color     `json:"active_color"`
	EndColor                   *schema.Color     `json:"end_color"`
	UseStartOriginalColor      *bool             `json:"use_start_original_color"`
	UseActiveOriginalColor     *bool             `json:"use_active_original_color"`
	UseEndOriginalColor        *bool             `json:"use_end_original_color"`
	StartTransparency          *float64          `json:"start_transparency"`
	ActiveStartTransparency    *float64          `json:"active_start_transparency"`
	ActiveFinishTransparency   *float64          `json:"active_finish_transparency"`
	ActiveTransparencyInterpol *float64          `json:"active_transparency_interpol"`
	EndTransparency            *float64          `json:"end_transparency"`
}

type rawGroup struct {
	Name     string       `json:"name"`
	Profiles []rawProfile `json:"profiles"`
}

// EncodeGroup serializes a group to its JSON exchange form. Encoding a group
// and decoding it back yields an identical group.
func EncodeGroup(group schema.ProfileGroup) ([]byte, error) {
	payload, err := json.Marshal(group)
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile group %q: %w", group.Name, err)
	}
	return payload, nil
}

// DecodeGroup parses a group from JSON, filling absent fields with their
// defaults: consider flags true, use_end_original_color true, transparencies
// 0 with interpolation 1, and hide_at_end on for removal-class names.
func DecodeGroup(payload []byte) (schema.ProfileGroup, error) {
	var raw rawGroup
	if err := json.Unmarshal(payload, &raw); err != nil {
		return schema.ProfileGroup{}, fmt.Errorf("failed to decode profile group: %w", err)
	}
	if raw.Name == "" {
		return schema.ProfileGroup{}, fmt.Errorf("profile group is missing a name")
	}

	group := schema.ProfileGroup{Name: raw.Name}
	seen := make(map[string]bool, len(raw.Profiles))
	for _, rp := range raw.Profiles {
		if rp.Name == "" {
			return schema.ProfileGroup{}, fmt.Errorf("group %q has a profile without a name", raw.Name)
		}
		if seen[rp.Name] {
			return schema.ProfileGroup{}, fmt.Errorf("group %q has duplicate profile %q", raw.Name, rp.Name)
		}
		seen[rp.Name] = true
		group.Profiles = append(group.Profiles, fillDefaults(rp))
	}
	return group, nil
}

// fillDefaults materializes a profile from its raw form.
func fillDefaults(rp rawProfile) schema.AppearanceProfile {
	p := schema.AppearanceProfile{
		Name:                       rp.Name,
		ConsiderStart:              boolOr(rp.ConsiderStart, true),
		ConsiderActive:             boolOr(rp.ConsiderActive, true),
		ConsiderEnd:                boolOr(rp.ConsiderEnd, true),
		HideAtEnd:                  boolOr(rp.HideAtEnd, schema.IsRemovalClass(rp.Name)),
		Effect:                     rp.Effect,
		StartColor:                 colorOr(rp.StartColor, schema.Color{1, 1, 1, 1}),
		ActiveColor:                colorOr(rp.ActiveColor, schema.Color{1, 1, 0, 1}),
		EndColor:                   colorOr(rp.EndColor, schema.Color{0, 1, 0, 1}),
		UseStartOriginalColor:      boolOr(rp.UseStartOriginalColor, false),
		UseActiveOriginalColor:     boolOr(rp.UseActiveOriginalColor, false),
		UseEndOriginalColor:        boolOr(rp.UseEndOriginalColor, true),
		StartTransparency:          floatOr(rp.StartTransparency, 0),
		ActiveStartTransparency:    floatOr(rp.ActiveStartTransparency, 0),
		ActiveFinishTransparency:   floatOr(rp.ActiveFinishTransparency, 0),
		ActiveTransparencyInterpol: floatOr(rp.ActiveTransparencyInterpol, 1),
		EndTransparency:            floatOr(rp.EndTransparency, 0),
	}
	if p.Effect == "" {
		p.Effect = schema.InstantEffect
	}
	return p
}

func boolOr(v *bool, fallback bool) bool {
	if v != nil {
		return *v
	}
	return fallback
}

func floatOr(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}

func colorOr(v *schema.Color, fallback schema.Color) schema.Color {
	if v != nil {
		return *v
	}
	return fallback
}
