package schema

// defaultColors holds the canonical start/active/end colors for each DEFAULT
// profile name.
var defaultColors = map[string][3]Color{
	"CONSTRUCTION": {{1, 1, 1, 0}, {0, 1, 0, 1}, {0.3, 1, 0.3, 1}},
	"INSTALLATION": {{1, 1, 1, 0}, {0, 1, 0, 1}, {0.3, 0.8, 0.5, 1}},
	"DEMOLITION":   {{1, 1, 1, 1}, {1, 0, 0, 1}, {0, 0, 0, 0}},
	"REMOVAL":      {{1, 1, 1, 1}, {1, 0, 0, 1}, {0, 0, 0, 0}},
	"DISPOSAL":     {{1, 1, 1, 1}, {1, 0, 0, 1}, {0, 0, 0, 0}},
	"DISMANTLE":    {{1, 1, 1, 1}, {1, 0, 0, 1}, {0, 0, 0, 0}},
	"OPERATION":    {{1, 1, 1, 1}, {0, 0, 1, 1}, {1, 1, 1, 1}},
	"MAINTENANCE":  {{1, 1, 1, 1}, {0, 0, 1, 1}, {1, 1, 1, 1}},
	"ATTENDANCE":   {{1, 1, 1, 1}, {0, 0, 1, 1}, {1, 1, 1, 1}},
	"RENOVATION":   {{1, 1, 1, 1}, {0, 0, 1, 1}, {0.9, 0.9, 0.9, 1}},
	"LOGISTIC":     {{1, 1, 1, 1}, {1, 1, 0, 1}, {1, 0.8, 0.3, 1}},
	"MOVE":         {{1, 1, 1, 1}, {1, 1, 0, 1}, {0.8, 0.6, 0, 1}},
	NotDefinedProfile:  {{0.7, 0.7, 0.7, 1}, {0.5, 0.5, 0.5, 1}, {0.3, 0.3, 0.3, 1}},
	UserDefinedProfile: {{0.7, 0.7, 0.7, 1}, {0.5, 0.5, 0.5, 1}, {0.3, 0.3, 0.3, 1}},
}

// DefaultProfileGroup returns the canonical DEFAULT group with one profile
// per categorical task type. The set is fixed and never empty; removal-class
// profiles hide their products at the end.
func DefaultProfileGroup() ProfileGroup {
	profiles := make([]AppearanceProfile, 0, len(CanonicalProfileNames))
	for _, name := range CanonicalProfileNames {
		colors := defaultColors[name]
		disappears := IsRemovalClass(name)
		profiles = append(profiles, AppearanceProfile{
			Name:                       name,
			ConsiderStart:              true,
			ConsiderActive:             true,
			ConsiderEnd:                true,
			HideAtEnd:                  disappears,
			Effect:                     InstantEffect,
			StartColor:                 colors[0],
			ActiveColor:                colors[1],
			EndColor:                   colors[2],
			UseStartOriginalColor:      false,
			UseActiveOriginalColor:     false,
			UseEndOriginalColor:        !disappears,
			ActiveTransparencyInterpol: 1.0,
		})
	}
	return ProfileGroup{Name: DefaultGroupName, Profiles: profiles}
}
