package core

import "github.com/svisuals/seq4d/schema"

// VisibilityDecision is the resolved visibility of a product across the
// three frame states. Both renderer backends consume exactly this decision;
// the rules live nowhere else.
type VisibilityDecision struct {
	Before bool
	Active bool
	After  bool
}

// ResolveVisibility decides visibility from the profile and relationship.
//
// Removal-class profiles denote consumption of a pre-existing product: the
// product stands before and during the task and vanishes after it, whatever
// the relationship or the hide_at_end flag says. Produced (output) products
// appear per consider_start and persist unless hide_at_end. Consumed (input)
// products outside the removal class pre-exist and follow hide_at_end.
func ResolveVisibility(profile schema.AppearanceProfile, relationship schema.Relationship) VisibilityDecision {
	switch {
	case schema.IsRemovalClass(profile.Name):
		return VisibilityDecision{Before: true, Active: true, After: false}
	case relationship == schema.OutputRelationship:
		return VisibilityDecision{Before: profile.ConsiderStart, Active: true, After: !profile.HideAtEnd}
	default: // input
		return VisibilityDecision{Before: true, Active: true, After: !profile.HideAtEnd}
	}
}

// At applies the decision at a frame state.
func (d VisibilityDecision) At(state schema.FrameState) bool {
	switch state {
	case schema.BeforeStart:
		return d.Before
	case schema.Active:
		return d.Active
	default:
		return d.After
	}
}
