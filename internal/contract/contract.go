// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"github.com/svisuals/seq4d/schema"
)

// ScheduleStore exposes the read-only task schedule the resolver runs over.
// Exactly one adapter implements it; the core never probes for alternate
// shapes at runtime.
type ScheduleStore interface {
	// Name returns a human-readable identifier for the schedule.
	Name() string

	// RootTasks returns the top-level tasks. Nested tasks hang off
	// Task.Children; the resolver walks them depth-first.
	RootTasks() []schema.Task

	// GroupStack returns the ordered enable-stack recorded with the schedule.
	GroupStack() schema.GroupStack

	// InlineGroups returns profile groups embedded in the schedule file, if any.
	InlineGroups() []schema.ProfileGroup

	// Skipped returns tasks the store loaded but could not date, such as
	// tasks with malformed date strings. They stay in the tree without
	// dates and surface in the resolution skip report.
	Skipped() []schema.SkippedTask
}

// ProfileStore resolves named profile groups. Implementations must always be
// able to serve the DEFAULT group.
type ProfileStore interface {
	// Group returns the named group and whether it exists.
	Group(name string) (schema.ProfileGroup, bool)

	// GroupNames returns all known group names.
	GroupNames() []string
}

// RendererAdapter is the fixed surface each rendering backend implements
// once. The core hands every backend the same record stream and drives it
// through these methods; it never guesses backend-specific field identifiers.
type RendererAdapter interface {
	// Name identifies the backend in logs and agreement reports.
	Name() string

	// LoadRecords ingests a full resolution pass. Called once per pass.
	LoadRecords(window schema.ScheduleWindow, records []schema.ResolvedFrameRecord) error

	// SetCurrentFrame positions the backend at a frame.
	SetCurrentFrame(frame int)

	// SetSpeed applies the playback speed multiplier.
	SetSpeed(speed float64)

	// VisibleAt reports the backend's visibility decision for a product at
	// the current frame. Both backends must agree exactly for every frame.
	VisibleAt(productID string) bool

	// RevealAt reports the fraction of a product's geometry revealed at the
	// current frame, in [0, 1]. Only growth-effect records reveal gradually;
	// everything else is fully formed. Agreement must be exact here too.
	RevealAt(productID string) float64
}

// StoreStatus describes the persistence layer for status displays.
type StoreStatus struct {
	Backend  schema.DatabaseBackend `json:"backend"`
	Location string                 `json:"location"`
	Groups   int                    `json:"groups"`
	Profiles int                    `json:"profiles"`
}

// GroupStore is the durable persistence surface for profile groups.
type GroupStore interface {
	// SaveGroup inserts or replaces a group wholesale.
	SaveGroup(group schema.ProfileGroup) error

	// LoadGroup returns the named group; the boolean is false when absent.
	LoadGroup(name string) (schema.ProfileGroup, bool, error)

	// ListGroups returns all persisted group names.
	ListGroups() ([]string, error)

	// DeleteGroup removes a group by name.
	DeleteGroup(name string) error

	// Status returns status information about the store.
	Status() (StoreStatus, error)

	// Clear removes all persisted groups.
	Clear() error

	// Close closes the underlying connection.
	Close() error
}
