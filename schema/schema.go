// Package schema has configs, models and constants shared by all parts of seq4d.
package schema

import "time"

// ScheduleWindow is the immutable time window and frame axis for a single
// visualization request. Settings changes produce a new window; an existing
// window is never mutated.
type ScheduleWindow struct {
	Start       time.Time `json:"start"`
	Finish      time.Time `json:"finish"`
	FrameStart  int       `json:"frame_start"`
	TotalFrames int       `json:"total_frames"` // always >= 1
	Speed       float64   `json:"speed"`
}

// FrameEnd returns the last frame of the window's axis.
func (w ScheduleWindow) FrameEnd() int {
	return w.FrameStart + w.TotalFrames
}

// Duration returns the real-time span of the window.
func (w ScheduleWindow) Duration() time.Duration {
	return w.Finish.Sub(w.Start)
}

// DateRange is a start/finish pair for one date source. A zero Start or
// Finish means the source is not populated for the task.
type DateRange struct {
	Start  time.Time `json:"start"`
	Finish time.Time `json:"finish"`
}

// IsSet reports whether both ends of the range are populated.
func (r DateRange) IsSet() bool {
	return !r.Start.IsZero() && !r.Finish.IsZero()
}

// ProfileOverride is an explicit per-group profile choice recorded on a task.
type ProfileOverride struct {
	Enabled bool   `json:"enabled"`
	Profile string `json:"profile"`
}

// ProductAssignment links a task to a product with a fixed relationship.
type ProductAssignment struct {
	ProductID    string       `json:"product_id"`
	Relationship Relationship `json:"relationship"`
}

// Task is a scheduled unit of work as exposed by the schedule store.
// The store owns the task graph; the core only reads it.
type Task struct {
	ID              string                     `json:"id"`
	Name            string                     `json:"name"`
	CategoricalType string                     `json:"categorical_type"`
	Dates           map[DateSource]DateRange   `json:"dates"`
	Assignments     []ProductAssignment        `json:"assignments"`
	Overrides       map[string]ProfileOverride `json:"overrides,omitempty"`
	Children        []Task                     `json:"children,omitempty"`
}

// DatesFor returns the task's date range for the given source. For
// UnifiedSource it spans the min start and max finish across all populated
// concrete sources. The boolean is false when no usable range exists.
func (t Task) DatesFor(source DateSource) (DateRange, bool) {
	if source != UnifiedSource {
		r, ok := t.Dates[source]
		if !ok || !r.IsSet() {
			return DateRange{}, false
		}
		return r, true
	}
	var unified DateRange
	for _, src := range ConcreteDateSources {
		r, ok := t.Dates[src]
		if !ok || !r.IsSet() {
			continue
		}
		if unified.Start.IsZero() || r.Start.Before(unified.Start) {
			unified.Start = r.Start
		}
		if unified.Finish.IsZero() || r.Finish.After(unified.Finish) {
			unified.Finish = r.Finish
		}
	}
	return unified, unified.IsSet()
}

// Color is an RGBA tuple with components in [0, 1].
type Color [4]float64

// AppearanceProfile is a named bundle of visibility and appearance rules.
// Identity is (group name, profile name); the struct is treated as immutable
// once resolved for a computation pass.
type AppearanceProfile struct {
	Name                       string     `json:"name"`
	ConsiderStart              bool       `json:"consider_start"`
	ConsiderActive             bool       `json:"consider_active"`
	ConsiderEnd                bool       `json:"consider_end"`
	HideAtEnd                  bool       `json:"hide_at_end"`
	Effect                     EffectKind `json:"effect"`
	StartColor                 Color      `json:"start_color"`
	ActiveColor                Color      `json:"active_color"`
	EndColor                   Color      `json:"end_color"`
	UseStartOriginalColor      bool       `json:"use_start_original_color"`
	UseActiveOriginalColor     bool       `json:"use_active_original_color"`
	UseEndOriginalColor        bool       `json:"use_end_original_color"`
	StartTransparency          float64    `json:"start_transparency"`
	ActiveStartTransparency    float64    `json:"active_start_transparency"`
	ActiveFinishTransparency   float64    `json:"active_finish_transparency"`
	ActiveTransparencyInterpol float64    `json:"active_transparency_interpol"`
	EndTransparency            float64    `json:"end_transparency"`
}

// ProfileGroup is an ordered collection of appearance profiles with unique
// names.
type ProfileGroup struct {
	Name     string              `json:"name"`
	Profiles []AppearanceProfile `json:"profiles"`
}

// Find returns the profile with the given name, if present.
func (g ProfileGroup) Find(name string) (AppearanceProfile, bool) {
	for _, p := range g.Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return AppearanceProfile{}, false
}

// Names returns the profile names in group order.
func (g ProfileGroup) Names() []string {
	names := make([]string, len(g.Profiles))
	for i, p := range g.Profiles {
		names[i] = p.Name
	}
	return names
}

// GroupStackEntry is one row of the active-group stack.
type GroupStackEntry struct {
	Group   string `json:"group"`
	Enabled bool   `json:"enabled"`
}

// GroupStack is the ordered enable-stack governing which profile group is
// active.
type GroupStack []GroupStackEntry

// Active returns the first enabled group, or DEFAULT when none is enabled.
func (s GroupStack) Active() string {
	for _, entry := range s {
		if entry.Enabled && entry.Group != "" {
			return entry.Group
		}
	}
	return DefaultGroupName
}

// ResolvedFrameRecord is the flat per-(task, product) decision consumed by
// both renderer backends. It is recomputed on every resolution pass, never
// patched.
type ResolvedFrameRecord struct {
	ProductID     string       `json:"product_id"`
	TaskID        string       `json:"task_id"`
	Relationship  Relationship `json:"relationship"`
	StartFrame    int          `json:"start_frame"`
	FinishFrame   int          `json:"finish_frame"`
	Duration      int          `json:"duration"` // frames, FinishFrame - StartFrame
	ProfileName   string       `json:"profile_name"`
	ProfileIndex  int          `json:"profile_index"`
	VisibleBefore bool         `json:"visible_before"`
	VisibleAfter  bool         `json:"visible_after"`
	Effect        EffectKind   `json:"effect"`
}

// StateAt returns the frame state of the record at the given frame.
func (r ResolvedFrameRecord) StateAt(frame int) FrameState {
	switch {
	case frame < r.StartFrame:
		return BeforeStart
	case frame < r.FinishFrame:
		return Active
	default:
		return AfterEnd
	}
}

// RevealAt returns the fraction of the product's geometry revealed at a
// frame, clamped to [0, 1]. Only the growth effect reveals gradually over
// the record's span; every other effect presents fully formed geometry.
// How the geometry is partitioned at the threshold is a renderer concern.
func (r ResolvedFrameRecord) RevealAt(frame int) float64 {
	if r.Effect != GrowthEffect {
		return 1
	}
	span := r.FinishFrame - r.StartFrame
	if span < 1 {
		span = 1
	}
	ratio := float64(frame-r.StartFrame) / float64(span)
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// SkippedTask records a task excluded from a resolution pass and why.
type SkippedTask struct {
	TaskID string `json:"task_id"`
	Reason string `json:"reason"`
}

// Skip reasons.
const (
	SkipOutOfRange  = "starts after window finish"
	SkipMissingDate = "no usable date range for source"
	SkipBadDates    = "unparseable date range"
)

// ResolutionOutput bundles everything one resolution pass produces.
type ResolutionOutput struct {
	Window      ScheduleWindow        `json:"window"`
	ActiveGroup string                `json:"active_group"`
	Records     []ResolvedFrameRecord `json:"records"`
	Skipped     []SkippedTask         `json:"skipped,omitempty"`
}

// IndexSnapshot is an immutable name-to-index mapping scoped to one profile
// group. A stale snapshot is replaced wholesale, never patched in place.
type IndexSnapshot struct {
	Group   string         `json:"group"`
	Version uint64         `json:"version"`
	Indices map[string]int `json:"indices"`
}

// TimelineMetrics holds the human-facing numbers for status displays.
type TimelineMetrics struct {
	Date            time.Time `json:"date"`
	ElapsedDay      int       `json:"elapsed_day"`
	WeekNumber      int       `json:"week_number"`
	ProgressPercent int       `json:"progress_percent"`
	DayOfWeek       string    `json:"day_of_week"`
	TotalDays       int       `json:"total_days"`
}

// SnapshotResult classifies every assigned product at a single date.
type SnapshotResult struct {
	Date   time.Time                 `json:"date"`
	Source DateSource                `json:"source"`
	States map[ProductState][]string `json:"states"`
}
