package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/svisuals/seq4d/internal/contract"
	"github.com/svisuals/seq4d/internal/outwriter"
	"github.com/svisuals/seq4d/internal/profilestore"
	"github.com/svisuals/seq4d/internal/renderer"
	"github.com/svisuals/seq4d/internal/schedstore"
	"github.com/svisuals/seq4d/schema"
)

// ExecutorFunc defines the function signature for executing different resolver modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ErrNoDateRange is returned when no visualization range was given and the
// schedule carries no dated task to derive one from.
var ErrNoDateRange = errors.New("schedule has no usable date range; pass --start and --finish")

// ExecuteAnimate runs a full resolution pass, drives the selected renderer
// backends, and prints the records. It serves as the main entry point for
// the 'animate' mode.
func ExecuteAnimate(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	output, err := GetResolutionResults(ctx, cfg)
	if err != nil {
		return err
	}
	backends := rendererBackends(cfg.Renderer)
	for _, b := range backends {
		if err := b.LoadRecords(output.Window, output.Records); err != nil {
			return fmt.Errorf("%s backend: %w", b.Name(), err)
		}
		b.SetSpeed(output.Window.Speed)
		b.SetCurrentFrame(output.Window.FrameStart)
	}
	if cfg.Renderer == schema.BothRenderers {
		if err := renderer.VerifyAgreement(output.Window, output.Records); err != nil {
			return err
		}
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteRecords(output, cfg, duration)
}

// GetResolutionResults loads the schedule, builds the frame window, and
// resolves every dated task into frame records. It is the shared core for
// the animate command and the MCP resolve tool.
func GetResolutionResults(ctx context.Context, cfg *contract.Config) (schema.ResolutionOutput, error) {
	sched, err := schedstore.Load(cfg.SchedulePath)
	if err != nil {
		return schema.ResolutionOutput{}, err
	}

	full, err := resolveFullRange(cfg, sched.RootTasks())
	if err != nil {
		return schema.ResolutionOutput{}, err
	}
	window, err := NewScheduleWindow(WindowRequest{
		Start:       full.Start,
		Finish:      full.Finish,
		FrameStart:  cfg.FrameStart,
		TotalFrames: cfg.TotalFrames,
		FPS:         cfg.FPS,
		Duration:    cfg.AnimDuration,
		Speed:       cfg.Speed,
	})
	if err != nil {
		return schema.ResolutionOutput{}, err
	}

	if !shouldSuppressHeader(ctx) {
		logScheduleHeader(sched.Name(), cfg.Source, window.Start, window.Finish)
	}

	stack := cfg.GroupStack
	if len(stack) == 0 {
		stack = sched.GroupStack()
	}

	catalog := profilestore.NewCatalog(profilestore.Manager.GetStore(), sched.InlineGroups())
	builder := NewBuilder(catalog)
	return builder.BuildRecords(window, sched, stack, cfg.Source, cfg.Workers), nil
}

// ExecuteSnapshot classifies every product at a single date and prints the
// result. It serves as the main entry point for the 'snapshot' mode.
func ExecuteSnapshot(ctx context.Context, cfg *contract.Config) error {
	snapshot, err := GetSnapshotResults(ctx, cfg)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteSnapshot(snapshot, cfg)
}

// GetSnapshotResults loads the schedule and classifies every assigned
// product at the query date. A zero date snapshots the present moment.
func GetSnapshotResults(ctx context.Context, cfg *contract.Config) (schema.SnapshotResult, error) {
	sched, err := schedstore.Load(cfg.SchedulePath)
	if err != nil {
		return schema.SnapshotResult{}, err
	}
	date := cfg.Date
	if date.IsZero() {
		date = time.Now()
	}
	if !shouldSuppressHeader(ctx) {
		fmt.Printf("🔎 Schedule: %s (source: %s)\n", sched.Name(), cfg.Source)
	}
	return BuildSnapshot(date, cfg.VizStart, cfg.VizFinish, sched.RootTasks(), cfg.Source), nil
}

// ExecuteMetrics computes the timeline position of a date within the
// schedule range and prints it. It serves as the main entry point for the
// 'metrics' mode.
func ExecuteMetrics(ctx context.Context, cfg *contract.Config) error {
	metrics, err := GetMetricsResults(ctx, cfg)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteMetrics(metrics, cfg)
}

// GetMetricsResults computes elapsed day, week number, and progress for a
// date against the full schedule range. A zero date means now.
func GetMetricsResults(ctx context.Context, cfg *contract.Config) (schema.TimelineMetrics, error) {
	sched, err := schedstore.Load(cfg.SchedulePath)
	if err != nil {
		return schema.TimelineMetrics{}, err
	}
	full, err := resolveFullRange(cfg, sched.RootTasks())
	if err != nil {
		return schema.TimelineMetrics{}, err
	}
	date := cfg.Date
	if date.IsZero() {
		date = time.Now()
	}
	if !shouldSuppressHeader(ctx) {
		logScheduleHeader(sched.Name(), cfg.Source, full.Start, full.Finish)
	}
	return ComputeTimelineMetrics(date, full), nil
}

// GetProfileGroupsResults returns the requested profile groups from the
// persisted store plus the built-in DEFAULT. With no names it returns every
// known group, DEFAULT first.
func GetProfileGroupsResults(_ context.Context, names ...string) ([]schema.ProfileGroup, error) {
	catalog := profilestore.NewCatalog(profilestore.Manager.GetStore(), nil)
	if len(names) == 0 {
		names = catalog.GroupNames()
	}
	groups := make([]schema.ProfileGroup, 0, len(names))
	for _, name := range names {
		group, ok := catalog.Group(name)
		if !ok {
			return nil, fmt.Errorf("profile group '%s' not found", name)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// resolveFullRange picks the visualization range: explicit bounds win, and
// missing ends fall back to the schedule's own min/max dates.
func resolveFullRange(cfg *contract.Config, roots []schema.Task) (schema.DateRange, error) {
	if !cfg.VizStart.IsZero() && !cfg.VizFinish.IsZero() {
		return schema.DateRange{Start: cfg.VizStart, Finish: cfg.VizFinish}, nil
	}
	full, ok := GuessDateRange(roots)
	if !ok {
		return schema.DateRange{}, ErrNoDateRange
	}
	if !cfg.VizStart.IsZero() {
		full.Start = cfg.VizStart
	}
	if !cfg.VizFinish.IsZero() {
		full.Finish = cfg.VizFinish
	}
	return full, nil
}

// rendererBackends maps the renderer selection to boundary adapters. The
// selection is validated during config processing, so unknown kinds and
// NoRenderer both yield an empty slice.
func rendererBackends(kind schema.RendererKind) []contract.RendererAdapter {
	switch kind {
	case schema.KeyframeRenderer:
		return []contract.RendererAdapter{renderer.NewKeyframeBackend()}
	case schema.ProceduralRenderer:
		return []contract.RendererAdapter{renderer.NewProceduralBackend()}
	case schema.BothRenderers:
		return []contract.RendererAdapter{renderer.NewKeyframeBackend(), renderer.NewProceduralBackend()}
	default:
		return nil
	}
}

// logScheduleHeader prints a concise, 2-line header for each resolution phase.
func logScheduleHeader(name string, source schema.DateSource, start, finish time.Time) {
	fmt.Printf("🔎 Schedule: %s (source: %s)\n", name, source)
	fmt.Printf("📅 Range: %s → %s\n", start.Format("2006-01-02"), finish.Format("2006-01-02"))
}
