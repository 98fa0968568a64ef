package core

import (
	"sort"
	"sync"

	"github.com/svisuals/seq4d/internal/contract"
	"github.com/svisuals/seq4d/schema"
)

// Builder assembles the per-(task, product) resolved records consumed by
// both renderer backends. It owns the only two pieces of shared mutable
// state in the core: the profile resolution cache and the index snapshot.
type Builder struct {
	profiles contract.ProfileStore
	resolver *ProfileResolver
	indexes  *IndexMapper
}

// NewBuilder wires a builder over a profile store.
func NewBuilder(profiles contract.ProfileStore) *Builder {
	return &Builder{
		profiles: profiles,
		resolver: NewProfileResolver(profiles),
		indexes:  NewIndexMapper(),
	}
}

// Resolver exposes the profile resolver, mainly for its change counter.
func (b *Builder) Resolver() *ProfileResolver {
	return b.resolver
}

// BuildRecords runs one full resolution pass: map tasks onto the frame axis,
// resolve profiles under the stack's active group, and emit one flat record
// per surviving (task, product) pair. Records are sorted deterministically
// so repeated passes over the same inputs are byte-identical.
func (b *Builder) BuildRecords(window schema.ScheduleWindow, sched contract.ScheduleStore, stack schema.GroupStack, source schema.DateSource, workers int) schema.ResolutionOutput {
	active, _ := b.resolver.ActivateStack(stack)

	group, ok := b.profiles.Group(active)
	if !ok {
		group, _ = b.profiles.Group(schema.DefaultGroupName)
	}
	indexSnap := b.indexes.SnapshotFor(group)

	mapped, skipped := MapTasks(window, sched.RootTasks(), source)
	skipped = mergeSkips(sched.Skipped(), skipped)

	if workers < 1 {
		workers = 1
	}
	taskCh := make(chan MappedTask, len(mapped))
	recordCh := make(chan []schema.ResolvedFrameRecord, len(mapped))
	var wg sync.WaitGroup

	for range workers {
		wg.Go(func() {
			for mt := range taskCh {
				recordCh <- b.buildTaskRecords(mt, active, indexSnap)
			}
		})
	}
	for _, mt := range mapped {
		taskCh <- mt
	}
	close(taskCh)
	wg.Wait()
	close(recordCh)

	var records []schema.ResolvedFrameRecord
	for batch := range recordCh {
		records = append(records, batch...)
	}
	sortRecords(records)

	return schema.ResolutionOutput{
		Window:      window,
		ActiveGroup: active,
		Records:     records,
		Skipped:     skipped,
	}
}

// buildTaskRecords emits one record per product assignment of a mapped task.
func (b *Builder) buildTaskRecords(mt MappedTask, activeGroup string, indexSnap schema.IndexSnapshot) []schema.ResolvedFrameRecord {
	if len(mt.Task.Assignments) == 0 {
		return nil
	}

	profile := b.resolver.Resolve(mt.Task, activeGroup)
	effect := profile.Effect
	if effect == "" {
		effect = schema.InstantEffect
	}

	records := make([]schema.ResolvedFrameRecord, 0, len(mt.Task.Assignments))
	for _, assignment := range mt.Task.Assignments {
		decision := ResolveVisibility(profile, assignment.Relationship)
		records = append(records, schema.ResolvedFrameRecord{
			ProductID:     assignment.ProductID,
			TaskID:        mt.Task.ID,
			Relationship:  assignment.Relationship,
			StartFrame:    mt.Span.Start,
			FinishFrame:   mt.Span.Finish,
			Duration:      mt.Span.Finish - mt.Span.Start,
			ProfileName:   profile.Name,
			ProfileIndex:  IndexOf(indexSnap, profile.Name),
			VisibleBefore: decision.Before,
			VisibleAfter:  decision.After,
			Effect:        effect,
		})
	}
	return records
}

// mergeSkips prepends load-time skips to the mapper's skips. A task already
// skipped at load would also trip the mapper's missing-date check; the load
// reason names the actual problem, so the mapper entry is dropped.
func mergeSkips(loadSkips, mapSkips []schema.SkippedTask) []schema.SkippedTask {
	if len(loadSkips) == 0 {
		return mapSkips
	}
	merged := make([]schema.SkippedTask, 0, len(loadSkips)+len(mapSkips))
	atLoad := make(map[string]bool, len(loadSkips))
	for _, skip := range loadSkips {
		merged = append(merged, skip)
		atLoad[skip.TaskID] = true
	}
	for _, skip := range mapSkips {
		if !atLoad[skip.TaskID] {
			merged = append(merged, skip)
		}
	}
	return merged
}

// sortRecords orders records by product, task, then relationship.
func sortRecords(records []schema.ResolvedFrameRecord) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].ProductID != records[j].ProductID {
			return records[i].ProductID < records[j].ProductID
		}
		if records[i].TaskID != records[j].TaskID {
			return records[i].TaskID < records[j].TaskID
		}
		return records[i].Relationship < records[j].Relationship
	})
}
