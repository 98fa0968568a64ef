package core

import (
	"math"
	"time"

	"github.com/svisuals/seq4d/schema"
)

// FrameSpan is a task's date range projected onto the window's frame axis.
type FrameSpan struct {
	Start  int
	Finish int
}

// MappedTask pairs a task with its dates and frame span for one date source.
type MappedTask struct {
	Task  schema.Task
	Dates schema.DateRange
	Span  FrameSpan
}

// progress returns the normalized position of a date within the window,
// clamped to [0, 1]. A zero-duration window yields 0 for every date.
func progress(window schema.ScheduleWindow, date time.Time) float64 {
	total := window.Duration().Seconds()
	if total <= 0 {
		return 0
	}
	p := date.Sub(window.Start).Seconds() / total
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// frameAt maps a date onto the window's frame axis.
func frameAt(window schema.ScheduleWindow, date time.Time) int {
	return int(math.Round(float64(window.FrameStart) + progress(window, date)*float64(window.TotalFrames)))
}

// MapDates projects a date range onto the frame axis. Because progress is
// clamped, the span always lies within [FrameStart, FrameEnd].
func MapDates(window schema.ScheduleWindow, dates schema.DateRange) FrameSpan {
	return FrameSpan{
		Start:  frameAt(window, dates.Start),
		Finish: frameAt(window, dates.Finish),
	}
}

// MapTasks walks the task tree depth-first and maps every task with a usable
// date range for the source onto the frame axis. Tasks without dates, or
// starting after the window finishes, are skipped and reported; their
// children are still visited.
func MapTasks(window schema.ScheduleWindow, roots []schema.Task, source schema.DateSource) ([]MappedTask, []schema.SkippedTask) {
	var mapped []MappedTask
	var skipped []schema.SkippedTask

	var walk func(tasks []schema.Task)
	walk = func(tasks []schema.Task) {
		for _, task := range tasks {
			walk(task.Children)

			dates, ok := task.DatesFor(source)
			if !ok {
				skipped = append(skipped, schema.SkippedTask{TaskID: task.ID, Reason: schema.SkipMissingDate})
				continue
			}
			if dates.Start.After(window.Finish) {
				skipped = append(skipped, schema.SkippedTask{TaskID: task.ID, Reason: schema.SkipOutOfRange})
				continue
			}
			mapped = append(mapped, MappedTask{
				Task:  task,
				Dates: dates,
				Span:  MapDates(window, dates),
			})
		}
	}
	walk(roots)
	return mapped, skipped
}
