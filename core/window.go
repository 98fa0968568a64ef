// Package core has the resolution logic turning a task schedule into
// per-product, per-frame visibility decisions.
package core

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/svisuals/seq4d/schema"
)

// ErrInvalidWindow is returned when the requested visualization range is
// degenerate or inverted. No records are produced for such a pass.
var ErrInvalidWindow = errors.New("invalid visualization window")

// WindowRequest carries the raw inputs for building a schedule window.
type WindowRequest struct {
	Start       time.Time
	Finish      time.Time
	FrameStart  int
	TotalFrames int           // explicit total; 0 selects a derived mode
	FPS         int           // frames per second for derived totals
	Duration    time.Duration // animation duration mode
	Speed       float64       // real-time multiplier mode
}

// NewScheduleWindow validates the request and returns an immutable window.
// The frame total comes from the first applicable mode: explicit frames,
// animation duration x fps, then real duration compressed by the speed
// multiplier. Degenerate totals clamp to 1 so downstream math stays total.
func NewScheduleWindow(req WindowRequest) (schema.ScheduleWindow, error) {
	if req.Start.IsZero() || req.Finish.IsZero() {
		return schema.ScheduleWindow{}, fmt.Errorf("%w: start and finish are required", ErrInvalidWindow)
	}
	if !req.Finish.After(req.Start) {
		return schema.ScheduleWindow{}, fmt.Errorf("%w: finish %s is not after start %s",
			ErrInvalidWindow, req.Finish.Format("2006-01-02"), req.Start.Format("2006-01-02"))
	}

	speed := req.Speed
	if speed <= 0 {
		speed = 1
	}
	fps := req.FPS
	if fps <= 0 {
		fps = 24
	}

	total := req.TotalFrames
	switch {
	case total > 0:
		// explicit frame count wins
	case req.Duration > 0:
		total = int(math.Round(req.Duration.Seconds() * float64(fps)))
	default:
		realDuration := req.Finish.Sub(req.Start)
		total = int(math.Round(realDuration.Seconds() / speed * float64(fps)))
	}
	if total < 1 {
		total = 1
	}

	return schema.ScheduleWindow{
		Start:       req.Start,
		Finish:      req.Finish,
		FrameStart:  req.FrameStart,
		TotalFrames: total,
		Speed:       speed,
	}, nil
}

// GuessDateRange derives the full schedule range from the min start and max
// finish across every task and every date source. The boolean is false when
// no task carries a usable range.
func GuessDateRange(roots []schema.Task) (schema.DateRange, bool) {
	var full schema.DateRange
	var walk func(tasks []schema.Task)
	walk = func(tasks []schema.Task) {
		for _, task := range tasks {
			if r, ok := task.DatesFor(schema.UnifiedSource); ok {
				if full.Start.IsZero() || r.Start.Before(full.Start) {
					full.Start = r.Start
				}
				if full.Finish.IsZero() || r.Finish.After(full.Finish) {
					full.Finish = r.Finish
				}
			}
			walk(task.Children)
		}
	}
	walk(roots)
	return full, full.IsSet()
}
