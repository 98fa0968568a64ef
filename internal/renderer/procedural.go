package renderer

import (
	"fmt"

	"github.com/svisuals/seq4d/internal/contract"
	"github.com/svisuals/seq4d/schema"
)

// channel is one record flattened to numeric fields. The evaluator works
// from these numbers alone; it never looks back at the source record.
type channel struct {
	startFrame    float64
	finishFrame   float64
	visibleBefore float64 // 0 or 1
	visibleAfter  float64 // 0 or 1
	profileIndex  float64
	effectTag     float64 // 0 instant, 1 growth
}

// ProceduralBackend flattens records into per-product numeric channels at
// load time and evaluates the visibility rules on demand at any frame.
type ProceduralBackend struct {
	window   schema.ScheduleWindow
	channels map[string][]channel
	frame    int
	speed    float64
	loaded   bool
}

var _ contract.RendererAdapter = &ProceduralBackend{} // Compile-time check

// NewProceduralBackend returns an empty procedural backend.
func NewProceduralBackend() *ProceduralBackend {
	return &ProceduralBackend{}
}

// Name identifies the backend.
func (b *ProceduralBackend) Name() string {
	return string(schema.ProceduralRenderer)
}

// LoadRecords flattens every record into numeric channels.
func (b *ProceduralBackend) LoadRecords(window schema.ScheduleWindow, records []schema.ResolvedFrameRecord) error {
	if window.TotalFrames < 1 {
		return fmt.Errorf("window has no frames to evaluate")
	}

	channels := make(map[string][]channel)
	for _, record := range records {
		ch := channel{
			startFrame:   float64(record.StartFrame),
			finishFrame:  float64(record.FinishFrame),
			profileIndex: float64(record.ProfileIndex),
		}
		if record.VisibleBefore {
			ch.visibleBefore = 1
		}
		if record.VisibleAfter {
			ch.visibleAfter = 1
		}
		if record.Effect == schema.GrowthEffect {
			ch.effectTag = 1
		}
		channels[record.ProductID] = append(channels[record.ProductID], ch)
	}

	b.window = window
	b.channels = channels
	b.frame = window.FrameStart
	b.loaded = true
	return nil
}

// SetCurrentFrame positions the backend at a frame.
func (b *ProceduralBackend) SetCurrentFrame(frame int) {
	b.frame = frame
}

// SetSpeed applies the playback speed multiplier.
func (b *ProceduralBackend) SetSpeed(speed float64) {
	b.speed = speed
}

// VisibleAt evaluates the visibility rules for a product at the current
// frame from the flattened channels. Products without records are always
// visible.
func (b *ProceduralBackend) VisibleAt(productID string) bool {
	if !b.loaded {
		return false
	}
	chs, ok := b.channels[productID]
	if !ok {
		return true
	}
	frame := float64(b.clampFrame())
	for _, ch := range chs {
		if !evalChannel(ch, frame) {
			return false
		}
	}
	return true
}

// RevealAt evaluates the reveal fraction for a product at the current frame
// from the flattened channels, taking the least revealed channel. Products
// without records are fully formed.
func (b *ProceduralBackend) RevealAt(productID string) float64 {
	if !b.loaded {
		return 0
	}
	chs, ok := b.channels[productID]
	if !ok {
		return 1
	}
	frame := float64(b.clampFrame())
	reveal := 1.0
	for _, ch := range chs {
		reveal = min(reveal, evalChannelReveal(ch, frame))
	}
	return reveal
}

// clampFrame clamps the current frame to the window ends, same as the
// sampler's array lookup.
func (b *ProceduralBackend) clampFrame() int {
	clamped := b.frame
	if clamped < b.window.FrameStart {
		clamped = b.window.FrameStart
	}
	if clamped > b.window.FrameEnd() {
		clamped = b.window.FrameEnd()
	}
	return clamped
}

// evalChannel evaluates one channel at a frame: before the span the
// visible_before flag decides, inside the span the product shows, after it
// the visible_after flag decides.
func evalChannel(ch channel, frame float64) bool {
	switch {
	case frame < ch.startFrame:
		return ch.visibleBefore != 0
	case frame < ch.finishFrame:
		return true
	default:
		return ch.visibleAfter != 0
	}
}

// evalChannelReveal evaluates one channel's reveal fraction at a frame.
// Growth-tagged channels ramp linearly over the span, clamped to [0, 1];
// everything else is fully formed. The arithmetic must match the record
// sampler bit for bit, so spans stay in whole-number floats throughout.
func evalChannelReveal(ch channel, frame float64) float64 {
	if ch.effectTag == 0 {
		return 1
	}
	span := ch.finishFrame - ch.startFrame
	if span < 1 {
		span = 1
	}
	ratio := (frame - ch.startFrame) / span
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}
