// Package renderer has the two boundary consumers of resolved frame
// records: a discrete keyframe sampler and a procedural evaluator. Both
// implement the same adapter surface and must agree exactly at every frame.
//
// A product can carry several records (built by one task, demolished by
// another). The combining rule is conjunction: the product is visible at a
// frame only when every record governing it deems it visible, and its
// reveal fraction is the least revealed of its records.
package renderer

import (
	"fmt"

	"github.com/svisuals/seq4d/internal/contract"
	"github.com/svisuals/seq4d/schema"
)

// KeyframeBackend samples visibility into per-product key arrays at load
// time, one key per frame of the window. Queries are array lookups; nothing
// is evaluated after LoadRecords.
type KeyframeBackend struct {
	window  schema.ScheduleWindow
	keys    map[string][]bool
	reveals map[string][]float64
	frame   int
	speed   float64
	loaded  bool
}

var _ contract.RendererAdapter = &KeyframeBackend{} // Compile-time check

// NewKeyframeBackend returns an empty keyframe backend.
func NewKeyframeBackend() *KeyframeBackend {
	return &KeyframeBackend{}
}

// Name identifies the backend.
func (b *KeyframeBackend) Name() string {
	return string(schema.KeyframeRenderer)
}

// LoadRecords samples every record over the window's frame axis.
func (b *KeyframeBackend) LoadRecords(window schema.ScheduleWindow, records []schema.ResolvedFrameRecord) error {
	if window.TotalFrames < 1 {
		return fmt.Errorf("window has no frames to sample")
	}

	total := window.TotalFrames + 1 // inclusive of the final frame
	keys := make(map[string][]bool)
	reveals := make(map[string][]float64)
	for _, record := range records {
		track, ok := keys[record.ProductID]
		if !ok {
			track = make([]bool, total)
			reveal := make([]float64, total)
			for i := range track {
				track[i] = true
				reveal[i] = 1
			}
			keys[record.ProductID] = track
			reveals[record.ProductID] = reveal
		}
		reveal := reveals[record.ProductID]
		for i := range track {
			frame := window.FrameStart + i
			track[i] = track[i] && sampleRecord(record, frame)
			reveal[i] = min(reveal[i], record.RevealAt(frame))
		}
	}

	b.window = window
	b.keys = keys
	b.reveals = reveals
	b.frame = window.FrameStart
	b.loaded = true
	return nil
}

// sampleRecord applies a record's visibility flags at a frame: the before
// flag ahead of the span, always visible inside it, the after flag past it.
func sampleRecord(record schema.ResolvedFrameRecord, frame int) bool {
	switch record.StateAt(frame) {
	case schema.BeforeStart:
		return record.VisibleBefore
	case schema.Active:
		return true
	default:
		return record.VisibleAfter
	}
}

// SetCurrentFrame positions the backend at a frame. Frames outside the
// window clamp to its ends.
func (b *KeyframeBackend) SetCurrentFrame(frame int) {
	b.frame = frame
}

// SetSpeed applies the playback speed multiplier.
func (b *KeyframeBackend) SetSpeed(speed float64) {
	b.speed = speed
}

// VisibleAt reports the sampled visibility for a product at the current
// frame. Products without records are always visible.
func (b *KeyframeBackend) VisibleAt(productID string) bool {
	if !b.loaded {
		return false
	}
	track, ok := b.keys[productID]
	if !ok {
		return true
	}
	return track[b.trackIndex(len(track))]
}

// RevealAt reports the sampled reveal fraction for a product at the current
// frame. Products without records are fully formed.
func (b *KeyframeBackend) RevealAt(productID string) float64 {
	if !b.loaded {
		return 0
	}
	reveal, ok := b.reveals[productID]
	if !ok {
		return 1
	}
	return reveal[b.trackIndex(len(reveal))]
}

// trackIndex converts the current frame into a key array index, clamping
// frames outside the window to its ends.
func (b *KeyframeBackend) trackIndex(length int) int {
	idx := b.frame - b.window.FrameStart
	if idx < 0 {
		idx = 0
	}
	if idx >= length {
		idx = length - 1
	}
	return idx
}
