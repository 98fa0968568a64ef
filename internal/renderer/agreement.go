package renderer

import (
	"fmt"
	"sort"

	"github.com/svisuals/seq4d/schema"
)

// VerifyAgreement loads the same records into both backends and compares
// their visibility and reveal decisions for every product at every frame of
// the window. It returns an error naming the first disagreement found.
func VerifyAgreement(window schema.ScheduleWindow, records []schema.ResolvedFrameRecord) error {
	keyframe := NewKeyframeBackend()
	procedural := NewProceduralBackend()

	if err := keyframe.LoadRecords(window, records); err != nil {
		return fmt.Errorf("%s backend failed to load: %w", keyframe.Name(), err)
	}
	if err := procedural.LoadRecords(window, records); err != nil {
		return fmt.Errorf("%s backend failed to load: %w", procedural.Name(), err)
	}

	products := productIDs(records)
	for frame := window.FrameStart; frame <= window.FrameEnd(); frame++ {
		keyframe.SetCurrentFrame(frame)
		procedural.SetCurrentFrame(frame)
		for _, productID := range products {
			a := keyframe.VisibleAt(productID)
			b := procedural.VisibleAt(productID)
			if a != b {
				return fmt.Errorf("backends disagree for product %q at frame %d: %s=%t, %s=%t",
					productID, frame, keyframe.Name(), a, procedural.Name(), b)
			}
			ra := keyframe.RevealAt(productID)
			rb := procedural.RevealAt(productID)
			if ra != rb {
				return fmt.Errorf("backends disagree on reveal for product %q at frame %d: %s=%g, %s=%g",
					productID, frame, keyframe.Name(), ra, procedural.Name(), rb)
			}
		}
	}
	return nil
}

// productIDs returns the distinct product ids in the record stream, sorted.
func productIDs(records []schema.ResolvedFrameRecord) []string {
	seen := map[string]bool{}
	var ids []string
	for _, record := range records {
		if !seen[record.ProductID] {
			seen[record.ProductID] = true
			ids = append(ids, record.ProductID)
		}
	}
	sort.Strings(ids)
	return ids
}
