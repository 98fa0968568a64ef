package outwriter

import (
	"os"

	"github.com/svisuals/seq4d/internal/contract"
	"golang.org/x/term"
)

// getMaxTableIDWidth calculates the maximum width for product and task ids
// in table output based on terminal width and table configuration.
func getMaxTableIDWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Fixed columns: relationship, frames, profile, index, flags, effect,
	// plus borders and padding. The two id columns share what is left.
	baseWidth := 70
	available := (termWidth - baseWidth) / 2
	if available < 12 {
		// Minimum reasonable id width
		return 12
	}
	if available > 40 {
		// Maximum id width to prevent overly wide tables
		return 40
	}
	return available
}
