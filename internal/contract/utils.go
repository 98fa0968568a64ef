package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/svisuals/seq4d/schema"
)

// Visibility label constants.
const (
	HiddenValue  = "Hidden"
	VisibleValue = "Visible"
	GrowingValue = "Growing"
)

// Color variables for console output.
var (
	VisibleColor = color.New(color.FgGreen)               // steady-state visible
	HiddenColor  = color.New(color.FgRed)                 // hidden at the queried state
	GrowingColor = color.New(color.FgYellow, color.Bold)  // partially revealed
	HeaderColor  = color.New(color.FgCyan, color.Bold)    // section headers
	RemovalColor = color.New(color.FgMagenta, color.Bold) // removal-class profiles
)

// VisibilityLabel returns a plain text label for a visibility flag. This is
// the core logic used for CSV, JSON, and table printing.
func VisibilityLabel(visible bool) string {
	if visible {
		return VisibleValue
	}
	return HiddenValue
}

// ColorVisibilityLabel returns a colored label for console tables. It uses
// VisibilityLabel to determine the string, then applies the matching color.
func ColorVisibilityLabel(visible bool, useColor bool) string {
	text := VisibilityLabel(visible)
	if !useColor {
		return text
	}
	if visible {
		return VisibleColor.Sprint(text)
	}
	return HiddenColor.Sprint(text)
}

// ColorEffectLabel renders a record's appearance effect for console tables.
// Growth records get the Growing label so gradual reveals stand out next to
// the instant default.
func ColorEffectLabel(effect schema.EffectKind, useColor bool) string {
	if effect != schema.GrowthEffect {
		return string(effect)
	}
	if !useColor {
		return GrowingValue
	}
	return GrowingColor.Sprint(GrowingValue)
}

// ColorProfileLabel renders a profile name, highlighting removal-class
// profiles so destructive work stands out in tables.
func ColorProfileLabel(name string, useColor bool) string {
	if useColor && schema.IsRemovalClass(name) {
		return RemovalColor.Sprint(name)
	}
	return name
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path selects stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetStoreDBFilePath returns the path to the SQLite DB file for profile
// group storage.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".seq4d_profiles.db"
	}
	return filepath.Join(homeDir, ".seq4d_profiles.db")
}

// TruncatePath shortens a path-like identifier to fit table columns, keeping
// the most significant trailing segment.
func TruncatePath(path string, maxWidth int) string {
	if maxWidth <= 0 || len(path) <= maxWidth {
		return path
	}
	if maxWidth <= 3 {
		return path[len(path)-maxWidth:]
	}
	return "..." + path[len(path)-(maxWidth-3):]
}
