package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/svisuals/seq4d/internal/contract"
)

// writeWithFile routes a writer closure to the configured output file, or to
// stdout when no file is set. File writes get a note on stderr naming what
// landed where; stdout stays clean for piping.
func writeWithFile(outputFile, label string, write func(io.Writer) error) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	toFile := file != os.Stdout
	if toFile {
		defer func() { _ = file.Close() }()
	}

	if err := write(file); err != nil {
		return err
	}

	if toFile {
		fmt.Fprintf(os.Stderr, "💾 Wrote %s to %s\n", label, outputFile)
	}
	return nil
}

// jsonTo returns a writer closure that indent-encodes data.
func jsonTo(data any) func(io.Writer) error {
	return func(w io.Writer) error {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	}
}

// csvTo returns a writer closure that emits a header row, then hands the
// flushing CSV writer to rows.
func csvTo(header []string, rows func(*csv.Writer) error) func(io.Writer) error {
	return func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()

		if err := csvWriter.Write(header); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
		return rows(csvWriter)
	}
}

// floatFormatter returns a fixed-precision float formatter shared by the
// table and CSV writers.
func floatFormatter(precision int) func(float64) string {
	return func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
}
