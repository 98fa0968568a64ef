package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/svisuals/seq4d/internal/contract"
	"github.com/svisuals/seq4d/schema"
)

// WriteMetricsResult outputs timeline metrics, dispatching based on the output format configured.
func WriteMetricsResult(metrics schema.TimelineMetrics, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, "metrics JSON", jsonTo(metrics))

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, "metrics CSV", writeMetricsCSV(metrics))

	default:
		return writeWithFile(cfg.OutputFile, "metrics text", func(w io.Writer) error {
			return writeMetricsText(w, metrics, cfg)
		})
	}
}

// writeMetricsText displays metrics in human-readable text format.
func writeMetricsText(w io.Writer, metrics schema.TimelineMetrics, cfg *contract.Config) error {
	header := "Timeline Metrics"
	if cfg.UseColor {
		header = contract.HeaderColor.Sprint(header)
	}
	if _, err := fmt.Fprintf(w, "%s\n", header); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Date: %s (%s)\n", metrics.Date.Format("2006-01-02"), metrics.DayOfWeek); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Elapsed Day: %d of %d\n", metrics.ElapsedDay, metrics.TotalDays); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Week Number: %d\n", metrics.WeekNumber); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Progress: %d%%\n", metrics.ProgressPercent); err != nil {
		return err
	}
	return nil
}

// writeMetricsCSV writes the metrics in CSV format.
func writeMetricsCSV(metrics schema.TimelineMetrics) func(io.Writer) error {
	header := []string{"date", "day_of_week", "elapsed_day", "week_number", "progress_percent", "total_days"}
	return csvTo(header, func(csvWriter *csv.Writer) error {
		return csvWriter.Write([]string{
			metrics.Date.Format("2006-01-02"),
			metrics.DayOfWeek,
			strconv.Itoa(metrics.ElapsedDay),
			strconv.Itoa(metrics.WeekNumber),
			strconv.Itoa(metrics.ProgressPercent),
			strconv.Itoa(metrics.TotalDays),
		})
	})
}
