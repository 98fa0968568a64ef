package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/svisuals/seq4d/internal/contract"
	"github.com/svisuals/seq4d/internal/parquet"
	"github.com/svisuals/seq4d/schema"
)

// WriteRecordResults outputs a resolution pass, dispatching based on the output format configured.
func WriteRecordResults(output schema.ResolutionOutput, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, "resolution JSON", jsonTo(output))

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, "record CSV", writeRecordCSV(output.Records))

	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		if err := parquet.WriteFrameRecordsParquet(output.Records, cfg.OutputFile); err != nil {
			return err
		}
		fmt.Printf("Exported %d records to %s\n", len(output.Records), cfg.OutputFile)
		return nil

	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, "record table", func(w io.Writer) error {
			return writeRecordTable(output, cfg, duration, w)
		})
	}
}

// writeRecordTable generates and writes the human-readable table.
func writeRecordTable(output schema.ResolutionOutput, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	window := output.Window
	fmt.Fprintf(writer, "Window: %s -> %s (frames %d-%d, speed %.2fx)\n",
		window.Start.Format("2006-01-02"), window.Finish.Format("2006-01-02"),
		window.FrameStart, window.FrameEnd(), window.Speed)
	fmt.Fprintf(writer, "Active group: %s\n", output.ActiveGroup)

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Product", "Task", "Rel", "Start", "Finish", "Frames", "Profile", "Idx", "Before", "After", "Effect"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := getMaxTableIDWidth(cfg)
	var data [][]string
	for _, record := range output.Records {
		data = append(data, []string{
			contract.TruncatePath(record.ProductID, maxWidth),
			contract.TruncatePath(record.TaskID, maxWidth),
			string(record.Relationship),
			strconv.Itoa(record.StartFrame),
			strconv.Itoa(record.FinishFrame),
			strconv.Itoa(record.Duration),
			contract.ColorProfileLabel(record.ProfileName, cfg.UseColor),
			strconv.Itoa(record.ProfileIndex),
			contract.ColorVisibilityLabel(record.VisibleBefore, cfg.UseColor),
			contract.ColorVisibilityLabel(record.VisibleAfter, cfg.UseColor),
			contract.ColorEffectLabel(record.Effect, cfg.UseColor),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Resolved %d records (%d tasks skipped)\n", len(output.Records), len(output.Skipped)); err != nil {
		return err
	}
	for _, skip := range output.Skipped {
		if _, err := fmt.Fprintf(writer, "  skipped %s: %s\n", skip.TaskID, skip.Reason); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Resolution completed in %v with %d workers\n", duration, cfg.Workers); err != nil {
		return err
	}
	return nil
}

// writeRecordCSV writes the resolved records in CSV format.
func writeRecordCSV(records []schema.ResolvedFrameRecord) func(io.Writer) error {
	header := []string{
		"product_id",
		"task_id",
		"relationship",
		"start_frame",
		"finish_frame",
		"duration_frames",
		"profile",
		"profile_index",
		"visible_before",
		"visible_after",
		"effect",
	}
	return csvTo(header, func(csvWriter *csv.Writer) error {
		for _, record := range records {
			row := []string{
				record.ProductID,
				record.TaskID,
				string(record.Relationship),
				strconv.Itoa(record.StartFrame),
				strconv.Itoa(record.FinishFrame),
				strconv.Itoa(record.Duration),
				record.ProfileName,
				strconv.Itoa(record.ProfileIndex),
				contract.VisibilityLabel(record.VisibleBefore),
				contract.VisibilityLabel(record.VisibleAfter),
				string(record.Effect),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
