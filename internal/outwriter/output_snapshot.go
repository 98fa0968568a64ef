package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/svisuals/seq4d/internal/contract"
	"github.com/svisuals/seq4d/schema"
)

// snapshotStateOrder fixes the display order of product states.
var snapshotStateOrder = []schema.ProductState{
	schema.ToBuild,
	schema.InConstruction,
	schema.Completed,
	schema.ToDemolish,
	schema.InDemolition,
	schema.Demolished,
	schema.Unassigned,
}

// WriteSnapshotResult outputs a construction-state snapshot, dispatching based on the output format configured.
func WriteSnapshotResult(snapshot schema.SnapshotResult, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, "snapshot JSON", jsonTo(snapshot))

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, "snapshot CSV", writeSnapshotCSV(snapshot))

	default:
		return writeWithFile(cfg.OutputFile, "snapshot table", func(w io.Writer) error {
			return writeSnapshotTable(w, snapshot, cfg)
		})
	}
}

// writeSnapshotTable generates and writes the human-readable table.
func writeSnapshotTable(w io.Writer, snapshot schema.SnapshotResult, cfg *contract.Config) error {
	fmt.Fprintf(w, "Snapshot at %s (source: %s)\n", snapshot.Date.Format("2006-01-02"), snapshot.Source)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"State", "Count", "Products"})

	maxWidth := getMaxTableIDWidth(cfg)
	var data [][]string
	total := 0
	for _, state := range snapshotStateOrder {
		products := snapshot.States[state]
		if len(products) == 0 {
			continue
		}
		total += len(products)
		joined := ""
		for i, productID := range products {
			if i > 0 {
				joined += ", "
			}
			joined += contract.TruncatePath(productID, maxWidth)
		}
		data = append(data, []string{string(state), fmt.Sprintf("%d", len(products)), joined})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%d products classified\n", total)
	return err
}

// writeSnapshotCSV writes the snapshot in CSV format, one row per product.
func writeSnapshotCSV(snapshot schema.SnapshotResult) func(io.Writer) error {
	header := []string{"date", "source", "state", "product_id"}
	return csvTo(header, func(csvWriter *csv.Writer) error {
		for _, state := range snapshotStateOrder {
			for _, productID := range snapshot.States[state] {
				row := []string{
					snapshot.Date.Format("2006-01-02"),
					string(snapshot.Source),
					string(state),
					productID,
				}
				if err := csvWriter.Write(row); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
