package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/svisuals/seq4d/internal/contract"
	"github.com/svisuals/seq4d/schema"
)

// WriteProfileGroups outputs profile group listings, dispatching based on the output format configured.
func WriteProfileGroups(groups []schema.ProfileGroup, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, "profile JSON", jsonTo(groups))

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, "profile CSV", writeProfileCSV(groups))

	default:
		return writeWithFile(cfg.OutputFile, "profile tables", func(w io.Writer) error {
			return writeProfileTable(w, groups, cfg)
		})
	}
}

// writeProfileTable generates and writes the human-readable tables, one per group.
func writeProfileTable(w io.Writer, groups []schema.ProfileGroup, cfg *contract.Config) error {
	fmtFloat := floatFormatter(cfg.Precision)

	for _, group := range groups {
		header := fmt.Sprintf("Group: %s (%d profiles)", group.Name, len(group.Profiles))
		if cfg.UseColor {
			header = contract.HeaderColor.Sprint(header)
		}
		if _, err := fmt.Fprintf(w, "%s\n", header); err != nil {
			return err
		}

		table := tablewriter.NewWriter(w)
		table.Header([]string{"Profile", "Effect", "Hide End", "Start RGBA", "Active RGBA", "End RGBA", "Orig End"})

		var data [][]string
		for _, p := range group.Profiles {
			data = append(data, []string{
				contract.ColorProfileLabel(p.Name, cfg.UseColor),
				string(p.Effect),
				strconv.FormatBool(p.HideAtEnd),
				formatColor(p.StartColor, fmtFloat),
				formatColor(p.ActiveColor, fmtFloat),
				formatColor(p.EndColor, fmtFloat),
				strconv.FormatBool(p.UseEndOriginalColor),
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	return nil
}

// writeProfileCSV writes the profile listing in CSV format, one row per profile.
func writeProfileCSV(groups []schema.ProfileGroup) func(io.Writer) error {
	header := []string{
		"group",
		"profile",
		"effect",
		"hide_at_end",
		"consider_start",
		"use_end_original_color",
		"start_color",
		"active_color",
		"end_color",
	}
	return csvTo(header, func(csvWriter *csv.Writer) error {
		fmtFloat := floatFormatter(2)
		for _, group := range groups {
			for _, p := range group.Profiles {
				row := []string{
					group.Name,
					p.Name,
					string(p.Effect),
					strconv.FormatBool(p.HideAtEnd),
					strconv.FormatBool(p.ConsiderStart),
					strconv.FormatBool(p.UseEndOriginalColor),
					formatColor(p.StartColor, fmtFloat),
					formatColor(p.ActiveColor, fmtFloat),
					formatColor(p.EndColor, fmtFloat),
				}
				if err := csvWriter.Write(row); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// formatColor renders an RGBA tuple as a compact string.
func formatColor(c schema.Color, fmtFloat func(float64) string) string {
	return fmt.Sprintf("(%s, %s, %s, %s)", fmtFloat(c[0]), fmtFloat(c[1]), fmtFloat(c[2]), fmtFloat(c[3]))
}
