package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/wippyai/watfreq/analyzer"
)

// renderReport renders entries as a table, ascending by count like the
// plain output, with each sequence's share of all windows.
func renderReport(report *analyzer.Report, entries []analyzer.Entry) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Sequence", "Count", "Share"})

	for i, e := range entries {
		share := "-"
		if report.WindowCount > 0 {
			share = fmt.Sprintf("%.1f%%", 100*float64(e.Count)/float64(report.WindowCount))
		}
		tw.AppendRow(table.Row{i + 1, e.Sequence, e.Count, share})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	tw.AppendFooter(table.Row{"", "windows", report.WindowCount, ""})

	return tw.Render()
}
