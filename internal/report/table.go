package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/vvka-141/calsum/pkg/calsum"
)

// TableSink writes one row per input line followed by the totals.
type TableSink struct {
	w io.Writer
}

func (s *TableSink) Write(summary calsum.FileSummary) error {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(s.w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
	})

	tbl.AppendHeader(table.Row{"Line", "Value", "Counted"})
	for i, v := range summary.PerLine {
		counted := "yes"
		if !calsum.IsValidValue(v) {
			counted = "no"
		}
		tbl.AppendRow(table.Row{i + 1, v, counted})
	}

	tbl.AppendFooter(table.Row{
		fmt.Sprintf("%s lines", humanize.Comma(int64(summary.Lines()))),
		humanize.Comma(int64(summary.Total)),
		fmt.Sprintf("%d without digits", summary.InvalidCount),
	})

	tbl.Render()
	return nil
}
