package report

import (
	"fmt"
	"io"

	"github.com/vvka-141/calsum/pkg/calsum"
)

// TextSink writes the plain summary:
//
//	<lines> lines processed (<invalid> without digits)
//	Total: <total>
type TextSink struct {
	w io.Writer
}

func (s *TextSink) Write(summary calsum.FileSummary) error {
	_, err := fmt.Fprintf(s.w, "%d lines processed (%d without digits)\nTotal: %d\n",
		summary.Lines(), summary.InvalidCount, summary.Total)
	return err
}
