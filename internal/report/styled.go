package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vvka-141/calsum/pkg/calsum"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Width(16)

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(0, 2)
)

// StyledSink renders the summary as a bordered panel.
type StyledSink struct {
	w io.Writer
}

func (s *StyledSink) Write(summary calsum.FileSummary) error {
	invalid := humanize.Comma(int64(summary.InvalidCount))
	if summary.InvalidCount > 0 {
		invalid = warningStyle.Render(invalid)
	}

	rows := []string{
		titleStyle.Render("Calibration summary"),
		"",
		row("Lines", humanize.Comma(int64(summary.Lines()))),
		row("With digits", humanize.Comma(int64(summary.ValidCount()))),
		row("Without digits", invalid),
		row("Total", totalStyle.Render(humanize.Comma(int64(summary.Total)))),
	}

	_, err := fmt.Fprintln(s.w, boxStyle.Render(strings.Join(rows, "\n")))
	return err
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}
