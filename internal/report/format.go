package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/vvka-141/calsum/pkg/calsum"
)

// Format names an output renderer.
type Format string

const (
	FormatAuto   Format = "auto"
	FormatText   Format = "text"
	FormatStyled Format = "styled"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatTable  Format = "table"
)

var formats = []Format{FormatAuto, FormatText, FormatStyled, FormatJSON, FormatYAML, FormatTable}

// Formats returns the accepted format names, for help text and completion.
func Formats() []string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

// ParseFormat converts a user supplied name into a Format. Matching is
// case-insensitive and the empty string means text.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatText, nil
	}
	want := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, f := range formats {
		if f == want {
			return f, nil
		}
	}
	return "", fmt.Errorf("%q (expected one of %s): %w", name, strings.Join(Formats(), ", "), calsum.ErrUnsupportedFormat)
}

// DetectFormat resolves FormatAuto for output going to out.
//
// Returns FormatText if:
//   - out is not a terminal (piped output, CI logs)
//   - NO_COLOR is set
//   - CI is set
//
// Returns FormatStyled otherwise.
func DetectFormat(out *os.File) Format {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("CI") != "" {
		return FormatText
	}
	if out == nil || !term.IsTerminal(int(out.Fd())) {
		return FormatText
	}
	return FormatStyled
}

// NewSink returns the renderer for format writing to w.
// FormatAuto is resolved against w when w is an *os.File, and falls back to text otherwise.
func NewSink(format Format, w io.Writer) (calsum.Sink, error) {
	if format == FormatAuto {
		f, _ := w.(*os.File)
		format = DetectFormat(f)
	}

	switch format {
	case FormatText:
		return &TextSink{w: w}, nil
	case FormatStyled:
		return &StyledSink{w: w}, nil
	case FormatJSON:
		return &JSONSink{w: w}, nil
	case FormatYAML:
		return &YAMLSink{w: w}, nil
	case FormatTable:
		return &TableSink{w: w}, nil
	default:
		return nil, fmt.Errorf("%q: %w", format, calsum.ErrUnsupportedFormat)
	}
}
