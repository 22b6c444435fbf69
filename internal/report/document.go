package report

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/calsum/pkg/calsum"
)

// document is the machine-readable shape of a summary.
type document struct {
	Lines         int   `json:"lines" yaml:"lines"`
	WithDigits    int   `json:"with_digits" yaml:"with_digits"`
	WithoutDigits int   `json:"without_digits" yaml:"without_digits"`
	Total         int   `json:"total" yaml:"total"`
	PerLine       []int `json:"per_line" yaml:"per_line,flow"`
}

func newDocument(summary calsum.FileSummary) document {
	perLine := summary.PerLine
	if perLine == nil {
		perLine = []int{}
	}
	return document{
		Lines:         summary.Lines(),
		WithDigits:    summary.ValidCount(),
		WithoutDigits: summary.InvalidCount,
		Total:         summary.Total,
		PerLine:       perLine,
	}
}

// JSONSink writes the summary as an indented JSON object.
type JSONSink struct {
	w io.Writer
}

func (s *JSONSink) Write(summary calsum.FileSummary) error {
	enc := json.NewEncoder(s.w)
	enc.SetIndent("", "  ")
	return enc.Encode(newDocument(summary))
}

// YAMLSink writes the summary as a YAML document.
type YAMLSink struct {
	w io.Writer
}

func (s *YAMLSink) Write(summary calsum.FileSummary) error {
	enc := yaml.NewEncoder(s.w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(summary)); err != nil {
		return err
	}
	return enc.Close()
}
