package calibration

import (
	"fmt"
	"strings"

	"github.com/vvka-141/calsum/pkg/calsum"
)

// Aggregator sums calibration values over a line source.
// Aggregator is safe for concurrent use as long as the provided logger is.
type Aggregator struct {
	logger calsum.Logger
}

// NewAggregator creates an aggregator that reports per-line results to logger.
// Panics if logger is nil.
func NewAggregator(logger calsum.Logger) *Aggregator {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Aggregator{logger: logger}
}

// Aggregate consumes src to the end and summarises it.
//
// Each line is trimmed of surrounding whitespace before scanning. Values in
// [calsum.MinCalibrationValue, calsum.MaxCalibrationValue] are added to the
// total; every other line counts as invalid. A failing source yields a zero
// summary and an error wrapping calsum.ErrReadFailed.
func (a *Aggregator) Aggregate(src calsum.LineSource) (calsum.FileSummary, error) {
	if src == nil {
		return calsum.FileSummary{}, fmt.Errorf("line source cannot be nil: %w", calsum.ErrInvalidArgument)
	}

	var acc accumulator
	for line, err := range src.Lines() {
		if err != nil {
			return calsum.FileSummary{}, fmt.Errorf("%w after %d line(s): %w", calsum.ErrReadFailed, acc.summary.Lines(), err)
		}
		result := acc.add(line)
		a.logger.Verbose("line %d: %d", acc.summary.Lines(), result.Value)
	}

	a.logger.Verbose("%d line(s) scanned, %d without digits", acc.summary.Lines(), acc.summary.InvalidCount)
	return acc.result(), nil
}

// AggregateLines summarises an in-memory list of lines.
func AggregateLines(lines []string) calsum.FileSummary {
	acc := accumulator{summary: calsum.FileSummary{PerLine: make([]int, 0, len(lines))}}
	for _, line := range lines {
		acc.add(line)
	}
	return acc.result()
}

type accumulator struct {
	summary calsum.FileSummary
}

func (acc *accumulator) add(line string) calsum.LineResult {
	result := Scan(strings.TrimSpace(line))

	acc.summary.PerLine = append(acc.summary.PerLine, result.Value)
	if calsum.IsValidValue(result.Value) {
		acc.summary.Total += result.Value
	} else {
		acc.summary.InvalidCount++
	}
	return result
}

func (acc *accumulator) result() calsum.FileSummary {
	if acc.summary.PerLine == nil {
		acc.summary.PerLine = []int{}
	}
	return acc.summary
}
