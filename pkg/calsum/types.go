package calsum

// NotFound marks an index for which no digit occurrence exists.
const NotFound = -1

// DigitNames maps each digit symbol to its English word form.
// The index of each entry is the digit it spells.
var DigitNames = [10]string{
	"zero",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
}

// Calibration values outside this range are treated as "no digits found".
const (
	MinCalibrationValue = 1
	MaxCalibrationValue = 99
)

// LineResult is the outcome of scanning a single line.
type LineResult struct {
	// First is the digit occurring earliest in the line, or 0 when none was found.
	First int `json:"first" yaml:"first"`

	// FirstIndex is the byte offset of First, or NotFound.
	FirstIndex int `json:"first_index" yaml:"first_index"`

	// Last is the digit occurring latest in the line, or 0 when none was found.
	Last int `json:"last" yaml:"last"`

	// LastIndex is the byte offset of Last, or NotFound.
	LastIndex int `json:"last_index" yaml:"last_index"`

	// Value is First*10 + Last.
	Value int `json:"value" yaml:"value"`
}

// Found reports whether the line contained at least one digit in either form.
func (r LineResult) Found() bool {
	return r.FirstIndex != NotFound
}

// IsValidValue reports whether v counts towards a file total.
func IsValidValue(v int) bool {
	return v >= MinCalibrationValue && v <= MaxCalibrationValue
}

// FileSummary aggregates the line results of a whole input.
type FileSummary struct {
	// Total is the sum of all valid line values.
	Total int `json:"total" yaml:"total"`

	// InvalidCount is the number of lines whose value fell outside
	// [MinCalibrationValue, MaxCalibrationValue].
	InvalidCount int `json:"invalid_count" yaml:"invalid_count"`

	// PerLine holds every line's value in input order.
	PerLine []int `json:"per_line" yaml:"per_line"`
}

// Lines returns the number of lines processed.
func (s FileSummary) Lines() int {
	return len(s.PerLine)
}

// ValidCount returns the number of lines that contributed to Total.
func (s FileSummary) ValidCount() int {
	return s.Lines() - s.InvalidCount
}
