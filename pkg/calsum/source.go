package calsum

import "iter"

// LineSource produces the lines of an input, in order.
//
// The sequence yields each line together with a nil error. If reading
// fails, it yields an empty line with the error and stops.
type LineSource interface {
	Lines() iter.Seq2[string, error]
}

// Sink renders a finished summary.
type Sink interface {
	Write(summary FileSummary) error
}
