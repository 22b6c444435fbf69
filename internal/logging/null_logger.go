package logging

import "github.com/vvka-141/calsum/pkg/calsum"

var (
	_ calsum.Logger = (*NullLogger)(nil)
	_ calsum.Logger = (*ConsoleLogger)(nil)
)

// NullLogger discards everything. Aggregation in tests and library callers
// that want no per-line output use it.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(format string, args ...interface{}) {}

func (l *NullLogger) Info(format string, args ...interface{}) {}

func (l *NullLogger) Error(format string, args ...interface{}) {}
