package calsum

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	summary, err := aggregator.Aggregate(src)
//	if errors.Is(err, calsum.ErrReadFailed) {
//	    // Handle an unreadable input
//	}
var (
	// ErrInvalidArgument indicates a caller broke an API contract, e.g. passed a nil source.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInputNotFound indicates the input file does not exist.
	ErrInputNotFound = errors.New("input not found")

	// ErrReadFailed indicates the line source failed while being read.
	ErrReadFailed = errors.New("read failed")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnsupportedFormat indicates the requested output format is not known.
	ErrUnsupportedFormat = errors.New("unsupported output format")

	// ErrUsage indicates the command line was malformed.
	ErrUsage = errors.New("usage error")
)

// usagePatterns are fragments of cobra/pflag error messages for command line misuse.
var usagePatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrUnsupportedFormat):
		return ExitConfigError
	case errors.Is(err, ErrInputNotFound):
		return ExitInputMissing
	case errors.Is(err, ErrReadFailed):
		return ExitReadFailed
	case errors.Is(err, ErrInvalidArgument):
		// its text overlaps the cobra "invalid argument" pattern below
		return ExitGeneralError
	}

	// cobra does not expose typed errors for flag and argument problems
	errStr := err.Error()
	for _, p := range usagePatterns {
		if strings.Contains(errStr, p) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
