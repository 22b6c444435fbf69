package calsum_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/calsum/pkg/calsum"
)

func TestExitCodeForError_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown flag", errors.New("unknown flag --foo"), calsum.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x'"), calsum.ExitUsageError},
		{"accepts args", errors.New("accepts at most 1 arg(s), received 2"), calsum.ExitUsageError},
		{"invalid argument", errors.New("invalid argument \"abc\" for \"--format\""), calsum.ExitUsageError},
		{"wrapped sentinel", fmt.Errorf("bad input: %w", calsum.ErrUsage), calsum.ExitUsageError},
		{"general error", errors.New("something went wrong"), calsum.ExitGeneralError},
		{"nil error", nil, calsum.ExitSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calsum.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeForError_Sentinels(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{calsum.ErrInvalidConfig, calsum.ExitConfigError},
		{calsum.ErrUnsupportedFormat, calsum.ExitConfigError},
		{calsum.ErrInputNotFound, calsum.ExitInputMissing},
		{calsum.ErrReadFailed, calsum.ExitReadFailed},
		{calsum.ErrInvalidArgument, calsum.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("context: %w", tt.err)
			if got := calsum.ExitCodeForError(wrapped); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", wrapped, got, tt.want)
			}
		})
	}
}

func TestExitCodeForError_NilSourceIsGeneralError(t *testing.T) {
	for _, err := range []error{
		calsum.ErrInvalidArgument,
		fmt.Errorf("line source cannot be nil: %w", calsum.ErrInvalidArgument),
	} {
		if got := calsum.ExitCodeForError(err); got != calsum.ExitGeneralError {
			t.Errorf("ExitCodeForError(%v) = %d, want %d", err, got, calsum.ExitGeneralError)
		}
	}

	// cobra's own "invalid argument" flag errors stay usage errors
	flagErr := errors.New(`invalid argument "x" for "-v, --verbose" flag: strconv.ParseBool: parsing "x": invalid syntax`)
	if got := calsum.ExitCodeForError(flagErr); got != calsum.ExitUsageError {
		t.Errorf("ExitCodeForError(%v) = %d, want %d", flagErr, got, calsum.ExitUsageError)
	}
}
