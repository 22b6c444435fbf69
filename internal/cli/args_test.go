package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/vvka-141/calsum/pkg/calsum"
)

func TestRequireAtMostOneInput(t *testing.T) {
	if err := RequireAtMostOneInput(sumCmd, nil); err != nil {
		t.Errorf("no args: unexpected error %v", err)
	}
	if err := RequireAtMostOneInput(sumCmd, []string{"input.txt"}); err != nil {
		t.Errorf("one arg: unexpected error %v", err)
	}

	err := RequireAtMostOneInput(sumCmd, []string{"a", "b"})
	if err == nil {
		t.Fatal("Expected error for too many args")
	}
	if !errors.Is(err, calsum.ErrUsage) {
		t.Errorf("Expected ErrUsage, got %v", err)
	}
	if !strings.Contains(err.Error(), "received 2") {
		t.Errorf("Expected argument count in message, got %v", err)
	}
}
