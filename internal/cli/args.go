package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/calsum/pkg/calsum"
)

// RequireAtMostOneInput validates that no more than one input argument is provided.
// Returns a helpful error message with usage and examples if there are too many.
func RequireAtMostOneInput(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf(`%w: accepts at most 1 arg(s), received %d

Usage: %s

Example:
  %s input.txt --format table`, calsum.ErrUsage, len(args), cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}
