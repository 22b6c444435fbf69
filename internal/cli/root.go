package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "calsum [input]",
	Short: "Sum calibration values hidden in lines of text",
	Long: `calsum reads a calibration document line by line. On each line it finds the
first and last digit, written either as a numeral ("7") or spelled out
("seven"), joins them into a two-digit value and adds up the values of
all lines.

Running calsum without a subcommand is the same as 'calsum sum'.

Input resolution (highest priority first):
  1. [input] argument ("-" reads standard input)
  2. CALSUM_INPUT environment variable (also read from .env)
  3. input in calsum.yaml
  4. input.txt

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or output format
  13 - Input could not be read
  14 - Input file not found`,
	Args:              RequireAtMostOneInput,
	RunE:              runSum,
	ValidArgsFunction: completeInputFiles,
	SilenceUsage:      true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout, os.Stderr)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	addSumFlags(rootCmd)
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
