package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vvka-141/calsum/internal/calibration"
	"github.com/vvka-141/calsum/internal/files/filesystem"
	"github.com/vvka-141/calsum/internal/files/source"
	"github.com/vvka-141/calsum/internal/logging"
	"github.com/vvka-141/calsum/internal/report"
	"github.com/vvka-141/calsum/pkg/calsum"
)

type sumFlagValues struct {
	format    string
	configDir string
}

var sumFlags sumFlagValues

var sumCmd = &cobra.Command{
	Use:   "sum [input]",
	Short: "Sum the calibration values of an input file",
	Long: `Sum the calibration values of an input file.

Each line is trimmed, then its first and last digit (numeral or English
word, "zero" to "nine") are joined into a two-digit value. Values from 1
to 99 are added to the total; any other line is reported as a line
without digits.

Examples:
  # Sum input.txt in the current directory
  calsum sum

  # Sum a specific file and show every line's value
  calsum sum puzzle.txt --format table

  # Read from a pipe and emit JSON
  cat puzzle.txt | calsum sum - --format json`,
	Args:              RequireAtMostOneInput,
	RunE:              runSum,
	ValidArgsFunction: completeInputFiles,
}

func init() {
	rootCmd.AddCommand(sumCmd)
	addSumFlags(sumCmd)
}

// addSumFlags registers the sum flags on cmd. The root command carries them
// too so that `calsum <input>` behaves like `calsum sum <input>`.
func addSumFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&sumFlags.format, "format", "f", string(report.FormatText),
		"Output format: "+strings.Join(report.Formats(), ", "))
	cmd.Flags().StringVar(&sumFlags.configDir, "config", ".", "Directory containing "+calsum.ConfigFileName)

	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	_ = cmd.RegisterFlagCompletionFunc("config", completeDirectories)
}

func runSum(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd, args, sumFlags)
	if err != nil {
		return err
	}

	logger := logging.NewWriterLogger(cmd.ErrOrStderr(), settings.Verbose)

	src, err := openInput(cmd, settings.Input, logger)
	if err != nil {
		return err
	}

	sink, err := report.NewSink(settings.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	summary, err := calibration.NewAggregator(logger).Aggregate(src)
	if err != nil {
		return err
	}

	if err := sink.Write(summary); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// openInput returns the line source for input. A missing file is reported
// before any scanning starts.
func openInput(cmd *cobra.Command, input string, logger calsum.Logger) (calsum.LineSource, error) {
	if input == calsum.StdinInput {
		logger.Info("Processing standard input")
		return source.FromReader(cmd.InOrStdin()), nil
	}

	exists, err := filesystem.Exists(inputFS, input)
	if err != nil {
		return nil, fmt.Errorf("failed to access %s: %w: %w", input, calsum.ErrReadFailed, err)
	}
	if !exists {
		return nil, fmt.Errorf("can't find %s: %w", input, calsum.ErrInputNotFound)
	}

	logger.Info("Processing %s", input)
	if info, err := inputFS.Stat(input); err == nil {
		logger.Verbose("Input size: %s", humanize.Bytes(uint64(info.Size())))
	}
	return source.FromFile(inputFS, input), nil
}
