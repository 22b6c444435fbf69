package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/calsum/internal/config"
	"github.com/vvka-141/calsum/internal/files/filesystem"
	"github.com/vvka-141/calsum/internal/report"
	"github.com/vvka-141/calsum/pkg/calsum"
)

// inputFS is the filesystem inputs and calsum.yaml are read from.
var inputFS filesystem.FileSystemProvider = filesystem.NewOSFileSystem()

// runSettings is the fully resolved configuration of one run.
type runSettings struct {
	Input   string
	Format  report.Format
	Verbose bool
}

// loadProjectConfig loads .env and calsum.yaml from dir.
// Returns an empty config if calsum.yaml does not exist (not an error).
func loadProjectConfig(dir string) (*config.ProjectConfig, error) {
	config.LoadEnv()

	projectCfg, err := config.LoadFrom(inputFS, dir)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return &config.ProjectConfig{}, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w: %w", calsum.ConfigFileName, calsum.ErrInvalidConfig, err)
	}

	// A relative input in calsum.yaml is relative to the file itself
	if projectCfg.Input != "" && projectCfg.Input != calsum.StdinInput && !filepath.IsAbs(projectCfg.Input) {
		projectCfg.Input = filepath.Join(dir, projectCfg.Input)
	}
	return projectCfg, nil
}

// resolveSettings merges command line, environment, calsum.yaml and defaults.
// Priority (highest to lowest): CLI > environment > calsum.yaml > defaults
func resolveSettings(cmd *cobra.Command, args []string, flags sumFlagValues) (runSettings, error) {
	projectCfg, err := loadProjectConfig(flags.configDir)
	if err != nil {
		return runSettings{}, err
	}
	if err := projectCfg.ApplyEnv(); err != nil {
		return runSettings{}, err
	}
	if err := projectCfg.Validate(); err != nil {
		return runSettings{}, err
	}

	settings := runSettings{
		Input:   calsum.DefaultInputFile,
		Format:  report.FormatText,
		Verbose: projectCfg.Verbose,
	}
	if cmd.Flags().Changed("verbose") {
		settings.Verbose = getVerboseFlag(cmd)
	}

	if projectCfg.Input != "" {
		settings.Input = projectCfg.Input
	}
	if len(args) == 1 {
		settings.Input = args[0]
	}

	formatName := projectCfg.Format
	if cmd.Flags().Changed("format") {
		formatName = flags.format
	}
	if formatName != "" {
		settings.Format, err = report.ParseFormat(formatName)
		if err != nil {
			return runSettings{}, err
		}
	}

	return settings, nil
}
