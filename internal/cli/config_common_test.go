package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/calsum/internal/report"
	"github.com/vvka-141/calsum/pkg/calsum"
)

func TestLoadProjectConfig_Missing(t *testing.T) {
	cfg, err := loadProjectConfig(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "", cfg.Input)
}

func TestLoadProjectConfig_RelativeInputResolvedAgainstDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, calsum.ConfigFileName), []byte("input: data/in.txt\n"), 0644))

	cfg, err := loadProjectConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data", "in.txt"), cfg.Input)
}

func TestLoadProjectConfig_StdinKept(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, calsum.ConfigFileName), []byte("input: \"-\"\n"), 0644))

	cfg, err := loadProjectConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, calsum.StdinInput, cfg.Input)
}

func TestLoadProjectConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, calsum.ConfigFileName), []byte("{{invalid"), 0644))

	_, err := loadProjectConfig(dir)
	assert.ErrorIs(t, err, calsum.ErrInvalidConfig)
}

func TestResolveSettings_Defaults(t *testing.T) {
	resetFlags(rootCmd)
	for _, env := range []string{calsum.EnvInput, calsum.EnvFormat, calsum.EnvVerbose} {
		t.Setenv(env, "")
	}

	settings, err := resolveSettings(sumCmd, nil, sumFlagValues{format: "text", configDir: t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, calsum.DefaultInputFile, settings.Input)
	assert.Equal(t, report.FormatText, settings.Format)
	assert.False(t, settings.Verbose)
}

func TestResolveSettings_ArgBeatsEnv(t *testing.T) {
	resetFlags(rootCmd)
	t.Setenv(calsum.EnvInput, "env.txt")
	t.Setenv(calsum.EnvFormat, "json")
	t.Setenv(calsum.EnvVerbose, "1")

	settings, err := resolveSettings(sumCmd, []string{"arg.txt"}, sumFlagValues{format: "text", configDir: t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, "arg.txt", settings.Input)
	assert.Equal(t, report.FormatJSON, settings.Format)
	assert.True(t, settings.Verbose)
}
