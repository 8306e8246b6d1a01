package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termtools/tbx2sheet/internal/pkg/filesystem"
	"github.com/termtools/tbx2sheet/internal/pkg/filesystem/aferofs"
	"github.com/termtools/tbx2sheet/internal/pkg/utils"
)

func TestLoadDotEnv(t *testing.T) {
	t.Parallel()
	logger, writer, buffer := utils.NewDebugLogger()
	fs, err := aferofs.NewMemoryFs(logger, "")
	require.NoError(t, err)

	// OS envs take precedence
	osEnvs := Empty()
	osEnvs.Set("FOO1", "BAR1")
	osEnvs.Set("OS_ONLY", "123")

	// Write envs to files, ".env.local" takes precedence over ".env"
	require.NoError(t, fs.WriteFile(filesystem.NewFile(".env.local", "FOO1=BAR2\nFOO2=BAR2\n")))
	require.NoError(t, fs.WriteFile(filesystem.NewFile(".env", "FOO1=BAZ\nFOO2=BAZ\nFOO3=BAR3\n")))

	// Load envs
	envs := LoadDotEnv(logger, osEnvs, fs, []string{"."})

	// Assert
	assert.Equal(t, map[string]string{
		"OS_ONLY": "123",
		"FOO1":    "BAR1",
		"FOO2":    "BAR2",
		"FOO3":    "BAR3",
	}, envs.ToMap())
	require.NoError(t, writer.Flush())
	logs := buffer.String()
	assert.Contains(t, logs, `Loaded env file ".env.local"`)
	assert.Contains(t, logs, `Loaded env file ".env"`)
}

func TestLoadDotEnvInvalidFile(t *testing.T) {
	t.Parallel()
	logger, writer, buffer := utils.NewDebugLogger()
	fs, err := aferofs.NewMemoryFs(logger, "")
	require.NoError(t, err)

	require.NoError(t, fs.WriteFile(filesystem.NewFile(".env.local", "invalid")))

	envs := LoadDotEnv(logger, Empty(), fs, []string{"."})

	// Invalid file is skipped with a warning
	assert.Empty(t, envs.ToMap())
	require.NoError(t, writer.Flush())
	assert.Contains(t, buffer.String(), `cannot parse env file ".env.local"`)
}

func TestLoadDotEnvDirIsSkipped(t *testing.T) {
	t.Parallel()
	logger, _, _ := utils.NewDebugLogger()
	fs, err := aferofs.NewMemoryFs(logger, "")
	require.NoError(t, err)

	// Dir with the expected file name
	require.NoError(t, fs.Mkdir(".env"))

	osEnvs := Empty()
	osEnvs.Set("FOO", "BAR")
	envs := LoadDotEnv(logger, osEnvs, fs, []string{"."})
	assert.Equal(t, map[string]string{"FOO": "BAR"}, envs.ToMap())
}

func TestLoadEnvString(t *testing.T) {
	t.Parallel()
	envs, err := LoadEnvString("FOO=BAR\n# comment\nBAZ=\"quoted value\"\n")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"FOO": "BAR", "BAZ": "quoted value"}, envs.ToMap())
}
