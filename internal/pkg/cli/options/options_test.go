package options

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"

	"github.com/termtools/tbx2sheet/internal/pkg/env"
	"github.com/termtools/tbx2sheet/internal/pkg/filesystem"
	"github.com/termtools/tbx2sheet/internal/pkg/filesystem/aferofs"
	"github.com/termtools/tbx2sheet/internal/pkg/utils"
)

func TestLoadPriority(t *testing.T) {
	t.Parallel()
	logger, _, _ := utils.NewDebugLogger()
	fs, err := aferofs.NewMemoryFs(logger, "")
	assert.NoError(t, err)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-file", "", "")
	flags.String("format", "xlsx", "")
	flags.Bool("verbose", false, "")
	assert.NoError(t, flags.Parse([]string{"--log-file", "/tmp/log.txt"}))

	osEnvs := env.Empty()
	osEnvs.Set("TBX2SHEET_LOG_FILE", "/from/env.txt")
	osEnvs.Set("TBX2SHEET_VERBOSE", "true")

	opts := NewOptions()
	assert.NoError(t, opts.Load(logger, osEnvs, fs, flags))

	// Flag beats ENV
	assert.Equal(t, "/tmp/log.txt", opts.GetString("log-file"))
	assert.Equal(t, SetByFlag, opts.KeySetBy("log-file"))
	// ENV beats default
	assert.True(t, opts.GetBool("verbose"))
	assert.Equal(t, SetByEnv, opts.KeySetBy("verbose"))
	// Default
	assert.Equal(t, "xlsx", opts.GetString("format"))
	assert.Equal(t, SetByDefault, opts.KeySetBy("format"))
	assert.False(t, opts.IsSet("format"))

	// Shortcuts
	assert.Equal(t, "/tmp/log.txt", opts.LogFilePath)
	assert.True(t, opts.Verbose)
}

func TestLoadDotEnvFile(t *testing.T) {
	t.Parallel()
	logger, _, _ := utils.NewDebugLogger()
	fs, err := aferofs.NewMemoryFs(logger, "")
	assert.NoError(t, err)
	assert.NoError(t, fs.WriteFile(filesystem.NewFile(".env", "TBX2SHEET_FORMAT=csv")))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", "xlsx", "")
	assert.NoError(t, flags.Parse([]string{}))

	opts := NewOptions()
	assert.NoError(t, opts.Load(logger, env.Empty(), fs, flags))
	assert.Equal(t, "csv", opts.GetString("format"))
	assert.Equal(t, SetByEnv, opts.KeySetBy("format"))
}

func TestDumpOptions(t *testing.T) {
	t.Parallel()
	opts := NewOptions()
	opts.Set("mapping-file", "mapping.json")
	opts.Set("storage-api-token", "12345-67890abcd")
	expected := "Parsed options:\n  mapping-file = \"mapping.json\"\n  storage-api-token = \"12345-6*****\"\n"
	assert.Equal(t, expected, opts.Dump())
}
