package cli

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/termtools/tbx2sheet/internal/pkg/cli/dialog"
	"github.com/termtools/tbx2sheet/internal/pkg/cli/options"
	"github.com/termtools/tbx2sheet/internal/pkg/cli/prompt"
	nopPrompt "github.com/termtools/tbx2sheet/internal/pkg/cli/prompt/nop"
	"github.com/termtools/tbx2sheet/internal/pkg/env"
	"github.com/termtools/tbx2sheet/internal/pkg/filesystem"
	"github.com/termtools/tbx2sheet/internal/pkg/log"
	"github.com/termtools/tbx2sheet/internal/pkg/utils"
	"github.com/termtools/tbx2sheet/internal/pkg/version"
)

const description = `
TBX to Spreadsheet Converter

Convert a TBX terminology file
to an Excel or CSV spreadsheet.

Start by running the "convert" sub-command with a TBX file.
The fields to export can be selected interactively.
`

const usageTemplate = `Usage:{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{else if .Runnable}}
  {{.UseLine}}{{end}}{{if gt (len .Aliases) 0}}

Aliases:`

type rootCommand struct {
	cmd          *cobra.Command
	fsFactory    filesystem.Factory
	fs           filesystem.Fs      // filesystem abstraction
	envs         *env.Map           // ENVs from OS
	options      *options.Options   // parsed flags and env variables
	prompt       prompt.Prompt      // user interaction
	dialogs      *dialog.Dialogs    // interactive dialogs, see getDialogs
	start        time.Time          // cmd start time
	initialized  bool               // init method was called
	logFile      *os.File           // log file instance
	logFileClear bool               // is log file temporary? if yes, it will be removed at the end, if no error occurs
	logger       *zap.SugaredLogger // log to console and logFile
}

// NewRootCommand creates parent of all sub-commands.
func NewRootCommand(stdin io.Reader, stdout io.Writer, stderr io.Writer, prompt prompt.Prompt, envs *env.Map, fsFactory filesystem.Factory) *rootCommand {
	root := &rootCommand{
		fsFactory: fsFactory,
		envs:      envs,
		options:   options.NewOptions(),
		prompt:    prompt,
		start:     time.Now(),
	}

	// Command definition
	root.cmd = &cobra.Command{
		Use:          path.Base(os.Args[0]), // name of the binary
		Version:      version.Version(),
		Short:        description,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Print help if no command specified
			return root.cmd.Help()
		},
	}

	// Setup in/out
	root.cmd.SetIn(stdin)
	root.cmd.SetOut(stdout)
	root.cmd.SetErr(stderr)

	// Setup templates
	root.cmd.SetVersionTemplate("{{.Version}}")
	root.cmd.SetUsageTemplate(
		regexp.MustCompile(`Usage:(.|\n)*Aliases:`).ReplaceAllString(root.cmd.UsageTemplate(), usageTemplate),
	)

	// Persistent flags for all sub-commands
	flags := root.cmd.PersistentFlags()
	flags.SortFlags = true
	flags.BoolP("help", "h", false, "print help for command")
	flags.StringP("log-file", "l", "", "path to a log file for details")
	flags.BoolP("non-interactive", "", false, "disable interactive dialogs")
	flags.BoolP("verbose", "v", false, "print details")
	flags.StringP("working-dir", "d", "", "use other working directory")

	// Root command flags
	root.cmd.Flags().SortFlags = true
	root.cmd.Flags().BoolP("version", "V", false, "print version")

	// Init when flags are parsed
	root.cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return root.init(cmd)
	}

	// Sub-commands
	root.cmd.AddCommand(
		convertCommand(root),
		fieldsCommand(root),
	)

	return root
}

// Execute command or sub-command.
func (root *rootCommand) Execute() (exitCode int) {
	defer root.tearDown()
	if err := root.cmd.Execute(); err != nil {
		// Init, it can be uninitialized, if error occurred before PersistentPreRun call
		_ = root.init(root.cmd)
		// Error is already logged
		return 1
	}
	return 0
}

// getDialogs returns interactive dialogs, in the non-interactive mode
// each dialog resolves to its default value.
func (root *rootCommand) getDialogs() *dialog.Dialogs {
	if root.dialogs == nil {
		if root.options.NonInteractive {
			root.dialogs = dialog.New(nopPrompt.New())
		} else {
			root.dialogs = dialog.New(root.prompt)
		}
	}
	return root.dialogs
}

// tearDown makes clean-up after command execution.
func (root *rootCommand) tearDown() {
	if err := recover(); err == nil {
		if root.logFile != nil {
			if err = root.logFile.Close(); err != nil {
				panic(fmt.Errorf("cannot close log file \"%s\": %s", root.options.LogFilePath, err))
			}
		}

		// No error -> remove log file if temporary
		if root.logFileClear {
			// nolint: forbidigo
			if err = os.Remove(root.options.LogFilePath); err != nil {
				panic(fmt.Errorf("cannot remove temp log file \"%s\": %s", root.options.LogFilePath, err))
			}
		}
	} else {
		// Error -> process and close log file
		exitCode := utils.ProcessPanic(err, root.logger, root.options.LogFilePath)
		if root.logFile != nil {
			if err = root.logFile.Close(); err != nil {
				panic(fmt.Errorf("cannot close log file \"%s\": %s", root.options.LogFilePath, err))
			}
		}
		os.Exit(exitCode)
	}
}

// init sets logger and options after flags are parsed.
func (root *rootCommand) init(cmd *cobra.Command) (err error) {
	if root.initialized {
		return
	}

	// Run only once
	root.initialized = true

	// Logger must always be set up, even if there is a panic somewhere
	defer func() {
		if root.logger == nil {
			root.setupLogger()
		}
	}()

	// Temporary logger
	tmpLogger := zap.NewNop().Sugar()

	// Create filesystem abstraction
	workingDir, _ := cmd.Flags().GetString(`working-dir`)
	if root.fs, err = root.fsFactory(tmpLogger, workingDir); err != nil {
		return err
	}

	// Load values from flags and envs
	if err = root.options.Load(tmpLogger, root.envs, root.fs, cmd.Flags()); err != nil {
		return err
	}

	// Setup logger and log options load warnings
	root.setupLogger()
	root.logDebugInfo()
	root.fs.SetLogger(root.logger)

	return nil
}

// setupLogger according to the options.
func (root *rootCommand) setupLogger() {
	logFile, logFileErr := root.getLogFile()
	root.logger = log.NewLogger(root.cmd.OutOrStdout(), root.cmd.ErrOrStderr(), logFile, root.options.Verbose)
	root.logFile = logFile
	root.cmd.SetOut(log.ToInfoWriter(root.logger))
	root.cmd.SetErr(log.ToWarnWriter(root.logger))

	// Warn if user specified log file and it cannot be opened
	if logFileErr != nil && !root.logFileClear {
		root.logger.Warnf("Cannot open log file: %s", logFileErr)
	}
}

func (root *rootCommand) logDebugInfo() {
	// Version
	_, err := log.ToDebugWriter(root.logger).WriteString(root.cmd.Version)
	if err != nil {
		panic(err)
	}

	// Command
	root.logger.Debugf("Running command %v", os.Args)

	// Options
	root.logger.Debug(root.options.Dump())
}

// Get log file defined in the flags or create a temp file.
// Log file can be outside working directory, so it is NOT using virtual filesystem.
func (root *rootCommand) getLogFile() (logFile *os.File, logFileErr error) {
	if len(root.options.LogFilePath) > 0 {
		root.logFileClear = false // log file defined by user will be preserved
	} else {
		// Generate a unique hash if multiple instances start simultaneously
		randomHash := ``
		randomBytes := make([]byte, 6)
		if _, err := rand.Read(randomBytes); err == nil {
			randomHash = fmt.Sprintf(`-%x`, randomBytes)
		}

		// nolint forbidigo
		root.options.LogFilePath = filepath.Join(os.TempDir(), fmt.Sprintf("tbx2sheet-%d%s.txt", time.Now().Unix(), randomHash))
		root.logFileClear = true // temp log file will be removed. It will be preserved only in case of error
	}

	// nolint: forbidigo
	logFile, logFileErr = os.OpenFile(root.options.LogFilePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if logFileErr != nil {
		root.options.LogFilePath = ""
	}
	return
}
