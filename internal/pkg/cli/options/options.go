// Package options unifies the configuration sources:
// flags have the highest priority, then OS ENVs, then ".env" files.
package options

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/termtools/tbx2sheet/internal/pkg/env"
	"github.com/termtools/tbx2sheet/internal/pkg/filesystem"
)

const (
	SetByFlag    = "flag"
	SetByEnv     = "env"
	SetByDefault = "default"
)

// Options contains parsed flags and ENV variables.
type Options struct {
	Verbose        bool   // verbose mode, print details to console
	LogFilePath    string // path to the log file
	NonInteractive bool   // never show interactive prompts

	data  map[string]any    // flag name -> value
	setBy map[string]string // flag name -> source of the value
}

func NewOptions() *Options {
	return &Options{
		data:  make(map[string]any),
		setBy: make(map[string]string),
	}
}

// Load values of all flags, each from the source with the highest priority.
func (o *Options) Load(logger *zap.SugaredLogger, osEnvs *env.Map, fs filesystem.Fs, flags *pflag.FlagSet) error {
	// ENVs from OS are extended with ".env" files from the working dir
	envs := env.LoadDotEnv(logger, osEnvs, fs, []string{fs.WorkingDir()})
	naming := env.NewNamingConvention()

	flags.VisitAll(func(flag *pflag.Flag) {
		envValue, envFound := envs.Lookup(naming.Replace(flag.Name))
		switch {
		case flag.Changed:
			o.set(flag.Name, flag.Value.String(), SetByFlag)
		case envFound:
			o.set(flag.Name, envValue, SetByEnv)
		default:
			o.set(flag.Name, flag.DefValue, SetByDefault)
		}
	})

	// Shortcuts for the persistent flags
	o.Verbose = o.GetBool("verbose")
	o.LogFilePath = o.GetString("log-file")
	o.NonInteractive = o.GetBool("non-interactive")
	return nil
}

func (o *Options) Set(key string, value any) {
	o.set(key, value, SetByFlag)
}

func (o *Options) set(key string, value any, setBy string) {
	o.data[key] = value
	o.setBy[key] = setBy
}

// KeySetBy returns the source of the value, see SetBy* constants.
func (o *Options) KeySetBy(key string) string {
	return o.setBy[key]
}

func (o *Options) IsSet(key string) bool {
	setBy, found := o.setBy[key]
	return found && setBy != SetByDefault
}

func (o *Options) GetString(key string) string {
	return cast.ToString(o.data[key])
}

func (o *Options) GetBool(key string) bool {
	return cast.ToBool(o.data[key])
}

func (o *Options) GetInt(key string) int {
	return cast.ToInt(o.data[key])
}

// Dump Options for debugging, hide secret values.
func (o *Options) Dump() string {
	keys := make([]string, 0, len(o.data))
	for key := range o.data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var out strings.Builder
	out.WriteString("Parsed options:\n")
	for _, key := range keys {
		out.WriteString(fmt.Sprintf("  %s = \"%s\"\n", key, maskValue(key, o.GetString(key))))
	}
	return out.String()
}

func maskValue(key, value string) string {
	if !strings.Contains(key, "token") && !strings.Contains(key, "secret") && !strings.Contains(key, "password") {
		return value
	}
	if len(value) <= 7 {
		return "*****"
	}
	return value[:7] + "*****"
}
