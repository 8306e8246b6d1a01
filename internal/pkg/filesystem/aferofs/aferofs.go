// nolint: forbidigo
package aferofs

import (
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/termtools/tbx2sheet/internal/pkg/encoding/json"
	"github.com/termtools/tbx2sheet/internal/pkg/filesystem"
	"github.com/termtools/tbx2sheet/internal/pkg/utils/errors"
)

// backend is a filesystem implementation, for example local or memory.
type backend interface {
	afero.Fs
	BasePath() string
}

// Fs implements the filesystem.Fs abstraction over an afero backend.
type Fs struct {
	backend
	logger     *zap.SugaredLogger
	workingDir string
}

var _ filesystem.Fs = &Fs{}

func New(logger *zap.SugaredLogger, backend backend, workingDir string) *Fs {
	if workingDir == "" {
		workingDir = "."
	}
	return &Fs{backend: backend, logger: logger, workingDir: workingDir}
}

func (v *Fs) SetLogger(logger *zap.SugaredLogger) {
	v.logger = logger
}

func (v *Fs) WorkingDir() string {
	return v.workingDir
}

func (v *Fs) Mkdir(path string) error {
	if err := v.MkdirAll(path, 0o755); err != nil {
		return errors.Errorf(`cannot create directory "%s": %w`, path, err)
	}
	return nil
}

func (v *Fs) Exists(path string) bool {
	_, err := v.Stat(path)
	return err == nil
}

func (v *Fs) IsFile(path string) bool {
	if info, err := v.Stat(path); err == nil {
		return !info.IsDir()
	}
	return false
}

func (v *Fs) IsDir(path string) bool {
	if info, err := v.Stat(path); err == nil {
		return info.IsDir()
	}
	return false
}

func (v *Fs) ReadFile(path, desc string) (*filesystem.File, error) {
	content, err := afero.ReadFile(v.backend, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf(`missing %s "%s"`, fileDesc(desc), path)
		}
		return nil, errors.Errorf(`cannot read %s "%s": %w`, fileDesc(desc), path, err)
	}

	v.logDebugf(`Loaded "%s"`, path)
	return filesystem.NewFile(path, string(content)).SetDescription(desc), nil
}

func (v *Fs) WriteFile(file *filesystem.File) error {
	// Create directory
	if dir := filesystem.Dir(file.Path); dir != "." && dir != string(os.PathSeparator) {
		if !v.Exists(dir) {
			if err := v.Mkdir(dir); err != nil {
				return err
			}
		}
	}

	if err := afero.WriteFile(v.backend, file.Path, []byte(file.Content), 0o644); err != nil {
		return errors.Errorf(`cannot write %s "%s": %w`, fileDesc(file.Desc), file.Path, err)
	}

	v.logDebugf(`Saved "%s"`, file.Path)
	return nil
}

func (v *Fs) ReadJsonFileTo(path, desc string, target any) error {
	file, err := v.ReadFile(path, desc)
	if err != nil {
		return err
	}

	if err := json.DecodeString(file.Content, target); err != nil {
		return errors.Errorf(`%s "%s" is invalid: %w`, fileDesc(desc), path, err)
	}
	return nil
}

func (v *Fs) logDebugf(format string, args ...any) {
	if v.logger != nil {
		v.logger.Debugf(format, args...)
	}
}

func fileDesc(desc string) string {
	if desc == "" {
		return "file"
	}
	return desc
}
