// nolint: forbidigo
package filesystem

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/termtools/tbx2sheet/internal/pkg/utils/errors"
)

type Factory func(logger *zap.SugaredLogger, workingDir string) (fs Fs, err error)

// Fs - filesystem interface.
type Fs interface {
	Name() string // name of the used implementation, for example local, memory, ...
	BasePath() string
	WorkingDir() string
	SetLogger(logger *zap.SugaredLogger)
	Stat(path string) (os.FileInfo, error)
	Mkdir(path string) error
	Exists(path string) bool
	IsFile(path string) bool
	IsDir(path string) bool
	Create(name string) (afero.File, error)
	Open(name string) (afero.File, error)
	ReadFile(path, desc string) (*File, error)
	WriteFile(file *File) error
	ReadJsonFileTo(path, desc string, target any) error
}

// Rel returns relative path.
func Rel(base, path string) string {
	relPath, err := filepath.Rel(base, path)
	if err != nil {
		panic(errors.Errorf(`cannot get relative path, base="%s", path="%s"`, base, path))
	}
	return relPath
}

// Join joins any number of path elements into a single path.
func Join(elem ...string) string {
	return filepath.Join(elem...)
}

// Dir returns all but the last element of path, typically the path's directory.
func Dir(path string) string {
	return filepath.Dir(path)
}

// Base returns the last element of path.
func Base(path string) string {
	return filepath.Base(path)
}

// IsAbs reports whether the path is absolute.
func IsAbs(path string) bool {
	return filepath.IsAbs(path)
}
