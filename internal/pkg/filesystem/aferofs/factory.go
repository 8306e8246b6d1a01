// nolint: forbidigo
package aferofs

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/termtools/tbx2sheet/internal/pkg/filesystem"
	"github.com/termtools/tbx2sheet/internal/pkg/filesystem/aferofs/localfs"
	"github.com/termtools/tbx2sheet/internal/pkg/filesystem/aferofs/memoryfs"
	"github.com/termtools/tbx2sheet/internal/pkg/utils/errors"
)

// NewLocalFs creates a filesystem rooted at the OS root,
// relative paths are resolved against the working dir by the commands.
func NewLocalFs(logger *zap.SugaredLogger, workingDir string) (fs filesystem.Fs, err error) {
	if workingDir == "" {
		workingDir, err = os.Getwd()
		if err != nil {
			return nil, errors.Errorf(`cannot get working dir from OS: %w`, err)
		}
	}

	// Convert working dir path to absolute
	workingDir, err = filepath.Abs(workingDir)
	if err != nil {
		return nil, err
	}

	// Working dir must exist
	if info, err := os.Stat(workingDir); err != nil || !info.IsDir() {
		return nil, errors.Errorf(`working directory "%s" not found`, workingDir)
	}

	// Create filesystem abstraction
	root := string(os.PathSeparator)
	return New(logger, localfs.New(root), workingDir), nil
}

func NewMemoryFs(logger *zap.SugaredLogger, workingDir string) (fs filesystem.Fs, err error) {
	// Create filesystem abstraction
	return New(logger, memoryfs.New(), workingDir), nil
}
