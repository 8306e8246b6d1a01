package localfs

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/termtools/tbx2sheet/internal/pkg/utils/errors"
)

type fs = afero.Fs

// LocalFs is abstraction of the local filesystem implemented by "os" package.
// All paths are relative to the basePath.
type LocalFs struct {
	fs
	basePath string
}

func New(basePath string) *LocalFs {
	if !filepath.IsAbs(basePath) {
		panic(errors.Errorf(`base path "%s" must be absolute`, basePath))
	}

	return &LocalFs{
		fs:       afero.NewBasePathFs(afero.NewOsFs(), basePath),
		basePath: basePath,
	}
}

func (fs *LocalFs) Name() string {
	return `local`
}

func (fs *LocalFs) BasePath() string {
	return fs.basePath
}
