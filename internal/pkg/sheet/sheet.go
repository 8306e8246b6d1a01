// Package sheet renders the flattened output table into a spreadsheet file.
package sheet

import (
	"strings"

	"go.uber.org/zap"

	"github.com/termtools/tbx2sheet/internal/pkg/model"
	"github.com/termtools/tbx2sheet/internal/pkg/utils/errors"
)

const (
	FormatXlsx = "xlsx"
	FormatCsv  = "csv"
)

// Writer renders the output table into one spreadsheet format.
// Every cell value is written as plain text.
type Writer interface {
	Format() string
	Path() string
	Write(table *model.Table) error
}

// WriteWithFallback writes the table with the primary writer and retries
// with the alternate backend on failure. It returns the writer that
// succeeded, so the caller can report the real output path.
func WriteWithFallback(logger *zap.SugaredLogger, primary Writer, fallback Writer, table *model.Table) (Writer, error) {
	err := primary.Write(table)
	if err == nil {
		return primary, nil
	}
	logger.Warnf(`Cannot write %s file "%s": %s`, primary.Format(), primary.Path(), err)
	logger.Infof(`Trying alternative %s writer...`, fallback.Format())

	if fallbackErr := fallback.Write(table); fallbackErr != nil {
		all := errors.NewMultiError()
		all.AppendWithPrefixf(err, `%s writer failed`, primary.Format())
		all.AppendWithPrefixf(fallbackErr, `alternative %s writer failed`, fallback.Format())
		return nil, all.ErrorOrNil()
	}

	return fallback, nil
}

// OutputPath derives the output path from the input path,
// replacing the extension with the format, eg. "foo.tbx" -> "foo.xlsx".
func OutputPath(inputPath, format string) string {
	if i := strings.LastIndex(inputPath, "."); i > strings.LastIndexAny(inputPath, `/\`) {
		inputPath = inputPath[:i]
	}
	return inputPath + "." + format
}
