// Package csv writes the output table as an RFC 4180 CSV file,
// the alternative backend when the Excel writer fails.
package csv

import (
	"bytes"
	stdcsv "encoding/csv"

	"github.com/termtools/tbx2sheet/internal/pkg/filesystem"
	"github.com/termtools/tbx2sheet/internal/pkg/model"
	"github.com/termtools/tbx2sheet/internal/pkg/sheet"
	"github.com/termtools/tbx2sheet/internal/pkg/utils/errors"
)

type Writer struct {
	fs   filesystem.Fs
	path string
}

func NewWriter(fs filesystem.Fs, path string) *Writer {
	return &Writer{fs: fs, path: path}
}

func (w *Writer) Format() string {
	return sheet.FormatCsv
}

func (w *Writer) Path() string {
	return w.path
}

func (w *Writer) Write(table *model.Table) error {
	var buffer bytes.Buffer
	writer := stdcsv.NewWriter(&buffer)

	if err := writer.Write(table.Columns); err != nil {
		return err
	}

	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i, column := range table.Columns {
			record[i] = table.Cell(row, column)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Errorf(`cannot serialize csv file: %w`, err)
	}

	return w.fs.WriteFile(filesystem.NewFile(w.path, buffer.String()).SetDescription("csv file"))
}
