// Package xlsx writes the output table as an Excel workbook.
package xlsx

import (
	"github.com/xuri/excelize/v2"

	"github.com/termtools/tbx2sheet/internal/pkg/filesystem"
	"github.com/termtools/tbx2sheet/internal/pkg/model"
	"github.com/termtools/tbx2sheet/internal/pkg/sheet"
	"github.com/termtools/tbx2sheet/internal/pkg/utils/errors"
)

const (
	sheetName = "Terminology"
	// Column width is the longest cell plus padding, capped at a readable maximum.
	widthPadding   = 2
	maxColumnWidth = 50
)

type Writer struct {
	fs   filesystem.Fs
	path string
}

func NewWriter(fs filesystem.Fs, path string) *Writer {
	return &Writer{fs: fs, path: path}
}

func (w *Writer) Format() string {
	return sheet.FormatXlsx
}

func (w *Writer) Path() string {
	return w.path
}

func (w *Writer) Write(table *model.Table) error {
	file := excelize.NewFile()
	defer func() {
		_ = file.Close()
	}()

	if err := file.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	// Header
	header := make([]any, len(table.Columns))
	for i, column := range table.Columns {
		header[i] = column
	}
	if err := file.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	// Rows, every value as plain text
	for i, row := range table.Rows {
		values := make([]any, len(table.Columns))
		for j, column := range table.Columns {
			values[j] = table.Cell(row, column)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := file.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
	}

	// Auto-size columns
	for i, column := range table.Columns {
		width := len(column)
		for _, row := range table.Rows {
			if l := len(table.Cell(row, column)); l > width {
				width = l
			}
		}

		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := file.SetColWidth(sheetName, name, name, float64(min(width+widthPadding, maxColumnWidth))); err != nil {
			return err
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return errors.Errorf(`cannot serialize xlsx file: %w`, err)
	}

	return w.fs.WriteFile(filesystem.NewFile(w.path, buffer.String()).SetDescription("xlsx file"))
}
