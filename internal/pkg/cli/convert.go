package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/termtools/tbx2sheet/internal/pkg/flatten"
	"github.com/termtools/tbx2sheet/internal/pkg/model"
	"github.com/termtools/tbx2sheet/internal/pkg/sheet"
	"github.com/termtools/tbx2sheet/internal/pkg/sheet/csv"
	"github.com/termtools/tbx2sheet/internal/pkg/sheet/xlsx"
	"github.com/termtools/tbx2sheet/internal/pkg/tbx"
	"github.com/termtools/tbx2sheet/internal/pkg/utils/errors"
	"github.com/termtools/tbx2sheet/internal/pkg/validator"
)

const convertShortDescription = `Convert a TBX file to a spreadsheet`
const convertLongDescription = `Command "convert"

Convert a TBX terminology file to a spreadsheet.

The fields to export and their output names can be selected
interactively, or by the "--fields" and "--mapping-file" flags.
The "--auto" flag exports all discovered fields
under their original names.
`

func convertCommand(root *rootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: convertShortDescription,
		Long:  convertLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := root.logger
			path := args[0]

			// Validate the input file
			if !root.fs.IsFile(path) {
				return errors.Errorf(`TBX file "%s" not found`, path)
			}

			// Validate the output format
			format := root.options.GetString("format")
			if err := validator.ValidateCtx(format, cmd.Context(), "required,oneof=xlsx csv", "format"); err != nil {
				return err
			}

			// Discover fields present in the document
			discovered := tbx.DiscoverFields(logger, root.fs, path)

			// Resolve the selection and the output names
			selected, mapping, err := root.askConvertOptions(cmd.Context(), discovered)
			if err != nil {
				return err
			}

			// Load and process the document
			doc, err := tbx.LoadDocument(root.fs, path)
			if err != nil {
				return err
			}
			entries := tbx.ExtractEntries(logger, doc, selected)
			if len(entries) == 0 {
				return errors.Errorf(`no entries found in "%s"`, path)
			}

			table := flatten.Flatten(logger, entries, selected)
			if table.Empty() {
				return errors.Errorf(`no data extracted from "%s"`, path)
			}
			table = flatten.RenameColumns(table, mapping)

			// Write the output, with a fallback to the other format
			outputPath := root.options.GetString("output")
			if outputPath == "" {
				outputPath = sheet.OutputPath(path, format)
			}
			writer, err := sheet.WriteWithFallback(
				logger,
				newSheetWriter(root, format, outputPath),
				newSheetWriter(root, otherFormat(format), sheet.OutputPath(outputPath, otherFormat(format))),
				table,
			)
			if err != nil {
				return err
			}

			logger.Infof(`Converted "%s" to "%s".`, path, writer.Path())
			if root.options.GetBool("summary") || root.getDialogs().IsInteractive() {
				root.printSummary(table, entries, writer.Path())
			}
			return nil
		},
	}

	// Flags
	cmd.Flags().SortFlags = true
	cmd.Flags().Bool("auto", false, "export all fields under the original names")
	cmd.Flags().String("fields", "", "comma-separated list of fields to export")
	cmd.Flags().String("format", sheet.FormatXlsx, "output format: xlsx or csv")
	cmd.Flags().String("mapping-file", "", "path to a JSON file with the field names mapping")
	cmd.Flags().StringP("output", "o", "", "path to the output file")
	cmd.Flags().BoolP("summary", "s", false, "print conversion summary")

	return cmd
}

// askConvertOptions resolves the selected fields and their output names,
// the "--auto" flag skips the dialogs.
func (root *rootCommand) askConvertOptions(ctx context.Context, discovered model.SelectedFields) (model.SelectedFields, model.FieldMapping, error) {
	if root.options.GetBool("auto") {
		return discovered, model.IdentityMapping(discovered), nil
	}

	dialogs := root.getDialogs()
	selected, err := dialogs.AskSelectedFields(root.logger, root.options, discovered)
	if err != nil {
		return nil, nil, err
	}
	if err := validator.ValidateCtx(selected, ctx, "required,min=1", "fields"); err != nil {
		return nil, nil, err
	}

	mapping, err := dialogs.AskFieldMapping(root.logger, root.fs, root.options, selected)
	if err != nil {
		return nil, nil, err
	}
	return selected, mapping, nil
}

func newSheetWriter(root *rootCommand, format, path string) sheet.Writer {
	if format == sheet.FormatCsv {
		return csv.NewWriter(root.fs, path)
	}
	return xlsx.NewWriter(root.fs, path)
}

func otherFormat(format string) string {
	if format == sheet.FormatCsv {
		return sheet.FormatXlsx
	}
	return sheet.FormatCsv
}
