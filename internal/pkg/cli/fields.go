package cli

import (
	"github.com/spf13/cobra"

	"github.com/termtools/tbx2sheet/internal/pkg/encoding/json"
	"github.com/termtools/tbx2sheet/internal/pkg/tbx"
	"github.com/termtools/tbx2sheet/internal/pkg/utils/errors"
)

const fieldsShortDescription = `List fields found in a TBX file`
const fieldsLongDescription = `Command "fields"

List the fields found in a TBX terminology file.

The listed names can be used with the "--fields" flag
of the "convert" command.
`

func fieldsCommand(root *rootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields <file>",
		Short: fieldsShortDescription,
		Long:  fieldsLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := root.logger
			path := args[0]

			if !root.fs.IsFile(path) {
				return errors.Errorf(`TBX file "%s" not found`, path)
			}

			discovered := tbx.DiscoverFields(logger, root.fs, path)

			if root.options.GetBool("json") {
				logger.Info(json.MustEncodeString(discovered, true))
				return nil
			}

			logger.Infof(`Found %d fields in "%s":`, len(discovered), path)
			for i, field := range discovered {
				logger.Infof("  %d. %s", i+1, field)
			}
			return nil
		},
	}

	cmd.Flags().SortFlags = true
	cmd.Flags().Bool("json", false, "print fields as a JSON array")

	return cmd
}
