package cli

import (
	"strings"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/fatih/color"

	"github.com/termtools/tbx2sheet/internal/pkg/model"
)

// printSummary logs the conversion stats.
func (root *rootCommand) printSummary(table *model.Table, entries []*model.Entry, outputPath string) {
	logger := root.logger
	mark := color.GreenString("✓")

	logger.Info("Summary:")
	logger.Infof(`%s %d entries converted`, mark, len(entries))
	if languages := table.Languages(); len(languages) > 0 {
		logger.Infof(`%s %d languages: %s`, mark, len(languages), strings.Join(languages, ", "))
	}
	logger.Infof(`%s %d columns`, mark, len(table.Columns))

	if info, err := root.fs.Stat(outputPath); err == nil {
		size := datasize.ByteSize(info.Size())
		logger.Infof(`%s output "%s", %s`, mark, outputPath, size.HumanReadable())
	} else {
		logger.Infof(`%s output "%s"`, mark, outputPath)
	}

	logger.Infof(`%s done in %s`, mark, time.Since(root.start).Round(time.Millisecond))
}
