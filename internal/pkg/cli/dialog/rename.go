package dialog

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/termtools/tbx2sheet/internal/pkg/cli/options"
	"github.com/termtools/tbx2sheet/internal/pkg/cli/prompt"
	"github.com/termtools/tbx2sheet/internal/pkg/filesystem"
	"github.com/termtools/tbx2sheet/internal/pkg/model"
	"github.com/termtools/tbx2sheet/internal/pkg/utils/errors"
	"github.com/termtools/tbx2sheet/internal/pkg/validator"
)

// AskFieldMapping resolves the output names of the selected fields.
// Priority: the --mapping-file flag, then an interactive dialog,
// the identity mapping is used as the last resort.
func (p *Dialogs) AskFieldMapping(logger *zap.SugaredLogger, fs filesystem.Fs, opts *options.Options, selected model.SelectedFields) (model.FieldMapping, error) {
	// Mapping can be loaded from a JSON file
	if opts.IsSet("mapping-file") {
		return loadMappingFile(fs, opts.GetString("mapping-file"), selected)
	}

	if p.IsInteractive() {
		keep := p.Confirm(&prompt.Confirm{
			Label:   "Keep the original field names?",
			Default: true,
		})
		if keep {
			return model.IdentityMapping(selected), nil
		}
		return p.askFieldNames(selected), nil
	}

	// Keep the original names in the non-interactive mode
	logger.Info("The original field names are kept.")
	return model.IdentityMapping(selected), nil
}

// askFieldNames asks for a new name of each selected field,
// an empty answer keeps the original name.
func (p *Dialogs) askFieldNames(selected model.SelectedFields) model.FieldMapping {
	mapping := model.IdentityMapping(selected)
	for _, field := range selected {
		result, ok := p.Ask(&prompt.Question{
			Label:   string(field),
			Help:    "Leave blank to keep the original name.",
			Default: string(field),
		})
		if result = strings.TrimSpace(result); ok && result != "" {
			mapping[string(field)] = result
		}
	}
	return mapping
}

// loadMappingFile reads the mapping from a JSON file, original name -> new name.
// Selected fields missing from the file keep their original name.
func loadMappingFile(fs filesystem.Fs, path string, selected model.SelectedFields) (model.FieldMapping, error) {
	mapping := make(model.FieldMapping)
	if err := fs.ReadJsonFileTo(path, "mapping file", &mapping); err != nil {
		return nil, err
	}

	if err := validator.ValidateCtx(mapping, context.Background(), "dive,keys,required,endkeys,required", "mapping"); err != nil {
		return nil, errors.PrefixErrorf(err, `mapping file "%s" is not valid`, path)
	}

	for _, field := range selected {
		if _, found := mapping[string(field)]; !found {
			mapping[string(field)] = string(field)
		}
	}
	return mapping, nil
}
