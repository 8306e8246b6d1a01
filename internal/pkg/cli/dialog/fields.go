package dialog

import (
	"strings"

	"go.uber.org/zap"

	"github.com/termtools/tbx2sheet/internal/pkg/cli/options"
	"github.com/termtools/tbx2sheet/internal/pkg/cli/prompt"
	"github.com/termtools/tbx2sheet/internal/pkg/model"
	"github.com/termtools/tbx2sheet/internal/pkg/utils/errors"
)

// AskSelectedFields resolves the set of fields to export.
// Priority: the --fields flag, then an interactive dialog,
// all discovered fields are used as the last resort.
func (p *Dialogs) AskSelectedFields(logger *zap.SugaredLogger, opts *options.Options, discovered model.SelectedFields) (model.SelectedFields, error) {
	// Fields can be defined by the flag
	if opts.IsSet("fields") {
		return parseFieldsList(opts.GetString("fields"), discovered)
	}

	// Ask the user
	if p.IsInteractive() {
		selected, ok := p.MultiSelect(&prompt.MultiSelect{
			Label:       "Fields",
			Description: "Please select the fields to export.",
			Options:     fieldsToStrings(discovered),
			Default:     fieldsToStrings(discovered),
			Validator:   prompt.AtLeastOneRequired,
		})
		if !ok {
			return nil, errors.New("please specify the fields to export")
		}

		out := make(model.SelectedFields, 0, len(selected))
		for _, field := range selected {
			out = append(out, model.FieldKey(field))
		}
		return out, nil
	}

	// Use all fields in the non-interactive mode
	logger.Info("All discovered fields are exported.")
	return discovered, nil
}

// parseFieldsList parses the --fields flag value, a comma-separated list.
// Each field must be present in the discovered fields.
func parseFieldsList(value string, discovered model.SelectedFields) (model.SelectedFields, error) {
	errs := errors.NewMultiError()
	var out model.SelectedFields
	for _, item := range strings.Split(value, ",") {
		field := model.FieldKey(strings.TrimSpace(item))
		if field == "" {
			continue
		}
		if !discovered.Contains(field) {
			errs.Append(errors.Errorf(`field "%s" not found in the document`, field))
			continue
		}
		if !out.Contains(field) {
			out = append(out, field)
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, errors.New("please specify at least one field")
	}
	return out, nil
}

func fieldsToStrings(fields model.SelectedFields) []string {
	out := make([]string, len(fields))
	for i, field := range fields {
		out[i] = string(field)
	}
	return out
}
