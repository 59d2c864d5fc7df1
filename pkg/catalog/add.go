package catalog

import (
	"context"
	"strings"

	"github.com/Earnest-Minds/option-remove-app/pkg/errors"
	"github.com/Earnest-Minds/option-remove-app/pkg/logging"
)

// AddResult reports the outcome of an add workflow run.
type AddResult struct {
	Added   int         `json:"added" yaml:"added"`     // Products whose create call reported no errors
	Skipped int         `json:"skipped" yaml:"skipped"` // Products that already carried the option
	Errors  []UserError `json:"errors" yaml:"errors"`   // Aggregated per-product errors
}

// Success reports whether every create call completed without errors.
// Added is only a meaningful count in that case: a partially failed run
// reports failure without volunteering how many creates applied.
func (r *AddResult) Success() bool {
	return len(r.Errors) == 0
}

// Err returns nil on success, or a single error joining every recorded
// error message.
func (r *AddResult) Err() error {
	return joinUserErrors(r.Errors)
}

// ValidateAddInput checks the add workflow's inputs without touching the
// platform and returns the trimmed option name. Callers holding no catalog
// snapshot yet should validate first, so bad input never costs a read.
func ValidateAddInput(optionName string, values []string) (string, error) {
	name := strings.TrimSpace(optionName)
	if name == "" {
		return "", &errors.ValidationError{
			Field:   "option name",
			Message: "must not be empty",
		}
	}
	if len(values) == 0 {
		return "", &errors.ValidationError{
			Field:   "values",
			Message: "at least one option value is required",
		}
	}
	return name, nil
}

// AddOptionToMissing adds an option named optionName with the given values
// to every product that does not already carry it (case-insensitive exact
// name match). Existing variants are left untouched. One create call is
// issued per missing product, sequentially; errors reported by individual
// calls are collected and the loop continues, with no rollback of earlier
// successful calls. A transport-level failure aborts the whole workflow.
func AddOptionToMissing(ctx context.Context, api API, products []Product, optionName string, values []string) (*AddResult, error) {
	name, err := ValidateAddInput(optionName, values)
	if err != nil {
		return nil, err
	}

	ctx = logging.WithOption(ctx, name)
	logger := logging.Ctx(ctx)

	toAdd := MissingOption(products, name)
	logger.Info().
		Int("products", len(products)).
		Int("missing", len(toAdd)).
		Msg("adding option to products missing it")

	result := &AddResult{Skipped: len(products) - len(toAdd)}
	for _, product := range toAdd {
		userErrs, err := api.CreateOption(ctx, product.ID, name, values)
		if err != nil {
			return nil, err
		}
		if len(userErrs) > 0 {
			for _, ue := range userErrs {
				logger.Warn().
					Str("product_id", product.ID).
					Str("user_error", ue.String()).
					Msg("create option rejected")
			}
			result.Errors = append(result.Errors, userErrs...)
			continue
		}
		result.Added++
		logger.Debug().Str("product_id", product.ID).Msg("option created")
	}

	return result, nil
}

// joinUserErrors collapses an aggregate error list into one error whose
// message joins every entry, or nil when the list is empty.
func joinUserErrors(userErrs []UserError) error {
	if len(userErrs) == 0 {
		return nil
	}
	msgs := make([]string, len(userErrs))
	for i, ue := range userErrs {
		msgs[i] = ue.Message
	}
	return errors.New(strings.Join(msgs, "; "))
}
