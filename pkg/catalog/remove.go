package catalog

import (
	"context"
	"strings"

	"github.com/Earnest-Minds/option-remove-app/pkg/errors"
	"github.com/Earnest-Minds/option-remove-app/pkg/logging"
)

// RemoveResult reports the outcome of a remove workflow run.
type RemoveResult struct {
	Matched int         `json:"matched" yaml:"matched"` // Products where a matching option was found
	Removed int         `json:"removed" yaml:"removed"` // Options fully deleted
	Errors  []UserError `json:"errors" yaml:"errors"`   // Aggregated per-product errors
}

// Success reports whether every matched product had its option removed
// without errors.
func (r *RemoveResult) Success() bool {
	return len(r.Errors) == 0
}

// Err returns nil on success, or a single error joining every recorded
// error message.
func (r *RemoveResult) Err() error {
	return joinUserErrors(r.Errors)
}

// ValidateRemoveTerm checks the remove workflow's search term without
// touching the platform and returns it trimmed.
func ValidateRemoveTerm(term string) (string, error) {
	search := strings.TrimSpace(term)
	if search == "" {
		return "", &errors.ValidationError{
			Field:   "option name",
			Message: "must not be empty",
		}
	}
	return search, nil
}

// RemoveOption removes, from every product, the first option whose name
// contains term (case-insensitive substring match). Products with no
// matching option are skipped. An option holding more than one value is
// trimmed first: an update call deletes every value ID except the first,
// with a strategy that also deletes variants depending on the removed
// values. If that call reports errors, the option deletion is skipped for
// this product, leaving the option in single-value state. Otherwise the
// option itself is deleted. Errors aggregate across products and the loop
// continues; a transport-level failure aborts the whole workflow. Nothing
// undoes a successful value trim whose follow-up deletion fails.
func RemoveOption(ctx context.Context, api API, products []Product, term string) (*RemoveResult, error) {
	search, err := ValidateRemoveTerm(term)
	if err != nil {
		return nil, err
	}

	ctx = logging.WithOption(ctx, search)
	logger := logging.Ctx(ctx)

	result := &RemoveResult{}
	for _, product := range products {
		opt, ok := product.FindOption(search)
		if !ok {
			continue
		}
		result.Matched++

		if len(opt.Values) > 1 {
			deleteIDs := make([]string, 0, len(opt.Values)-1)
			for _, value := range opt.Values[1:] {
				deleteIDs = append(deleteIDs, value.ID)
			}

			userErrs, err := api.UpdateOption(ctx, product.ID, opt, deleteIDs)
			if err != nil {
				return nil, err
			}
			if len(userErrs) > 0 {
				for _, ue := range userErrs {
					logger.Warn().
						Str("product_id", product.ID).
						Str("user_error", ue.String()).
						Msg("option value trim rejected")
				}
				result.Errors = append(result.Errors, userErrs...)
				continue
			}
			logger.Debug().
				Str("product_id", product.ID).
				Int("values_deleted", len(deleteIDs)).
				Msg("option values trimmed")
		}

		deletedIDs, userErrs, err := api.DeleteOptions(ctx, product.ID, []string{opt.ID})
		if err != nil {
			return nil, err
		}
		if len(userErrs) > 0 {
			for _, ue := range userErrs {
				logger.Warn().
					Str("product_id", product.ID).
					Str("user_error", ue.String()).
					Msg("option deletion rejected")
			}
			result.Errors = append(result.Errors, userErrs...)
			continue
		}
		result.Removed++
		logger.Debug().
			Str("product_id", product.ID).
			Int("options_deleted", len(deletedIDs)).
			Msg("option removed")
	}

	logger.Info().
		Int("matched", result.Matched).
		Int("removed", result.Removed).
		Int("errors", len(result.Errors)).
		Msg("remove workflow complete")
	return result, nil
}
