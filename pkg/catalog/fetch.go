package catalog

import (
	"context"

	"github.com/Earnest-Minds/option-remove-app/pkg/constants"
	"github.com/Earnest-Minds/option-remove-app/pkg/errors"
	"github.com/Earnest-Minds/option-remove-app/pkg/logging"
)

// FetchAllProducts reads the entire product catalog, one page at a time,
// until the remote platform reports no further pages. Pages are fetched
// strictly sequentially: each request's cursor is the cursor of the
// previous page's last product. Any remote error aborts the read and is
// returned as-is; there is no retry.
func FetchAllProducts(ctx context.Context, api API) ([]Product, error) {
	logger := logging.Ctx(ctx)

	var all []Product
	cursor := ""
	for page := 1; ; page++ {
		productPage, err := api.ProductsPage(ctx, constants.ProductsPageSize, cursor)
		if err != nil {
			return nil, err
		}

		all = append(all, productPage.Products...)
		logger.Debug().
			Int("page", page).
			Int("page_size", len(productPage.Products)).
			Int("total", len(all)).
			Bool("has_next_page", productPage.HasNextPage).
			Msg("fetched product page")

		if !productPage.HasNextPage {
			break
		}
		if productPage.EndCursor == "" {
			return nil, errors.New("product page reported a next page without a cursor")
		}
		cursor = productPage.EndCursor
	}

	logger.Info().Int("products", len(all)).Msg("catalog snapshot complete")
	return all, nil
}
