package optionremoveapp

import (
	"context"

	"github.com/Earnest-Minds/option-remove-app/pkg/catalog"
	"github.com/Earnest-Minds/option-remove-app/pkg/constants"
	"github.com/Earnest-Minds/option-remove-app/pkg/errors"
	"github.com/Earnest-Minds/option-remove-app/pkg/shopify"
)

// Client runs bulk option workflows against a shop's product catalog.
//
// A Client holds no catalog state. Every workflow re-reads the full catalog
// through cursor-based pagination before acting, so each call operates on a
// fresh snapshot rather than a cached copy.
type Client interface {
	// Products reads the full catalog snapshot.
	Products(ctx context.Context) ([]catalog.Product, error)

	// AddOption reads a fresh snapshot and creates the named option with the
	// given values on every product that does not already carry it
	// (case-insensitive exact name match). Platform rejections are collected
	// in the result; a transport or auth failure aborts with an error.
	AddOption(ctx context.Context, name string, values []string) (*catalog.AddResult, error)

	// RemoveOption reads a fresh snapshot and removes, from every product,
	// the first option whose name contains term (case-insensitive). Options
	// holding several values are trimmed to one before deletion. Platform
	// rejections are collected in the result; a transport or auth failure
	// aborts with an error.
	RemoveOption(ctx context.Context, term string) (*catalog.RemoveResult, error)

	// API returns the underlying Admin API handle for callers that need
	// page-level or per-product access.
	API() catalog.API

	// Shop returns the shop domain this client talks to.
	Shop() string
}

// New creates a new Client for the configured shop.
//
// Credentials come in through options: WithStore and WithAccessToken for a
// live shop, or WithAPI to run the workflows against a custom Admin API
// implementation. Missing credentials fail here, before any remote call.
func New(opts ...Option) (Client, error) {
	c := &client{}

	if err := c.options(opts...); err != nil {
		return nil, err
	}

	if c.api == nil {
		if c.store == "" {
			return nil, &errors.ConfigError{
				Component: "shopify",
				Message:   constants.ErrMsgShopMissing,
			}
		}
		if c.accessToken == "" {
			return nil, &errors.AuthenticationError{
				Shop:    c.store,
				Method:  "access_token",
				Message: constants.ErrMsgAccessTokenMissing,
				Err:     errors.ErrAccessTokenRequired,
			}
		}

		shopifyOpts := []shopify.Option{}
		if c.apiVersion != "" {
			shopifyOpts = append(shopifyOpts, shopify.WithVersion(c.apiVersion))
		}
		c.api = shopify.New(c.store, c.accessToken, shopifyOpts...)
	}

	return c, nil
}
