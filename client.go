package optionremoveapp

import (
	"context"

	"github.com/Earnest-Minds/option-remove-app/pkg/catalog"
)

// client is the internal implementation of the Client interface.
type client struct {
	store       string
	accessToken string
	apiVersion  string

	api catalog.API
}

// Products reads the full catalog snapshot.
func (c *client) Products(ctx context.Context) ([]catalog.Product, error) {
	return catalog.FetchAllProducts(ctx, c.api)
}

// AddOption re-reads the catalog and adds the option to every product
// missing it. Input validation runs before the catalog read.
func (c *client) AddOption(ctx context.Context, name string, values []string) (*catalog.AddResult, error) {
	if _, err := catalog.ValidateAddInput(name, values); err != nil {
		return nil, err
	}

	products, err := catalog.FetchAllProducts(ctx, c.api)
	if err != nil {
		return nil, err
	}

	return catalog.AddOptionToMissing(ctx, c.api, products, name, values)
}

// RemoveOption re-reads the catalog and removes the first matching option
// from every product carrying one. Input validation runs before the
// catalog read.
func (c *client) RemoveOption(ctx context.Context, term string) (*catalog.RemoveResult, error) {
	if _, err := catalog.ValidateRemoveTerm(term); err != nil {
		return nil, err
	}

	products, err := catalog.FetchAllProducts(ctx, c.api)
	if err != nil {
		return nil, err
	}

	return catalog.RemoveOption(ctx, c.api, products, term)
}

// API returns the underlying Admin API handle.
func (c *client) API() catalog.API {
	return c.api
}

// Shop returns the configured shop domain.
func (c *client) Shop() string {
	return c.store
}
