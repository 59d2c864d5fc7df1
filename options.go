package optionremoveapp

import (
	"github.com/Earnest-Minds/option-remove-app/pkg/catalog"
)

// Option is a function that configures a Client instance.
type Option func(*client) error

// WithStore configures the shop domain, e.g. "example.myshopify.com".
func WithStore(store string) Option {
	return func(c *client) error {
		c.store = store
		return nil
	}
}

// WithAccessToken configures the Admin API access token.
func WithAccessToken(token string) Option {
	return func(c *client) error {
		c.accessToken = token
		return nil
	}
}

// WithAPIVersion configures the Admin API version, e.g. "2024-07".
func WithAPIVersion(version string) Option {
	return func(c *client) error {
		c.apiVersion = version
		return nil
	}
}

// WithAPI configures a custom Admin API implementation. When set, the store
// and access token are not required; the workflows run against the given
// handle instead of a live shop.
func WithAPI(api catalog.API) Option {
	return func(c *client) error {
		c.api = api
		return nil
	}
}

// options applies the given options to the client.
func (c *client) options(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}
