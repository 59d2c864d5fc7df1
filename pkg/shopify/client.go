// Package shopify is the Admin GraphQL API client behind the catalog
// workflows. It implements catalog.API: one HTTPS POST per call against
// https://<shop>/admin/api/<version>/graphql.json, authenticated with the
// shop's access token.
//
// The client separates two failure planes. Transport, authentication, and
// top-level GraphQL errors come back as Go errors and abort the caller's
// workflow. Mutation userErrors come back as catalog.UserError values with
// a nil error, so workflows can aggregate them and keep going.
package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Earnest-Minds/option-remove-app/pkg/catalog"
	"github.com/Earnest-Minds/option-remove-app/pkg/constants"
	"github.com/Earnest-Minds/option-remove-app/pkg/errors"

	"github.com/Earnest-Minds/option-remove-app/internal/transport"
)

// Client calls one shop's Admin GraphQL API. Construct one per invocation
// with New; the zero value is not usable.
type Client struct {
	transport *transport.Client
	shop      string
	version   string
	endpoint  string
}

// Compile-time interface check.
var _ catalog.API = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithVersion overrides the Admin API version (e.g. "2024-07").
func WithVersion(version string) Option {
	return func(c *Client) {
		if version != "" {
			c.version = version
		}
	}
}

// WithEndpoint overrides the computed GraphQL endpoint URL. Intended for
// tests pointing the client at a local server.
func WithEndpoint(url string) Option {
	return func(c *Client) {
		c.endpoint = url
	}
}

// WithTransport overrides the underlying transport client.
func WithTransport(t *transport.Client) Option {
	return func(c *Client) {
		if t != nil {
			c.transport = t
		}
	}
}

// New creates an Admin API client for the given shop domain
// (e.g. "example.myshopify.com") and access token.
func New(shop, token string, opts ...Option) *Client {
	c := &Client{
		transport: transport.New(&transport.TokenAuth{}, token),
		shop:      shop,
		version:   constants.DefaultAPIVersion,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.endpoint == "" {
		c.endpoint = fmt.Sprintf(constants.GraphQLEndpointFormat, c.shop, c.version)
	}
	return c
}

// Shop returns the shop domain this client talks to.
func (c *Client) Shop() string {
	return c.shop
}

// Endpoint returns the GraphQL endpoint URL this client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// ProductsPage fetches up to first products after the given cursor. Pass an
// empty cursor for the first page.
func (c *Client) ProductsPage(ctx context.Context, first int, after string) (*catalog.ProductPage, error) {
	variables := map[string]any{"first": first}
	if after != "" {
		variables["after"] = after
	}

	var data productsData
	if err := c.do(ctx, productsQuery, variables, &data); err != nil {
		return nil, err
	}
	return data.toPage(), nil
}

// CreateOption adds an option with the given values to a product. Existing
// variants are left as they are.
func (c *Client) CreateOption(ctx context.Context, productID, name string, values []string) ([]catalog.UserError, error) {
	valueInputs := make([]map[string]any, 0, len(values))
	for _, value := range values {
		valueInputs = append(valueInputs, map[string]any{"name": value})
	}
	variables := map[string]any{
		"productId": productID,
		"options": []map[string]any{
			{"name": name, "values": valueInputs},
		},
		"variantStrategy": "LEAVE_AS_IS",
	}

	var data optionsCreateData
	if err := c.do(ctx, optionsCreateMutation, variables, &data); err != nil {
		return nil, err
	}
	return toUserErrors(data.ProductOptionsCreate.UserErrors), nil
}

// UpdateOption deletes the given value IDs from an existing option. The
// MANAGE strategy makes the platform delete variants that depend on the
// removed values.
func (c *Client) UpdateOption(ctx context.Context, productID string, option catalog.Option, deleteValueIDs []string) ([]catalog.UserError, error) {
	variables := map[string]any{
		"productId": productID,
		"option": map[string]any{
			"id":       option.ID,
			"name":     option.Name,
			"position": option.Position,
		},
		"optionValuesToDelete": deleteValueIDs,
		"variantStrategy":      "MANAGE",
	}

	var data optionUpdateData
	if err := c.do(ctx, optionUpdateMutation, variables, &data); err != nil {
		return nil, err
	}
	return toUserErrors(data.ProductOptionUpdate.UserErrors), nil
}

// DeleteOptions removes whole options from a product.
func (c *Client) DeleteOptions(ctx context.Context, productID string, optionIDs []string) ([]string, []catalog.UserError, error) {
	variables := map[string]any{
		"productId": productID,
		"options":   optionIDs,
	}

	var data optionsDeleteData
	if err := c.do(ctx, optionsDeleteMutation, variables, &data); err != nil {
		return nil, nil, err
	}
	deleted := data.ProductOptionsDelete
	return deleted.DeletedOptionsIds, toUserErrors(deleted.UserErrors), nil
}

// do executes one GraphQL request and unmarshals the data payload into
// data. Top-level GraphQL errors become Go errors.
func (c *Client) do(ctx context.Context, query string, variables map[string]any, data any) error {
	resp, err := c.transport.PostJSON(ctx, c.endpoint, graphQLRequest{
		Query:     query,
		Variables: variables,
	})
	if err != nil {
		return err
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphQLError  `json:"errors"`
	}
	if err := transport.DecodeResponse(c.shop, resp, &envelope); err != nil {
		return err
	}
	if len(envelope.Errors) > 0 {
		return c.requestError(envelope.Errors)
	}
	if data == nil || len(envelope.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, data); err != nil {
		return &errors.ParseError{
			Format:  "json",
			File:    c.shop,
			Message: fmt.Sprintf("decoding graphql data: %v", err),
			Err:     err,
		}
	}
	return nil
}

// requestError converts top-level GraphQL errors into an APIError. Shopify
// reports throttling and access problems here with HTTP 200, so the error
// codes are mapped onto the status codes the sentinel checks expect.
func (c *Client) requestError(graphQLErrs []graphQLError) error {
	statusCode := 0
	msgs := make([]string, 0, len(graphQLErrs))
	for _, gqlErr := range graphQLErrs {
		msgs = append(msgs, gqlErr.Message)
		switch gqlErr.Extensions.Code {
		case "THROTTLED":
			statusCode = http.StatusTooManyRequests
		case "ACCESS_DENIED":
			statusCode = http.StatusForbidden
		}
	}
	return &errors.APIError{
		Shop:       c.shop,
		StatusCode: statusCode,
		Message:    strings.Join(msgs, "; "),
		Endpoint:   c.endpoint,
	}
}
