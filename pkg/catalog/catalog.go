// Package catalog implements the bulk option workflows that run against a
// storefront's product catalog: reading every product through cursor-based
// pagination, adding a named option to every product that lacks it, and
// removing a matched option (values first, then the option itself).
//
// All remote access goes through the API interface, so workflows can be
// driven by the Admin API client or by a mock in tests. Workflows are
// strictly sequential: each page fetch depends on the previous page's
// cursor, and per-product mutations are issued one at a time.
//
// Example usage:
//
//	client := shopify.New("example.myshopify.com", token)
//	products, err := catalog.FetchAllProducts(ctx, client)
//	if err != nil {
//	    return err
//	}
//
//	result, err := catalog.AddOptionToMissing(ctx, client, products, "Color", []string{"Red", "Green", "Yellow"})
//	if err != nil {
//	    return err // transport or validation failure
//	}
//	if !result.Success() {
//	    return result.Err() // aggregated per-product errors
//	}
package catalog

import "context"

// Product is a read snapshot of one catalog product. Products are owned by
// the remote platform; a snapshot is re-read at the start of every mutating
// workflow rather than reused across invocations.
type Product struct {
	ID      string   `json:"id" yaml:"id"`           // Opaque remote identifier
	Title   string   `json:"title" yaml:"title"`     // Display title
	Options []Option `json:"options" yaml:"options"` // Ordered option list
}

// Option is a named product attribute (e.g. "Color") with an ordered list
// of values. Option names are compared case-insensitively.
type Option struct {
	ID       string        `json:"id" yaml:"id"`             // Opaque remote identifier
	Name     string        `json:"name" yaml:"name"`         // Comparison key, case-insensitive
	Position int           `json:"position" yaml:"position"` // Order among the product's options
	Values   []OptionValue `json:"values" yaml:"values"`     // Ordered values, never left empty by this system
}

// OptionValue is one permissible value of an option (e.g. "Red").
type OptionValue struct {
	ID   string `json:"id" yaml:"id"`     // Opaque remote identifier
	Name string `json:"name" yaml:"name"` // Display name
}

// ProductPage is one page of a paginated product listing.
type ProductPage struct {
	Products    []Product `json:"products" yaml:"products"`           // Products in remote return order
	HasNextPage bool      `json:"has_next_page" yaml:"has_next_page"` // Whether a further page exists
	EndCursor   string    `json:"end_cursor" yaml:"end_cursor"`       // Cursor of the last returned product, empty when the page has none
}

// UserError is a business-level error descriptor returned by the remote
// platform for one mutation. User errors do not abort a workflow; they are
// aggregated across products and surfaced once the full loop completes.
type UserError struct {
	Field   []string `json:"field" yaml:"field"`     // Path to the input field that caused the error
	Message string   `json:"message" yaml:"message"` // Human-readable description
}

// String renders the error as "field.path: message" for logs.
func (e UserError) String() string {
	if len(e.Field) == 0 {
		return e.Message
	}
	path := e.Field[0]
	for _, f := range e.Field[1:] {
		path += "." + f
	}
	return path + ": " + e.Message
}

// API is the remote surface the workflows consume. Implementations return a
// Go error only for transport, authentication, and decoding failures, which
// abort the enclosing workflow. Business-level failures are reported as
// UserError lists and leave the error return nil.
type API interface {
	// ProductsPage fetches up to first products after the given cursor.
	// An empty cursor requests the first page.
	ProductsPage(ctx context.Context, first int, after string) (*ProductPage, error)

	// CreateOption adds a new option with the given values to a product,
	// leaving existing variants untouched.
	CreateOption(ctx context.Context, productID, name string, values []string) ([]UserError, error)

	// UpdateOption deletes the given value IDs from an existing option.
	// Variants depending on a deleted value are deleted as a side effect.
	UpdateOption(ctx context.Context, productID string, option Option, deleteValueIDs []string) ([]UserError, error)

	// DeleteOptions removes whole options from a product and reports the
	// IDs the remote platform actually deleted.
	DeleteOptions(ctx context.Context, productID string, optionIDs []string) ([]string, []UserError, error)
}
