package shopify

import "github.com/Earnest-Minds/option-remove-app/pkg/catalog"

// Wire shapes for the Admin GraphQL API. The domain types in pkg/catalog
// stay free of GraphQL edge/node nesting; conversions live here.

// graphQLRequest is the POST body for every Admin API call.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphQLError is a top-level GraphQL error. These indicate a rejected or
// throttled request rather than a per-product business failure.
type graphQLError struct {
	Message    string `json:"message"`
	Extensions struct {
		Code string `json:"code"`
	} `json:"extensions"`
}

type userErrorNode struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

type optionValueNode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type optionNode struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Position     int               `json:"position"`
	OptionValues []optionValueNode `json:"optionValues"`
}

type productNode struct {
	ID      string       `json:"id"`
	Title   string       `json:"title"`
	Options []optionNode `json:"options"`
}

type productEdge struct {
	Cursor string      `json:"cursor"`
	Node   productNode `json:"node"`
}

type productsData struct {
	Products struct {
		Edges    []productEdge `json:"edges"`
		PageInfo struct {
			HasNextPage bool `json:"hasNextPage"`
		} `json:"pageInfo"`
	} `json:"products"`
}

type optionsCreateData struct {
	ProductOptionsCreate struct {
		UserErrors []userErrorNode `json:"userErrors"`
	} `json:"productOptionsCreate"`
}

type optionUpdateData struct {
	ProductOptionUpdate struct {
		UserErrors []userErrorNode `json:"userErrors"`
	} `json:"productOptionUpdate"`
}

type optionsDeleteData struct {
	ProductOptionsDelete struct {
		DeletedOptionsIds []string        `json:"deletedOptionsIds"`
		UserErrors        []userErrorNode `json:"userErrors"`
	} `json:"productOptionsDelete"`
}

func (n productNode) toDomain() catalog.Product {
	options := make([]catalog.Option, 0, len(n.Options))
	for _, opt := range n.Options {
		options = append(options, opt.toDomain())
	}
	return catalog.Product{
		ID:      n.ID,
		Title:   n.Title,
		Options: options,
	}
}

func (n optionNode) toDomain() catalog.Option {
	values := make([]catalog.OptionValue, 0, len(n.OptionValues))
	for _, value := range n.OptionValues {
		values = append(values, catalog.OptionValue{ID: value.ID, Name: value.Name})
	}
	return catalog.Option{
		ID:       n.ID,
		Name:     n.Name,
		Position: n.Position,
		Values:   values,
	}
}

// toPage flattens the edge list into a domain page. The page cursor is the
// last edge's cursor, which the next request passes back verbatim.
func (d productsData) toPage() *catalog.ProductPage {
	edges := d.Products.Edges
	page := &catalog.ProductPage{
		Products:    make([]catalog.Product, 0, len(edges)),
		HasNextPage: d.Products.PageInfo.HasNextPage,
	}
	for _, edge := range edges {
		page.Products = append(page.Products, edge.Node.toDomain())
	}
	if len(edges) > 0 {
		page.EndCursor = edges[len(edges)-1].Cursor
	}
	return page
}

func toUserErrors(nodes []userErrorNode) []catalog.UserError {
	if len(nodes) == 0 {
		return nil
	}
	userErrs := make([]catalog.UserError, 0, len(nodes))
	for _, n := range nodes {
		userErrs = append(userErrs, catalog.UserError{Field: n.Field, Message: n.Message})
	}
	return userErrs
}
