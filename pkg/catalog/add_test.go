package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Earnest-Minds/option-remove-app/pkg/catalog"
	pkgerrors "github.com/Earnest-Minds/option-remove-app/pkg/errors"
)

func colorCatalog() []catalog.Product {
	return []catalog.Product{
		{
			ID:      "p1",
			Title:   "Snowboard",
			Options: []catalog.Option{{ID: "opt-1", Name: "Color", Position: 1}},
		},
		{
			ID:      "p2",
			Title:   "Wax",
			Options: []catalog.Option{{ID: "opt-2", Name: "Scent", Position: 1}},
		},
		{
			ID:    "p3",
			Title: "Stickers",
		},
	}
}

func TestAddOptionToMissing(t *testing.T) {
	var createdProducts []string
	var gotName string
	var gotValues []string
	api := &catalog.MockAPI{
		CreateOptionFunc: func(_ context.Context, productID, name string, values []string) ([]catalog.UserError, error) {
			createdProducts = append(createdProducts, productID)
			gotName = name
			gotValues = values
			return nil, nil
		},
	}

	result, err := catalog.AddOptionToMissing(context.Background(), api, colorCatalog(), "Color", []string{"Red", "Green", "Yellow"})
	require.NoError(t, err)

	assert.Equal(t, []string{"p2", "p3"}, createdProducts, "only products missing the option get a create call")
	assert.Equal(t, "Color", gotName)
	assert.Equal(t, []string{"Red", "Green", "Yellow"}, gotValues)
	assert.Equal(t, 2, result.Added)
	assert.Equal(t, 1, result.Skipped)
	assert.True(t, result.Success())
	assert.NoError(t, result.Err())
}

func TestAddOptionToMissingCaseInsensitive(t *testing.T) {
	products := []catalog.Product{
		{ID: "p1", Options: []catalog.Option{{Name: "color"}}},
		{ID: "p2", Options: []catalog.Option{{Name: "COLOR"}}},
	}

	var calls int
	api := &catalog.MockAPI{
		CreateOptionFunc: func(_ context.Context, _, _ string, _ []string) ([]catalog.UserError, error) {
			calls++
			return nil, nil
		},
	}

	result, err := catalog.AddOptionToMissing(context.Background(), api, products, "Color", []string{"Red"})
	require.NoError(t, err)

	assert.Zero(t, calls, "case variants already count as having the option")
	assert.Zero(t, result.Added)
	assert.Equal(t, 2, result.Skipped)
	assert.True(t, result.Success())
}

func TestAddOptionToMissingTrimsName(t *testing.T) {
	var gotName string
	api := &catalog.MockAPI{
		CreateOptionFunc: func(_ context.Context, _, name string, _ []string) ([]catalog.UserError, error) {
			gotName = name
			return nil, nil
		},
	}

	products := []catalog.Product{{ID: "p1"}}
	_, err := catalog.AddOptionToMissing(context.Background(), api, products, "  Color  ", []string{"Red"})
	require.NoError(t, err)
	assert.Equal(t, "Color", gotName)
}

func TestValidateAddInput(t *testing.T) {
	name, err := catalog.ValidateAddInput("  Pack weight ", []string{"Light"})
	require.NoError(t, err)
	assert.Equal(t, "Pack weight", name)

	_, err = catalog.ValidateAddInput(" ", []string{"Light"})
	require.Error(t, err)

	_, err = catalog.ValidateAddInput("Color", nil)
	require.Error(t, err)
}

func TestAddOptionToMissingValidation(t *testing.T) {
	tests := []struct {
		name       string
		optionName string
		values     []string
	}{
		{"empty name", "", []string{"Red"}},
		{"whitespace name", "   ", []string{"Red"}},
		{"nil values", "Color", nil},
		{"empty values", "Color", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			api := &catalog.MockAPI{
				CreateOptionFunc: func(_ context.Context, _, _ string, _ []string) ([]catalog.UserError, error) {
					calls++
					return nil, nil
				},
			}

			result, err := catalog.AddOptionToMissing(context.Background(), api, colorCatalog(), tt.optionName, tt.values)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.Zero(t, calls, "validation failures must precede any remote call")

			var valErr *pkgerrors.ValidationError
			assert.True(t, errors.As(err, &valErr))
		})
	}
}

func TestAddOptionToMissingAggregatesErrors(t *testing.T) {
	products := []catalog.Product{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}}

	var calls int
	api := &catalog.MockAPI{
		CreateOptionFunc: func(_ context.Context, productID, _ string, _ []string) ([]catalog.UserError, error) {
			calls++
			if productID == "p2" {
				return []catalog.UserError{{Field: []string{"options", "name"}, Message: "Option already exists"}}, nil
			}
			return nil, nil
		},
	}

	result, err := catalog.AddOptionToMissing(context.Background(), api, products, "Color", []string{"Red"})
	require.NoError(t, err)

	assert.Equal(t, 3, calls, "errors must not short-circuit remaining products")
	assert.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Added)
	assert.False(t, result.Success())
	require.Error(t, result.Err())
	assert.Equal(t, "Option already exists", result.Err().Error())
}

func TestAddOptionToMissingJoinsErrorMessages(t *testing.T) {
	products := []catalog.Product{{ID: "p1"}, {ID: "p2"}}
	api := &catalog.MockAPI{
		CreateOptionFunc: func(_ context.Context, productID, _ string, _ []string) ([]catalog.UserError, error) {
			return []catalog.UserError{{Message: "rejected " + productID}}, nil
		},
	}

	result, err := catalog.AddOptionToMissing(context.Background(), api, products, "Color", []string{"Red"})
	require.NoError(t, err)

	assert.Len(t, result.Errors, 2)
	assert.Equal(t, "rejected p1; rejected p2", result.Err().Error())
}

func TestAddOptionToMissingTransportAbort(t *testing.T) {
	products := []catalog.Product{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}}

	var calls int
	api := &catalog.MockAPI{
		CreateOptionFunc: func(_ context.Context, _, _ string, _ []string) ([]catalog.UserError, error) {
			calls++
			return nil, &pkgerrors.APIError{
				Shop:       "example.myshopify.com",
				StatusCode: 500,
				Message:    "Internal Server Error",
			}
		},
	}

	result, err := catalog.AddOptionToMissing(context.Background(), api, products, "Color", []string{"Red"})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 1, calls, "transport failures abort the whole workflow")
	assert.True(t, pkgerrors.IsShopUnavailable(err))
}

func TestAddOptionToMissingIdempotent(t *testing.T) {
	// After a clean run every product carries the option, so a second run
	// finds nothing to add.
	products := colorCatalog()
	api := &catalog.MockAPI{}

	first, err := catalog.AddOptionToMissing(context.Background(), api, products, "Color", []string{"Red"})
	require.NoError(t, err)
	assert.Equal(t, 2, first.Added)

	// Simulate the re-read snapshot the second invocation would fetch.
	for i, p := range products {
		if !p.HasOption("Color") {
			products[i].Options = append(products[i].Options, catalog.Option{Name: "Color"})
		}
	}

	var calls int
	api.CreateOptionFunc = func(_ context.Context, _, _ string, _ []string) ([]catalog.UserError, error) {
		calls++
		return nil, nil
	}

	second, err := catalog.AddOptionToMissing(context.Background(), api, products, "Color", []string{"Red"})
	require.NoError(t, err)
	assert.Zero(t, calls)
	assert.Zero(t, second.Added)
	assert.Equal(t, len(products), second.Skipped)
	assert.True(t, second.Success())
}
