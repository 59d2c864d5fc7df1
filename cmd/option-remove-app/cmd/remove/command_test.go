package remove_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	optionremoveapp "github.com/Earnest-Minds/option-remove-app"
	"github.com/Earnest-Minds/option-remove-app/cmd/option-remove-app/cmd/remove"
	"github.com/Earnest-Minds/option-remove-app/internal/appcontext"
	"github.com/Earnest-Minds/option-remove-app/pkg/catalog"
)

// fixture returns one product with a three-value Color option and one
// without any option.
func fixture() []catalog.Product {
	return []catalog.Product{
		{
			ID:    "gid://shopify/Product/1",
			Title: "Trail Shoe",
			Options: []catalog.Option{
				{ID: "opt-1", Name: "Color", Position: 1, Values: []catalog.OptionValue{
					{ID: "v1", Name: "Red"},
					{ID: "v2", Name: "Green"},
					{ID: "v3", Name: "Yellow"},
				}},
			},
		},
		{
			ID:    "gid://shopify/Product/2",
			Title: "Water Bottle",
		},
	}
}

func mockApp(api *catalog.MockAPI) *appcontext.Mock {
	return &appcontext.Mock{
		ClientFunc: func() (optionremoveapp.Client, error) {
			return appcontext.MockClient(api), nil
		},
	}
}

func TestRemoveCommand_TrimsThenDeletes(t *testing.T) {
	var trimmed []string
	var deleted []string

	api := &catalog.MockAPI{
		ProductsPageFunc: func(_ context.Context, _ int, _ string) (*catalog.ProductPage, error) {
			return &catalog.ProductPage{Products: fixture()}, nil
		},
		UpdateOptionFunc: func(_ context.Context, _ string, _ catalog.Option, deleteValueIDs []string) ([]catalog.UserError, error) {
			trimmed = deleteValueIDs
			return nil, nil
		},
		DeleteOptionsFunc: func(_ context.Context, _ string, optionIDs []string) ([]string, []catalog.UserError, error) {
			deleted = optionIDs
			return optionIDs, nil, nil
		},
	}

	cmd := remove.NewCommand(mockApp(api))

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"color"})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, []string{"v2", "v3"}, trimmed, "every value but the first is deleted")
	assert.Equal(t, []string{"opt-1"}, deleted)
	assert.Contains(t, buf.String(), `Removed option matching "color" from 1 products`)
}

func TestRemoveCommand_NoMatch(t *testing.T) {
	deleteCalls := 0

	api := &catalog.MockAPI{
		ProductsPageFunc: func(_ context.Context, _ int, _ string) (*catalog.ProductPage, error) {
			return &catalog.ProductPage{Products: fixture()}, nil
		},
		DeleteOptionsFunc: func(_ context.Context, _ string, optionIDs []string) ([]string, []catalog.UserError, error) {
			deleteCalls++
			return optionIDs, nil, nil
		},
	}

	cmd := remove.NewCommand(mockApp(api))

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"Material"})

	require.NoError(t, cmd.Execute())

	assert.Zero(t, deleteCalls)
	assert.Contains(t, buf.String(), `No product has an option matching "Material"`)
}

func TestRemoveCommand_DryRunDoesNotMutate(t *testing.T) {
	updateCalls := 0
	deleteCalls := 0

	api := &catalog.MockAPI{
		ProductsPageFunc: func(_ context.Context, _ int, _ string) (*catalog.ProductPage, error) {
			return &catalog.ProductPage{Products: fixture()}, nil
		},
		UpdateOptionFunc: func(_ context.Context, _ string, _ catalog.Option, _ []string) ([]catalog.UserError, error) {
			updateCalls++
			return nil, nil
		},
		DeleteOptionsFunc: func(_ context.Context, _ string, optionIDs []string) ([]string, []catalog.UserError, error) {
			deleteCalls++
			return optionIDs, nil, nil
		},
	}

	cmd := remove.NewCommand(mockApp(api))

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"Color", "--dry-run"})

	require.NoError(t, cmd.Execute())

	assert.Zero(t, updateCalls, "dry run must not trim values")
	assert.Zero(t, deleteCalls, "dry run must not delete options")
	assert.Contains(t, buf.String(), `Trail Shoe: option "Color" with 3 values`)
	assert.Contains(t, buf.String(), `1 of 2 products match "Color"`)
}

func TestRemoveCommand_TrimFailureSkipsDelete(t *testing.T) {
	deleteCalls := 0

	api := &catalog.MockAPI{
		ProductsPageFunc: func(_ context.Context, _ int, _ string) (*catalog.ProductPage, error) {
			return &catalog.ProductPage{Products: fixture()}, nil
		},
		UpdateOptionFunc: func(_ context.Context, _ string, _ catalog.Option, _ []string) ([]catalog.UserError, error) {
			return []catalog.UserError{{Message: "values are referenced by open orders"}}, nil
		},
		DeleteOptionsFunc: func(_ context.Context, _ string, optionIDs []string) ([]string, []catalog.UserError, error) {
			deleteCalls++
			return optionIDs, nil, nil
		},
	}

	cmd := remove.NewCommand(mockApp(api))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"Color"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Zero(t, deleteCalls, "failed trim leaves the option in place")
	assert.Contains(t, err.Error(), "values are referenced by open orders")
}
