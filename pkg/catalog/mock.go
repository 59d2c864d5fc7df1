package catalog

import "context"

// MockAPI provides a mock implementation of API for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method reports an empty successful result.
type MockAPI struct {
	ProductsPageFunc  func(ctx context.Context, first int, after string) (*ProductPage, error)
	CreateOptionFunc  func(ctx context.Context, productID, name string, values []string) ([]UserError, error)
	UpdateOptionFunc  func(ctx context.Context, productID string, option Option, deleteValueIDs []string) ([]UserError, error)
	DeleteOptionsFunc func(ctx context.Context, productID string, optionIDs []string) ([]string, []UserError, error)
}

// Compile-time interface check.
var _ API = (*MockAPI)(nil)

// ProductsPage returns a page using the mock function or an empty last page.
func (m *MockAPI) ProductsPage(ctx context.Context, first int, after string) (*ProductPage, error) {
	if m.ProductsPageFunc != nil {
		return m.ProductsPageFunc(ctx, first, after)
	}
	return &ProductPage{}, nil
}

// CreateOption creates an option using the mock function or reports success.
func (m *MockAPI) CreateOption(ctx context.Context, productID, name string, values []string) ([]UserError, error) {
	if m.CreateOptionFunc != nil {
		return m.CreateOptionFunc(ctx, productID, name, values)
	}
	return nil, nil
}

// UpdateOption updates an option using the mock function or reports success.
func (m *MockAPI) UpdateOption(ctx context.Context, productID string, option Option, deleteValueIDs []string) ([]UserError, error) {
	if m.UpdateOptionFunc != nil {
		return m.UpdateOptionFunc(ctx, productID, option, deleteValueIDs)
	}
	return nil, nil
}

// DeleteOptions deletes options using the mock function or reports success.
func (m *MockAPI) DeleteOptions(ctx context.Context, productID string, optionIDs []string) ([]string, []UserError, error) {
	if m.DeleteOptionsFunc != nil {
		return m.DeleteOptionsFunc(ctx, productID, optionIDs)
	}
	return optionIDs, nil, nil
}
