package appcontext

import (
	"github.com/rs/zerolog"

	optionremoveapp "github.com/Earnest-Minds/option-remove-app"
	"github.com/Earnest-Minds/option-remove-app/pkg/catalog"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	ClientFunc       func() (optionremoveapp.Client, error)
	ShopFunc         func() string
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Compile-time interface check.
var _ Interface = (*Mock)(nil)

// MockClient builds a workflow client over the given Admin API mock.
// Test helper for ClientFunc fields.
func MockClient(api catalog.API) optionremoveapp.Client {
	client, err := optionremoveapp.New(optionremoveapp.WithAPI(api))
	if err != nil {
		// WithAPI skips credential checks; New cannot fail here.
		panic(err)
	}
	return client
}

// Client returns a workflow client using the mock function or one backed by
// an empty MockAPI.
func (m *Mock) Client() (optionremoveapp.Client, error) {
	if m.ClientFunc != nil {
		return m.ClientFunc()
	}
	return MockClient(&catalog.MockAPI{}), nil
}

// Shop returns a shop domain using the mock function or a test default.
func (m *Mock) Shop() string {
	if m.ShopFunc != nil {
		return m.ShopFunc()
	}
	return "example.myshopify.com"
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns a format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns a version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns a commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns a build date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns a builder using the mock function or "unknown".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "unknown"
}
