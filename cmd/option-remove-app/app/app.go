// Package app provides the application context and dependency management
// for the option-remove-app CLI. It centralizes configuration, logging,
// and the workflow client, following the dependency injection pattern.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	optionremoveapp "github.com/Earnest-Minds/option-remove-app"
	"github.com/Earnest-Minds/option-remove-app/pkg/errors"

	"github.com/Earnest-Minds/option-remove-app/internal/cmd/output"
	"github.com/Earnest-Minds/option-remove-app/pkg/constants"
)

// App represents the CLI application with all its dependencies. It provides
// a centralized place for configuration, logging, and the workflow client.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Workflow client (lazy-initialized, singleton)
	mu     sync.RWMutex
	client optionremoveapp.Client
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration loaded from the environment
// and config file, customizable with functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Shop returns the configured shop domain.
func (a *App) Shop() string {
	return a.config.Store
}

// OutputFormat returns the configured output format, auto-detected from the
// terminal when no explicit format is set.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// Client returns the workflow client, creating it lazily if needed. This is
// thread-safe and ensures only one client is created. Missing credentials
// surface here, before any remote call is attempted.
func (a *App) Client() (optionremoveapp.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		client := a.client
		a.mu.RUnlock()
		return client, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	if a.config.Store == "" {
		return nil, &errors.ConfigError{
			Component: "shopify",
			Message:   constants.ErrMsgShopMissing + " (set SHOPIFY_STORE or --store)",
		}
	}
	if a.config.AccessToken == "" {
		return nil, &errors.AuthenticationError{
			Shop:    a.config.Store,
			Method:  "access_token",
			Message: constants.ErrMsgAccessTokenMissing + " (set SHOPIFY_ACCESS_TOKEN)",
			Err:     errors.ErrAccessTokenRequired,
		}
	}

	client, err := optionremoveapp.New(
		optionremoveapp.WithStore(a.config.Store),
		optionremoveapp.WithAccessToken(a.config.AccessToken),
		optionremoveapp.WithAPIVersion(a.config.APIVersion),
	)
	if err != nil {
		return nil, err
	}

	a.client = client
	return a.client, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom workflow client (useful for testing).
func WithClient(client optionremoveapp.Client) Option {
	return func(a *App) error {
		a.client = client
		return nil
	}
}
