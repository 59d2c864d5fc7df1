// Package appcontext provides the shared application context interface
// used by all commands. This eliminates interface duplication across
// command packages and provides a single source of truth for app
// dependencies.
package appcontext

import (
	"github.com/rs/zerolog"

	optionremoveapp "github.com/Earnest-Minds/option-remove-app"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/option-remove-app/app implements this interface,
// providing dependency injection for commands while keeping them testable.
//
// Commands should accept this interface (or a narrower local one) rather
// than the concrete App type, allowing tests to substitute a Mock.
type Interface interface {
	// Client returns the workflow client for the configured shop, creating
	// it lazily if needed. It fails when the shop domain or access token is
	// missing, so commands get a validation error before any remote call.
	Client() (optionremoveapp.Client, error)

	// Shop returns the configured shop domain.
	Shop() string

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json,
	// yaml, wide). Commands that support different output formats should
	// use this.
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
