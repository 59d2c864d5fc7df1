package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/Earnest-Minds/option-remove-app/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "option_name",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field option_name: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "invalid configuration",
		}
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("values", "", "must contain at least one value")
		assert.Contains(t, err.Error(), "values")
		assert.Contains(t, err.Error(), "at least one value")
	})
}

func TestAPIError(t *testing.T) {
	t.Run("with status code", func(t *testing.T) {
		err := &pkgerrors.APIError{
			Shop:       "demo.myshopify.com",
			StatusCode: 429,
			Message:    "rate limit exceeded",
			Endpoint:   "https://demo.myshopify.com/admin/api/2024-07/graphql.json",
		}
		assert.Contains(t, err.Error(), "demo.myshopify.com")
		assert.Contains(t, err.Error(), "429")
		assert.Contains(t, err.Error(), "rate limit exceeded")
	})

	t.Run("with wrapped error", func(t *testing.T) {
		baseErr := errors.New("connection timeout")
		err := &pkgerrors.APIError{
			Shop:    "demo.myshopify.com",
			Message: "request failed",
			Err:     baseErr,
		}
		assert.Contains(t, err.Error(), "request failed")
		assert.Equal(t, baseErr, err.Unwrap())
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewAPIError("demo.myshopify.com", 500, "internal server error")
		assert.Contains(t, err.Error(), "demo.myshopify.com")
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("status code sentinel mapping", func(t *testing.T) {
		rateLimited := pkgerrors.NewAPIError("demo.myshopify.com", 429, "throttled")
		assert.True(t, pkgerrors.IsRateLimited(rateLimited))

		unauthorized := pkgerrors.NewAPIError("demo.myshopify.com", 401, "bad token")
		assert.True(t, errors.Is(unauthorized, pkgerrors.ErrAccessTokenInvalid))
		assert.True(t, pkgerrors.IsAccessTokenError(unauthorized))

		unavailable := pkgerrors.NewAPIError("demo.myshopify.com", 503, "maintenance")
		assert.True(t, pkgerrors.IsShopUnavailable(unavailable))

		teapot := pkgerrors.NewAPIError("demo.myshopify.com", 418, "nope")
		assert.False(t, pkgerrors.IsRateLimited(teapot))
		assert.False(t, pkgerrors.IsShopUnavailable(teapot))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.ConfigError{
			Component: "shopify",
			Message:   "access_token: invalid format",
		}
		assert.Contains(t, err.Error(), "shopify")
		assert.Contains(t, err.Error(), "access_token")
		assert.Contains(t, err.Error(), "invalid format")
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewConfigError("shopify", "store domain cannot be empty", nil)
		assert.Contains(t, err.Error(), "shopify")
		assert.Contains(t, err.Error(), "cannot be empty")
	})
}

func TestIOError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.IOError{
			Operation: "write",
			Path:      "/tmp/audit.md",
			Message:   "permission denied",
			Err:       errors.New("permission denied"),
		}
		assert.Contains(t, err.Error(), "write")
		assert.Contains(t, err.Error(), "/tmp/audit.md")
		assert.Contains(t, err.Error(), "permission denied")
	})

	t.Run("unwrap", func(t *testing.T) {
		baseErr := errors.New("disk full")
		err := pkgerrors.NewIOError("write", "/data/report.md", baseErr)
		assert.Equal(t, baseErr, err.Unwrap())
	})

	t.Run("wrap helper", func(t *testing.T) {
		baseErr := errors.New("network error")
		err := pkgerrors.WrapIO("download", "https://example.com/file", baseErr)
		ioErr, ok := err.(*pkgerrors.IOError)
		require.True(t, ok)
		assert.Equal(t, "download", ioErr.Operation)
		assert.Equal(t, "https://example.com/file", ioErr.Path)
	})
}

func TestResourceError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.ResourceError{
			Operation: "create",
			Resource:  "option",
			ID:        "gid://shopify/Product/1",
			Message:   "duplicate name",
		}
		assert.Contains(t, err.Error(), "create")
		assert.Contains(t, err.Error(), "option")
		assert.Contains(t, err.Error(), "gid://shopify/Product/1")
	})

	t.Run("wrap helper", func(t *testing.T) {
		baseErr := errors.New("boom")
		err := pkgerrors.WrapResource("fetch", "catalog", "", baseErr)
		resErr, ok := err.(*pkgerrors.ResourceError)
		require.True(t, ok)
		assert.Equal(t, "fetch", resErr.Operation)
		assert.Equal(t, baseErr, resErr.Unwrap())
	})

	t.Run("nil error passthrough", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapResource("fetch", "catalog", "", nil))
	})
}

func TestAuthenticationError(t *testing.T) {
	t.Run("with shop", func(t *testing.T) {
		err := &pkgerrors.AuthenticationError{
			Shop:    "demo.myshopify.com",
			Method:  "access_token",
			Message: "token expired",
		}
		assert.Contains(t, err.Error(), "demo.myshopify.com")
		assert.Contains(t, err.Error(), "access_token")
		assert.True(t, errors.Is(err, pkgerrors.ErrAccessTokenRequired))
	})

	t.Run("constructor", func(t *testing.T) {
		base := errors.New("401")
		err := pkgerrors.NewAuthenticationError("demo.myshopify.com", "access_token", "rejected", base)
		assert.Equal(t, base, err.Unwrap())
		assert.True(t, pkgerrors.IsAccessTokenError(err))
	})
}

func TestParseError(t *testing.T) {
	t.Run("with file and position", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "json",
			File:    "response.json",
			Line:    3,
			Column:  7,
			Message: "unexpected token",
		}
		assert.Contains(t, err.Error(), "response.json")
		assert.Contains(t, err.Error(), "3:7")
	})

	t.Run("wrap helper", func(t *testing.T) {
		baseErr := errors.New("unexpected end of JSON input")
		err := pkgerrors.WrapParse("json", "", baseErr)
		parseErr, ok := err.(*pkgerrors.ParseError)
		require.True(t, ok)
		assert.Equal(t, "json", parseErr.Format)
		assert.Equal(t, baseErr, parseErr.Unwrap())
	})
}

func TestWrapAPI(t *testing.T) {
	t.Run("wraps with status", func(t *testing.T) {
		baseErr := errors.New("bad gateway")
		err := pkgerrors.WrapAPI("demo.myshopify.com", 502, baseErr)
		var apiErr *pkgerrors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 502, apiErr.StatusCode)
		assert.True(t, pkgerrors.IsShopUnavailable(err))
	})

	t.Run("nil error passthrough", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapAPI("demo.myshopify.com", 500, nil))
	})
}

func TestWrapValidation(t *testing.T) {
	baseErr := errors.New("must not be blank")
	err := pkgerrors.WrapValidation("option_name", baseErr)
	assert.True(t, pkgerrors.IsValidationError(err))
	assert.Contains(t, err.Error(), "option_name")

	assert.NoError(t, pkgerrors.WrapValidation("option_name", nil))
}
