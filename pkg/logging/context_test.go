package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Earnest-Minds/option-remove-app/pkg/logging"
)

func TestContextFunctions(t *testing.T) {
	t.Run("WithShop adds shop to context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithShop(ctx, "demo.myshopify.com")

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithProduct adds product to context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithProduct(ctx, "gid://shopify/Product/1")

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithOption adds option to context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithOption(ctx, "Color")

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithOperation adds operation to context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithOperation(ctx, "add_option")

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithFields adds custom fields to context", func(t *testing.T) {
		ctx := context.Background()
		fields := map[string]any{
			"page":   3,
			"cursor": "abc-def",
		}
		ctx = logging.WithFields(ctx, fields)

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("FromContext returns default for bare context", func(t *testing.T) {
		logger := logging.FromContext(context.Background())
		assert.Equal(t, logging.Default(), logger)
	})

	t.Run("Ctx extracts logger from context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithShop(ctx, "demo.myshopify.com")

		logger := logging.Ctx(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("chaining context functions", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithShop(ctx, "demo.myshopify.com")
		ctx = logging.WithOperation(ctx, "remove_option")
		ctx = logging.WithProduct(ctx, "gid://shopify/Product/42")
		ctx = logging.WithOption(ctx, "Pack weight")

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})
}

func TestRequestID(t *testing.T) {
	t.Run("round trips through context", func(t *testing.T) {
		ctx := logging.WithRequestID(context.Background(), "req-123")
		assert.Equal(t, "req-123", logging.RequestID(ctx))
	})

	t.Run("absent returns empty", func(t *testing.T) {
		assert.Empty(t, logging.RequestID(context.Background()))
	})

	t.Run("request id lands in log output", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		ctx = logging.WithRequestID(ctx, "req-xyz")

		logging.Ctx(ctx).Info().Msg("page fetched")
		assert.True(t, tl.ContainsAll("req-xyz", "page fetched"))
	})
}

func TestWithError(t *testing.T) {
	t.Run("nil error leaves context untouched", func(t *testing.T) {
		ctx := context.Background()
		assert.Equal(t, ctx, logging.WithError(ctx, nil))
	})

	t.Run("error is attached to logger", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		ctx = logging.WithError(ctx, assert.AnError)

		logging.Ctx(ctx).Error().Msg("failed")
		assert.True(t, tl.Contains("failed"))
	})
}
