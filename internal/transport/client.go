package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Earnest-Minds/option-remove-app/pkg/constants"
	"github.com/Earnest-Minds/option-remove-app/pkg/errors"
	"github.com/Earnest-Minds/option-remove-app/pkg/logging"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client provides HTTP client functionality with authentication.
type Client struct {
	http  *http.Client
	auth  Authenticator
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New creates a new transport client with the specified authenticator and token.
// The token is applied to every outgoing request; pass an empty token together
// with NoAuth for unauthenticated test servers.
func New(auth Authenticator, token string, opts ...Option) *Client {
	c := &Client{
		http:  &http.Client{Timeout: DefaultHTTPTimeout},
		auth:  auth,
		token: token,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do performs an HTTP request with authentication applied and context support.
// Every request carries a generated request ID for log correlation.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.token != "" {
		c.auth.Apply(req, c.token)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	// Set common headers
	req.Header.Set("Accept", "application/json")
	if req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch {
		req.Header.Set("Content-Type", "application/json")
	}

	logging.Ctx(ctx).Debug().
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Msg("admin api request")

	resp, err := c.http.Do(req.WithContext(ctx))
	if err != nil {
		return nil, errors.WrapResource("send", "request", req.Method+" "+req.URL.String(), err)
	}
	return resp, nil
}

// PostJSON marshals payload and POSTs it to url.
func (c *Client) PostJSON(ctx context.Context, url string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.WrapParse("json", "request body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WrapResource("create", "request", "POST "+url, err)
	}
	return c.Do(ctx, req)
}
