package transport

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Earnest-Minds/option-remove-app/pkg/errors"
)

// DecodeResponse reads an HTTP response body and decodes JSON into target.
// Non-2xx statuses become an APIError carrying the shop, status code, and
// response body, so callers can match against the rate-limit and auth
// sentinels. The response body is always closed.
func DecodeResponse(shop string, resp *http.Response, target any) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", shop, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &errors.APIError{
			Shop:       shop,
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   resp.Request.URL.Path,
		}
	}

	if target == nil {
		return nil
	}

	if err := json.Unmarshal(body, target); err != nil {
		return &errors.ParseError{
			Format:  "json",
			File:    shop,
			Message: fmt.Sprintf("decoding response: %v", err),
			Err:     err,
		}
	}
	return nil
}
