package transport

import (
	"net/http"
	"testing"

	"github.com/Earnest-Minds/option-remove-app/pkg/constants"
)

func TestNoAuth(t *testing.T) {
	auth := NoAuth{}
	req, err := http.NewRequest(http.MethodPost, "https://example.myshopify.com/admin/api/2024-07/graphql.json", nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	auth.Apply(req, "shpat_secret")

	if len(req.Header) != 0 {
		t.Errorf("NoAuth should not set headers, got %v", req.Header)
	}
}

func TestTokenAuth(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{
			name:  "sets access token header",
			token: "shpat_abc123",
			want:  "shpat_abc123",
		},
		{
			name:  "empty token still applied",
			token: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := TokenAuth{}
			req, err := http.NewRequest(http.MethodPost, "https://example.myshopify.com/admin/api/2024-07/graphql.json", nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			auth.Apply(req, tt.token)

			if got := req.Header.Get(constants.AccessTokenHeader); got != tt.want {
				t.Errorf("TokenAuth.Apply() header = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeaderAuth(t *testing.T) {
	auth := HeaderAuth{Header: "X-Custom-Token"}
	req, err := http.NewRequest(http.MethodGet, "https://example.com", nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	auth.Apply(req, "secret")

	if got := req.Header.Get("X-Custom-Token"); got != "secret" {
		t.Errorf("HeaderAuth.Apply() header = %q, want %q", got, "secret")
	}
	if got := req.Header.Get(constants.AccessTokenHeader); got != "" {
		t.Errorf("HeaderAuth should not set %s, got %q", constants.AccessTokenHeader, got)
	}
}
