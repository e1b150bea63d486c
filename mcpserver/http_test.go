package mcpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBearerAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		token      string
		header     string
		wantStatus int
	}{
		{
			name:       "no token configured passes everything through",
			token:      "",
			header:     "",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "matching bearer token",
			token:      "s3cret",
			header:     "Bearer s3cret",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "missing header rejected",
			token:      "s3cret",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong token rejected",
			token:      "s3cret",
			header:     "Bearer wrong",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non-bearer scheme rejected",
			token:      "s3cret",
			header:     "Basic s3cret",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			bearerAuth(tt.token)(next).ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
