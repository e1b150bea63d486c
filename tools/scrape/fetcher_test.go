package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcpbridge/tools"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			fmt.Fprint(w, "<html>hello</html>")
		case "/big":
			fmt.Fprint(w, strings.Repeat("x", 100))
		case "/missing":
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	t.Run("successful fetch", func(t *testing.T) {
		f := NewHTTPFetcher(srv.Client(), 0)

		page, err := f.Fetch(context.Background(), srv.URL+"/ok")
		require.NoError(t, err)

		assert.Equal(t, 200, page.Status)
		assert.Equal(t, "text/html; charset=utf-8", page.ContentType)
		assert.Equal(t, "<html>hello</html>", page.Content)
		assert.False(t, page.Truncated)
	})

	t.Run("body capped at maxBytes", func(t *testing.T) {
		f := NewHTTPFetcher(srv.Client(), 64)

		page, err := f.Fetch(context.Background(), srv.URL+"/big")
		require.NoError(t, err)

		assert.Len(t, page.Content, 64)
		assert.True(t, page.Truncated)
	})

	t.Run("non-2xx status", func(t *testing.T) {
		f := NewHTTPFetcher(srv.Client(), 0)

		_, err := f.Fetch(context.Background(), srv.URL+"/missing")
		require.Error(t, err)
		assert.Equal(t, tools.KindFetchError, tools.KindOf(err))
	})

	t.Run("unreachable host", func(t *testing.T) {
		f := NewHTTPFetcher(nil, 0)

		_, err := f.Fetch(context.Background(), "http://127.0.0.1:1/nope")
		require.Error(t, err)
		assert.Equal(t, tools.KindFetchError, tools.KindOf(err))
	})
}
