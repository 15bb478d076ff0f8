package azure

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFlattensContentField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/indexes/docs/docs/search", r.URL.Path)
		assert.Equal(t, "key123", r.Header.Get("api-key"))

		var req searchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "golang", req.Search)
		assert.Equal(t, 5, req.Top)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"value": []map[string]interface{}{
				{"content": "first snippet", "score": 1.2},
				{"content": "second snippet"},
				{"title": "no content field"},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "docs", "key123")
	results, err := client.Search(context.Background(), "golang", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"first snippet", "second snippet"}, results)
}

func TestSearchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "docs", "bad-key")
	_, err := client.Search(context.Background(), "golang", 5)
	assert.Error(t, err)
}
