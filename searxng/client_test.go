package searxng_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/rescontext"
	"github.com/fwojciec/rescontext/searxng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Client implements rescontext.Searcher at compile time.
var _ rescontext.Searcher = (*searxng.Client)(nil)

const sampleResponse = `{
  "results": [
    {"title": "The Tower (tarot card)", "url": "https://en.wikipedia.org/wiki/The_Tower_(tarot_card)", "content": "The Tower is the 16th trump card."},
    {"title": "Tower", "url": "https://example.com/tower", "content": "A tower is a tall structure."},
    {"title": "Tower of London", "url": "https://example.com/tol", "content": "A historic castle."}
  ]
}`

func TestClient_Search(t *testing.T) {
	t.Parallel()

	t.Run("maps response results in order", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "tower tarot", r.URL.Query().Get("q"))
			assert.Equal(t, "json", r.URL.Query().Get("format"))
			_, _ = w.Write([]byte(sampleResponse))
		}))
		defer srv.Close()

		client := searxng.NewClient(srv.URL)
		results, err := client.Search(context.Background(), "tower tarot")

		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "The Tower (tarot card)", results[0].Title)
		assert.Equal(t, "The Tower is the 16th trump card.", results[0].Content)
		assert.Equal(t, "searxng", results[0].Source)
		assert.Equal(t, "tower tarot", results[0].Query)
		assert.NotEmpty(t, results[0].ID)
	})

	t.Run("respects the result limit", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(sampleResponse))
		}))
		defer srv.Close()

		client := searxng.NewClient(srv.URL, searxng.WithMaxResults(2))
		results, err := client.Search(context.Background(), "tower")

		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("returns EUNAVAILABLE on non-200", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		client := searxng.NewClient(srv.URL)
		_, err := client.Search(context.Background(), "tower")

		require.Error(t, err)
		assert.Equal(t, rescontext.EUNAVAILABLE, rescontext.ErrorCode(err))
	})

	t.Run("returns EINVALID for empty query", func(t *testing.T) {
		t.Parallel()

		client := searxng.NewClient("http://localhost:8889")
		_, err := client.Search(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, rescontext.EINVALID, rescontext.ErrorCode(err))
	})

	t.Run("errors on malformed JSON", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()

		client := searxng.NewClient(srv.URL)
		_, err := client.Search(context.Background(), "tower")

		assert.Error(t, err)
	})
}

func TestClient_Name(t *testing.T) {
	t.Parallel()

	client := searxng.NewClient("http://localhost:8889")

	assert.Equal(t, "searxng", client.Name())
}
