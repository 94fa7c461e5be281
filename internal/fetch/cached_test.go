package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(t *testing.T, ttl time.Duration) *CachedFetcher {
	t.Helper()
	return NewCachedFetcher(&CachedFetcherConfig{
		Dir:      t.TempDir(),
		CacheTTL: ttl,
		Options:  DefaultOptions(),
	})
}

func TestCachedFetcher_SecondFetchHitsCache(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("<html><body>posting body</body></html>"))
	}))
	defer server.Close()

	fetcher := newTestFetcher(t, time.Hour)

	first, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, first.FromCache)

	second, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.HTML, second.HTML)
	assert.Equal(t, int64(1), hits.Load())
}

func TestCachedFetcher_ExpiredEntryRefetches(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("fresh"))
	}))
	defer server.Close()

	fetcher := newTestFetcher(t, time.Nanosecond)

	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	result, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, result.FromCache)
	assert.Equal(t, int64(2), hits.Load())
}

func TestCachedFetcher_SkipCache(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("no cache"))
	}))
	defer server.Close()

	fetcher := NewCachedFetcher(&CachedFetcherConfig{
		Dir:       t.TempDir(),
		CacheTTL:  time.Hour,
		SkipCache: true,
	})

	for i := 0; i < 3; i++ {
		result, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.False(t, result.FromCache)
	}
	assert.Equal(t, int64(3), hits.Load())
}

func TestCachedFetcher_Invalidate(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("body"))
	}))
	defer server.Close()

	fetcher := newTestFetcher(t, time.Hour)

	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	require.NoError(t, fetcher.Invalidate(server.URL))
	// Invalidating a missing entry is not an error.
	require.NoError(t, fetcher.Invalidate("https://example.com/never-fetched"))

	result, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, result.FromCache)
	assert.Equal(t, int64(2), hits.Load())
}
