package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/careersight/careersight/internal/logger"
)

// DefaultCacheTTL is how long a cached page stays fresh.
const DefaultCacheTTL = 7 * 24 * time.Hour

// CachedFetcher wraps URL fetching with a disk-backed page cache. Repeated
// ingestion runs against the same board reuse cached pages instead of
// re-fetching them.
type CachedFetcher struct {
	dir       string
	options   *Options
	cacheTTL  time.Duration
	skipCache bool // for testing or forcing fresh fetches
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	Dir       string
	CacheTTL  time.Duration
	SkipCache bool
	Options   *Options
}

// DefaultCachedFetcherConfig returns sensible defaults, caching under the
// user cache directory.
func DefaultCachedFetcherConfig() *CachedFetcherConfig {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return &CachedFetcherConfig{
		Dir:       filepath.Join(dir, "careersight", "pages"),
		CacheTTL:  DefaultCacheTTL,
		SkipCache: false,
		Options:   DefaultOptions(),
	}
}

// NewCachedFetcher creates a new cached fetcher.
func NewCachedFetcher(config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = DefaultCachedFetcherConfig()
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = DefaultCacheTTL
	}
	if config.Dir == "" {
		config.Dir = DefaultCachedFetcherConfig().Dir
	}
	return &CachedFetcher{
		dir:       config.Dir,
		options:   config.Options,
		cacheTTL:  config.CacheTTL,
		skipCache: config.SkipCache,
	}
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool
	FetchedAt time.Time
}

// cacheEntry is the on-disk representation of a cached page.
type cacheEntry struct {
	URL         string    `json:"url"`
	HTML        string    `json:"html"`
	ContentType string    `json:"content_type,omitempty"`
	StatusCode  int       `json:"status_code"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// Fetch retrieves a URL, using the disk cache if a fresh entry exists.
// Fresh content is written back to the cache; cache write failures are
// logged but do not fail the fetch.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	if !f.skipCache {
		if entry := f.readEntry(urlStr); entry != nil && time.Since(entry.FetchedAt) < f.cacheTTL {
			logger.Debug().Str("url", urlStr).Time("fetched_at", entry.FetchedAt).Msg("page cache hit")
			return &CachedResult{
				Result: &Result{
					URL:         entry.URL,
					HTML:        entry.HTML,
					ContentType: entry.ContentType,
					StatusCode:  entry.StatusCode,
				},
				FromCache: true,
				FetchedAt: entry.FetchedAt,
			}, nil
		}
	}

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	fetchedAt := time.Now().UTC()
	if !f.skipCache {
		if err := f.writeEntry(urlStr, result, fetchedAt); err != nil {
			logger.Warn().Err(err).Str("url", urlStr).Msg("failed to write page cache")
		}
	}

	return &CachedResult{
		Result:    result,
		FromCache: false,
		FetchedAt: fetchedAt,
	}, nil
}

// Invalidate removes the cached entry for a URL, if any.
func (f *CachedFetcher) Invalidate(urlStr string) error {
	path := f.entryPath(urlStr)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove cache entry: %w", err)
	}
	return nil
}

func (f *CachedFetcher) entryPath(urlStr string) string {
	sum := sha256.Sum256([]byte(urlStr))
	return filepath.Join(f.dir, hex.EncodeToString(sum[:])+".json")
}

func (f *CachedFetcher) readEntry(urlStr string) *cacheEntry {
	data, err := os.ReadFile(f.entryPath(urlStr))
	if err != nil {
		return nil
	}
	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		// Corrupt entry, treat as a miss.
		return nil
	}
	return &entry
}

func (f *CachedFetcher) writeEntry(urlStr string, result *Result, fetchedAt time.Time) error {
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	entry := cacheEntry{
		URL:         result.URL,
		HTML:        result.HTML,
		ContentType: result.ContentType,
		StatusCode:  result.StatusCode,
		FetchedAt:   fetchedAt,
	}
	data, err := json.Marshal(&entry)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}
	if err := os.WriteFile(f.entryPath(urlStr), data, 0644); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}
