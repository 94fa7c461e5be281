package ingestion

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/careersight/careersight/internal/logger"
	"github.com/careersight/careersight/internal/types"
)

// DefaultConcurrency bounds parallel page fetches in a URL batch.
const DefaultConcurrency = 4

// URLResult pairs one URL from a batch with its outcome.
type URLResult struct {
	URL      string
	Posting  *types.RawPosting
	Metadata *Metadata
	Err      error
}

// FromURLs ingests a batch of posting URLs in parallel. Per-URL failures are
// reported in the results rather than aborting the batch. Postings are
// assigned sequential job IDs starting at startID, in input order.
func FromURLs(ctx context.Context, urls []string, startID int, concurrency int, opts URLOptions) []URLResult {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]URLResult, len(urls))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, urlStr := range urls {
		g.Go(func() error {
			posting, metadata, err := FromURL(gctx, urlStr, opts)

			mu.Lock()
			results[i] = URLResult{URL: urlStr, Posting: posting, Metadata: metadata, Err: err}
			mu.Unlock()

			// Fetch failures stay per-URL; only context cancellation
			// stops the batch.
			return gctx.Err()
		})
	}

	_ = g.Wait()

	nextID := startID
	failed := 0
	for i := range results {
		if results[i].Err != nil {
			failed++
			continue
		}
		if results[i].Posting != nil {
			results[i].Posting.JobID = nextID
			nextID++
		}
	}

	if failed > 0 {
		logger.Warn().Int("total", len(urls)).Int("failed", failed).Msg("URL batch finished with failures")
	}

	return results
}

// Postings collects the successfully ingested postings from a batch result
// set, in input order.
func Postings(results []URLResult) []types.RawPosting {
	postings := make([]types.RawPosting, 0, len(results))
	for _, r := range results {
		if r.Err == nil && r.Posting != nil {
			postings = append(postings, *r.Posting)
		}
	}
	return postings
}
