package ranking

import (
	"sync/atomic"

	"github.com/careersight/careersight/internal/types"
)

// ModelCache is a read-through cache for fitted models, keyed by an explicit
// corpus version counter owned by whoever mutates the posting set. The cached
// model is swapped atomically on rebuild: readers see either the previous
// model or the new one, never a partially built structure, and a stale model
// is never served for a newer version, so postings added since the last fit
// cannot be silently dropped from ranking.
type ModelCache struct {
	current atomic.Pointer[Model]
}

// NewModelCache returns an empty cache.
func NewModelCache() *ModelCache {
	return &ModelCache{}
}

// Model returns the fitted model for the given corpus version, refitting when
// the cache is empty or holds a different version. Concurrent callers may
// race to rebuild the same version; both builds are equivalent and the swap
// is atomic, so the extra fit is wasted work rather than a correctness
// problem. No lock is held while fitting.
func (c *ModelCache) Model(postings []types.JobPosting, version uint64) *Model {
	if m := c.current.Load(); m != nil && m.Version == version {
		return m
	}
	m := Fit(postings, version)
	c.current.Store(m)
	return m
}

// Invalidate drops the cached model. The next Model call refits.
func (c *ModelCache) Invalidate() {
	c.current.Store(nil)
}
