package server

import (
	"strings"
	"sync"

	"github.com/careersight/careersight/internal/normalize"
	"github.com/careersight/careersight/internal/ranking"
	"github.com/careersight/careersight/internal/skills"
	"github.com/careersight/careersight/internal/types"
)

// Store holds the current normalized posting corpus. Each ingestion batch
// replaces the previous one and bumps the version, which invalidates the
// ranking model cache on the next read.
type Store struct {
	mu       sync.RWMutex
	postings []types.JobPosting
	version  uint64

	vocab skills.Vocabulary
	cache *ranking.ModelCache
}

// NewStore creates an empty posting store using the given skill vocabulary.
func NewStore(vocab skills.Vocabulary) *Store {
	if vocab == nil {
		vocab = skills.DefaultVocabulary()
	}
	return &Store{
		vocab: vocab,
		cache: ranking.NewModelCache(),
	}
}

// Replace normalizes a raw batch, enriches skills from description text, and
// swaps it in as the new corpus. Returns the number of postings stored.
func (s *Store) Replace(raw []types.RawPosting) int {
	normalized := normalize.Postings(raw)
	for i := range normalized {
		normalized[i].Skills = s.enrichSkills(&normalized[i])
	}

	s.mu.Lock()
	s.postings = normalized
	s.version++
	s.mu.Unlock()

	return len(normalized)
}

// enrichSkills merges vocabulary matches from the description into the
// posting's cleaned skill list. Deduplication is case-insensitive so a
// source-cased skill and its canonical extracted form never both survive.
func (s *Store) enrichSkills(p *types.JobPosting) []string {
	extracted := skills.Extract(p.Title+" "+p.Description, s.vocab)
	if len(extracted) == 0 {
		return p.Skills
	}

	seen := make(map[string]bool, len(p.Skills))
	merged := make([]string, 0, len(p.Skills)+len(extracted))
	for _, skill := range p.Skills {
		key := strings.ToLower(skill)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, skill)
	}
	for _, skill := range extracted {
		key := strings.ToLower(skill)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, skill)
	}
	return merged
}

// Postings returns a snapshot copy of the current corpus.
func (s *Store) Postings() []types.JobPosting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]types.JobPosting, len(s.postings))
	copy(snapshot, s.postings)
	return snapshot
}

// Version returns the current corpus version. Zero means nothing has been
// ingested yet.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Count returns the number of postings in the corpus.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.postings)
}

// Model returns the ranking model for the current corpus, refitting only
// when the version changed since the last call.
func (s *Store) Model() *ranking.Model {
	s.mu.RLock()
	postings := s.postings
	version := s.version
	s.mu.RUnlock()

	return s.cache.Model(postings, version)
}
