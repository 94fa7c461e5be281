package ranking

import (
	"sort"
	"strings"

	"github.com/careersight/careersight/internal/types"
)

// Model is a fitted feature space over one posting set: the vectorizer plus
// the posting vectors, tagged with the corpus version it was built from.
// A Model is immutable; concurrent Rank calls are safe.
type Model struct {
	Version    uint64
	vectorizer *Vectorizer
	postings   []types.JobPosting
	vectors    []sparseVector
}

// Fit builds a Model over a posting set. The vocabulary is learned jointly
// over the postings' combined text; the profile is transformed into the same
// space at rank time.
func Fit(postings []types.JobPosting, version uint64) *Model {
	corpus := make([]string, 0, len(postings))
	for i := range postings {
		corpus = append(corpus, postings[i].CombinedText())
	}

	v := FitVectorizer(corpus)
	vectors := make([]sparseVector, len(corpus))
	for i, doc := range corpus {
		vectors[i] = v.Transform(doc)
	}

	return &Model{
		Version:    version,
		vectorizer: v,
		postings:   postings,
		vectors:    vectors,
	}
}

// Rank scores every posting in the model against the profile and returns the
// full ordering: scores in [0,1], descending, ties broken by posting ID
// ascending. An empty profile produces uniform zero scores but still a
// complete, deterministically ordered result. Zero postings produce an empty
// slice, not an error.
func (m *Model) Rank(profile *types.UserProfile) []types.MatchResult {
	query := m.vectorizer.Transform(profile.QueryText())

	results := make([]types.MatchResult, 0, len(m.postings))
	for i := range m.postings {
		results = append(results, types.MatchResult{
			PostingID:   m.postings[i].ID,
			Score:       cosine(query, m.vectors[i]),
			Explanation: explainMatch(&m.postings[i], profile),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].PostingID < results[j].PostingID
	})
	for i := range results {
		results[i].Rank = i + 1
	}
	return results
}

// Rank is the one-shot entry point: fit over the postings and rank the
// profile in a single call. Refitting per request is acceptable for small
// corpora; servers with a long-lived posting set should use ModelCache.
func Rank(postings []types.JobPosting, profile *types.UserProfile) []types.MatchResult {
	return Fit(postings, 0).Rank(profile)
}

// explainMatch produces the short human-readable reason attached to each
// result: matched skills first, then a title keyword hit, then the generic
// fallback.
func explainMatch(p *types.JobPosting, profile *types.UserProfile) string {
	var parts []string

	skillsLower := strings.ToLower(p.SkillsText())
	matched := make([]string, 0, 3)
	for _, skill := range profile.Skills {
		s := strings.TrimSpace(skill)
		if s == "" {
			continue
		}
		if strings.Contains(skillsLower, strings.ToLower(s)) {
			matched = append(matched, s)
			if len(matched) == 3 {
				break
			}
		}
	}
	if len(matched) > 0 {
		parts = append(parts, "Matching skills: "+strings.Join(matched, ", "))
	}

	titleLower := strings.ToLower(p.Title)
	for _, skill := range profile.Skills {
		s := strings.ToLower(strings.TrimSpace(skill))
		if len(s) > 3 && strings.Contains(titleLower, s) {
			parts = append(parts, "Title contains \""+s+"\"")
			break
		}
	}

	if len(parts) == 0 {
		return "General profile match"
	}
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, " | ")
}
