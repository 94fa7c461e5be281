package ranking

import "sort"

// similarity pairs a posting index with its score against a reference vector.
type similarity struct {
	index int
	score float64
}

// SimilarPostings returns the IDs of the topN postings most similar to the
// posting with the given ID, excluding the posting itself. An unknown ID
// yields an empty slice.
func (m *Model) SimilarPostings(postingID, topN int) []int {
	ref := -1
	for i := range m.postings {
		if m.postings[i].ID == postingID {
			ref = i
			break
		}
	}
	if ref < 0 || topN <= 0 {
		return []int{}
	}

	sims := make([]similarity, 0, len(m.postings)-1)
	for i := range m.postings {
		if i == ref {
			continue
		}
		sims = append(sims, similarity{index: i, score: cosine(m.vectors[ref], m.vectors[i])})
	}
	sort.Slice(sims, func(i, j int) bool {
		if sims[i].score != sims[j].score {
			return sims[i].score > sims[j].score
		}
		return m.postings[sims[i].index].ID < m.postings[sims[j].index].ID
	})

	if len(sims) > topN {
		sims = sims[:topN]
	}
	ids := make([]int, len(sims))
	for i, s := range sims {
		ids[i] = m.postings[s.index].ID
	}
	return ids
}
