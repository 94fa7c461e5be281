// Package ranking builds a TF-IDF feature space over job postings and scores
// each posting against a user profile by cosine similarity.
package ranking

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// MaxVocabularyTerms caps the feature space. Terms beyond the cap are the
// least frequent across the corpus and contribute little to the ordering.
const MaxVocabularyTerms = 5000

var tokenRe = regexp.MustCompile(`[\p{L}\p{N}+#]+`)

// Vectorizer converts documents into sparse TF-IDF vectors over a vocabulary
// of unigrams and bigrams learned from a corpus. A fitted Vectorizer is
// immutable and safe for concurrent use.
type Vectorizer struct {
	vocab map[string]int // term -> column index
	idf   []float64
}

// sparseVector is a TF-IDF document representation: column indexes in
// ascending order with their aligned weights, plus the precomputed L2 norm.
// The fixed ordering keeps every accumulation over the vector reproducible,
// so identical inputs always produce bit-identical scores.
type sparseVector struct {
	cols    []int
	weights []float64
	norm    float64
}

// FitVectorizer learns the vocabulary and IDF statistics from a corpus.
// Tokens are lowercased, stop words removed, and bigrams formed over the
// surviving token stream. When the corpus produces more than
// MaxVocabularyTerms distinct terms, the most document-frequent terms are
// kept, ties broken by term ascending so a refit over the same corpus is
// byte-for-byte identical.
func FitVectorizer(corpus []string) *Vectorizer {
	df := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]bool)
		for _, term := range Terms(doc) {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if df[terms[i]] != df[terms[j]] {
			return df[terms[i]] > df[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > MaxVocabularyTerms {
		terms = terms[:MaxVocabularyTerms]
	}
	// Stable column order independent of frequency.
	sort.Strings(terms)

	v := &Vectorizer{
		vocab: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
	}
	n := float64(len(corpus))
	for i, term := range terms {
		v.vocab[term] = i
		// Smoothed IDF; keeps every weight positive so cosine stays in [0,1].
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return v
}

// Transform converts a document into a TF-IDF vector in the fitted space.
// Terms outside the vocabulary are ignored; an empty or all-unknown document
// yields the zero vector.
func (v *Vectorizer) Transform(doc string) sparseVector {
	counts := make(map[int]float64)
	for _, term := range Terms(doc) {
		if col, ok := v.vocab[term]; ok {
			counts[col]++
		}
	}

	cols := make([]int, 0, len(counts))
	for col := range counts {
		cols = append(cols, col)
	}
	sort.Ints(cols)

	weights := make([]float64, len(cols))
	norm := 0.0
	for i, col := range cols {
		w := counts[col] * v.idf[col]
		weights[i] = w
		norm += w * w
	}
	return sparseVector{cols: cols, weights: weights, norm: math.Sqrt(norm)}
}

// VocabularySize returns the number of terms in the fitted vocabulary.
func (v *Vectorizer) VocabularySize() int {
	return len(v.vocab)
}

// Terms tokenizes a document into the unigrams and bigrams used as features.
func Terms(doc string) []string {
	raw := tokenRe.FindAllString(strings.ToLower(doc), -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if len(tok) < 2 && !isMeaningfulShort(tok) {
			continue
		}
		if englishStopWords[tok] {
			continue
		}
		tokens = append(tokens, tok)
	}

	terms := make([]string, 0, len(tokens)*2)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

// isMeaningfulShort keeps single-character tokens that are real skill names.
func isMeaningfulShort(tok string) bool {
	return tok == "r" || tok == "c"
}

// cosine computes the cosine similarity between two sparse vectors. Zero
// vectors score 0 by definition.
func cosine(a, b sparseVector) float64 {
	if a.norm == 0 || b.norm == 0 {
		return 0
	}
	dot := 0.0
	for i, j := 0, 0; i < len(a.cols) && j < len(b.cols); {
		switch {
		case a.cols[i] < b.cols[j]:
			i++
		case a.cols[i] > b.cols[j]:
			j++
		default:
			dot += a.weights[i] * b.weights[j]
			i++
			j++
		}
	}
	sim := dot / (a.norm * b.norm)
	// Guard against float drift past the closed interval.
	if sim > 1 {
		sim = 1
	}
	if sim < 0 {
		sim = 0
	}
	return sim
}
