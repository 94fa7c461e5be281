package ranking

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerms_UnigramsAndBigrams(t *testing.T) {
	terms := Terms("Senior Python Developer")

	assert.Contains(t, terms, "python")
	assert.Contains(t, terms, "senior python")
	assert.Contains(t, terms, "python developer")
}

func TestTerms_StopWordsRemovedBeforeBigrams(t *testing.T) {
	terms := Terms("experience with python and sql")

	assert.NotContains(t, terms, "with")
	assert.NotContains(t, terms, "and")
	// Bigrams bridge the removed stop words.
	assert.Contains(t, terms, "python sql")
}

func TestTerms_KeepsShortSkillNames(t *testing.T) {
	terms := Terms("R and C developers")

	assert.Contains(t, terms, "r")
	assert.Contains(t, terms, "c")
}

func TestFitVectorizer_VocabularyCap(t *testing.T) {
	corpus := make([]string, 0, 600)
	for i := 0; i < 600; i++ {
		// Ten distinct tokens per doc produce well over the cap in bigrams.
		corpus = append(corpus, fmt.Sprintf("term%da term%db term%dc term%dd term%de term%df term%dg term%dh term%di term%dj",
			i, i, i, i, i, i, i, i, i, i))
	}

	v := FitVectorizer(corpus)

	assert.Equal(t, MaxVocabularyTerms, v.VocabularySize())
}

func TestTransform_UnknownTermsIgnored(t *testing.T) {
	v := FitVectorizer([]string{"python sql", "python spark"})

	vec := v.Transform("cobol fortran")

	assert.Zero(t, vec.norm)
	assert.Empty(t, vec.weights)
}

func TestCosine_IdenticalDocuments(t *testing.T) {
	v := FitVectorizer([]string{"python sql developer", "java architect"})

	a := v.Transform("python sql developer")
	b := v.Transform("python sql developer")

	assert.InDelta(t, 1.0, cosine(a, b), 1e-9)
}

func TestCosine_DisjointDocuments(t *testing.T) {
	v := FitVectorizer([]string{"python sql", "java spring"})

	a := v.Transform("python sql")
	b := v.Transform("java spring")

	assert.Zero(t, cosine(a, b))
}

func TestCosine_BitIdenticalAcrossCalls(t *testing.T) {
	corpus := []string{
		"python sql developer pandas spark airflow",
		"java spring engineer kafka postgres",
		"python spark data warehouse sql tableau",
	}
	v := FitVectorizer(corpus)

	query := v.Transform("python sql spark data engineer")
	doc := v.Transform(corpus[2])

	first := cosine(query, doc)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, cosine(v.Transform("python sql spark data engineer"), v.Transform(corpus[2])))
	}
}

func TestFitVectorizer_DeterministicAcrossRefits(t *testing.T) {
	corpus := []string{"python sql developer", "java spring engineer", "python spark data"}

	a := FitVectorizer(corpus)
	b := FitVectorizer(corpus)

	require.Equal(t, a.VocabularySize(), b.VocabularySize())
	assert.Equal(t, a.vocab, b.vocab)
	assert.Equal(t, a.idf, b.idf)
}
