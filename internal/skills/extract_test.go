package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_CanonicalNamesOnly(t *testing.T) {
	vocab := Vocabulary{
		"Kubernetes": {"k8s"},
		"JavaScript": {"js", "node.js"},
	}

	got := Extract("We run k8s clusters and write node.js services", vocab)

	assert.Equal(t, []string{"JavaScript", "Kubernetes"}, got)
}

func TestExtract_NoSynonymLeakage(t *testing.T) {
	vocab := Vocabulary{"SQL": {"sql", "postgresql", "mysql"}}

	got := Extract("postgresql and mysql and sql everywhere", vocab)

	// Three synonym hits collapse to one canonical entry.
	assert.Equal(t, []string{"SQL"}, got)
}

func TestExtract_TokenBoundaries(t *testing.T) {
	vocab := Vocabulary{"Go": {"golang", "go lang"}, "R": {"r programming"}}

	assert.Empty(t, Extract("mongodb and cargo pipelines", vocab))
	assert.Equal(t, []string{"Go"}, Extract("we write golang", vocab))
}

func TestExtract_CaseInsensitive(t *testing.T) {
	vocab := Vocabulary{"Python": {"python"}}

	assert.Equal(t, []string{"Python"}, Extract("PYTHON developer wanted", vocab))
}

func TestExtract_Idempotent(t *testing.T) {
	vocab := DefaultVocabulary()
	text := "Looking for a data scientist with Python, SQL, machine learning and AWS experience"

	first := Extract(text, vocab)
	second := Extract(text, vocab)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "Python")
	assert.Contains(t, first, "Machine Learning")
}

func TestExtract_EmptyInputs(t *testing.T) {
	assert.Empty(t, Extract("", DefaultVocabulary()))
	assert.Empty(t, Extract("plenty of text", Vocabulary{}))
	assert.Empty(t, Extract("plenty of text", nil))
}

func TestVocabulary_Canonical(t *testing.T) {
	vocab := DefaultVocabulary()

	assert.Equal(t, "Kubernetes", vocab.Canonical("k8s"))
	assert.Equal(t, "Go", vocab.Canonical("Golang"))
	assert.Equal(t, "Python", vocab.Canonical("PYTHON"))
	assert.Equal(t, "Fortran", vocab.Canonical("Fortran")) // unknown passes through
	assert.Equal(t, "", vocab.Canonical("  "))
}
