// Package skills extracts canonical skill names from free-text job
// descriptions and analyzes the gap between a user's skills and the skills a
// target role demands.
package skills

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Vocabulary maps canonical skill names to the surface forms that identify
// them in text. Any synonym match puts the canonical name, and only the
// canonical name, into the extracted set.
type Vocabulary map[string][]string

// DefaultVocabulary returns the built-in skill taxonomy. Callers with their
// own taxonomy can construct a Vocabulary directly.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		"Python":           {"python"},
		"Go":               {"golang", "go lang"},
		"Java":             {"java"},
		"JavaScript":       {"javascript", "js", "node.js", "nodejs"},
		"TypeScript":       {"typescript", "ts"},
		"SQL":              {"sql", "postgresql", "postgres", "mysql"},
		"NoSQL":            {"nosql", "mongodb", "cassandra", "dynamodb"},
		"Machine Learning": {"machine learning", "ml"},
		"Deep Learning":    {"deep learning", "neural network", "neural networks"},
		"Data Analysis":    {"data analysis", "data analytics"},
		"Excel":            {"excel", "spreadsheets"},
		"Tableau":          {"tableau"},
		"Power BI":         {"power bi", "powerbi"},
		"Spark":            {"spark", "pyspark"},
		"Hadoop":           {"hadoop"},
		"AWS":              {"aws", "amazon web services"},
		"GCP":              {"gcp", "google cloud"},
		"Azure":            {"azure"},
		"Docker":           {"docker", "containers"},
		"Kubernetes":       {"kubernetes", "k8s"},
		"Terraform":        {"terraform"},
		"CI/CD":            {"ci/cd", "cicd", "continuous integration"},
		"React":            {"react", "react.js", "reactjs"},
		"Vue":              {"vue", "vue.js", "vuejs"},
		"Angular":          {"angular"},
		"Django":           {"django"},
		"Flask":            {"flask"},
		"REST APIs":        {"rest api", "rest apis", "restful"},
		"GraphQL":          {"graphql"},
		"Git":              {"git", "github", "gitlab"},
		"Linux":            {"linux", "unix"},
		"TensorFlow":       {"tensorflow"},
		"PyTorch":          {"pytorch"},
		"NLP":              {"nlp", "natural language processing"},
		"Computer Vision":  {"computer vision", "opencv"},
		"Statistics":       {"statistics", "statistical analysis"},
		"R":                {"r programming", "rstudio"},
		"Communication":    {"communication", "presentation skills"},
		"Leadership":       {"leadership", "team lead", "mentoring"},
		"Agile":            {"agile", "scrum", "kanban"},
		"Project Management": {"project management", "jira"},
	}
}

// LoadVocabulary reads a custom taxonomy from a JSON file mapping canonical
// skill names to synonym lists, the same shape DefaultVocabulary builds in
// code. Synonyms are lowercased on load so matching stays case-insensitive
// regardless of how the file spells them.
func LoadVocabulary(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	var vocab Vocabulary
	if err := json.Unmarshal(data, &vocab); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file %s: %w", path, err)
	}
	if len(vocab) == 0 {
		return nil, fmt.Errorf("vocabulary file %s defines no skills", path)
	}

	for canonical, synonyms := range vocab {
		for i, syn := range synonyms {
			synonyms[i] = strings.ToLower(strings.TrimSpace(syn))
		}
		vocab[canonical] = synonyms
	}
	return vocab, nil
}

// Canonical returns the canonical name for a skill token, using the
// vocabulary's synonym table when the token matches one, and a trimmed
// pass-through otherwise. Empty tokens map to "".
func (v Vocabulary) Canonical(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}
	lower := strings.ToLower(token)
	for canonical, synonyms := range v {
		if strings.ToLower(canonical) == lower {
			return canonical
		}
		for _, syn := range synonyms {
			if syn == lower {
				return canonical
			}
		}
	}
	return token
}
