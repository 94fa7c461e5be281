package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("roadmap.json", "generate-roadmap")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "{{.TargetRole}}")
	assert.Contains(t, prompt, "{{.MissingSkills}}")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("roadmap.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestMustGet_ValidPrompt(t *testing.T) {
	ClearCache()

	assert.NotPanics(t, func() {
		prompt := MustGet("advice.json", "career-advice")
		assert.NotEmpty(t, prompt)
	})
}

func TestFormat(t *testing.T) {
	template := "Roadmap for {{.TargetRole}} over {{.Weeks}} weeks"
	data := map[string]string{
		"TargetRole": "Data Scientist",
		"Weeks":      "12",
	}

	result := Format(template, data)
	assert.Equal(t, "Roadmap for Data Scientist over 12 weeks", result)
}

func TestFormat_EmptyData(t *testing.T) {
	template := "Hello {{.Name}}"

	result := Format(template, map[string]string{})
	assert.Equal(t, template, result) // Placeholder remains
}

func TestList(t *testing.T) {
	ClearCache()

	keys, err := List("advice.json")
	require.NoError(t, err)
	assert.Contains(t, keys, "career-advice")
	assert.Contains(t, keys, "interview-questions")
}

func TestCaching(t *testing.T) {
	ClearCache()

	prompt1, err := Get("roadmap.json", "generate-roadmap-json")
	require.NoError(t, err)

	prompt2, err := Get("roadmap.json", "generate-roadmap-json")
	require.NoError(t, err)

	assert.Equal(t, prompt1, prompt2)
}
