package ingestion

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/careersight/careersight/internal/llm"
	"github.com/careersight/careersight/internal/prompts"
)

// ExtractedPosting is the structured output of model-assisted extraction
// from a posting page's text.
type ExtractedPosting struct {
	Title      string   `json:"title"`
	Company    string   `json:"company,omitempty"`
	Location   string   `json:"location,omitempty"`
	Category   string   `json:"category,omitempty"`
	Salary     string   `json:"salary,omitempty"`
	Experience string   `json:"experience,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Summary    string   `json:"summary,omitempty"`
}

// maxExtractionChars bounds the page text sent to the model.
const maxExtractionChars = 12000

// ExtractWithModel asks the model to pull structured posting fields out of
// cleaned page text.
func ExtractWithModel(ctx context.Context, client llm.Client, text string) (*ExtractedPosting, error) {
	if client == nil {
		return nil, fmt.Errorf("model client required for extraction")
	}

	if len(text) > maxExtractionChars {
		text = text[:maxExtractionChars]
	}

	template, err := prompts.Get("ingest.json", "extract-posting")
	if err != nil {
		return nil, fmt.Errorf("failed to load extraction prompt: %w", err)
	}
	prompt := prompts.Format(template, map[string]string{"Text": text})

	jsonResp, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	jsonResp = llm.CleanJSONBlock(jsonResp)

	var extracted ExtractedPosting
	if err := json.Unmarshal([]byte(jsonResp), &extracted); err != nil {
		return nil, fmt.Errorf("failed to parse extraction response: %w", err)
	}

	return &extracted, nil
}
