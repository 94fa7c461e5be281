// Package llm wraps the external text-generation service behind a small
// client interface with tiered model selection.
package llm

// ModelTier selects how much model capability a call pays for. Callers name
// the tier, not the model, so swapping model versions is a one-line change
// here.
type ModelTier string

const (
	// TierLite handles cheap structured work: posting field extraction,
	// classification.
	TierLite ModelTier = "lite"
	// TierStandard handles conversational work: career advice, interview
	// questions.
	TierStandard ModelTier = "standard"
	// TierAdvanced handles multi-step planning: week-by-week roadmaps.
	TierAdvanced ModelTier = "advanced"
)

// Provider identifies the backing text-generation service.
type Provider string

// ProviderGemini is the only provider currently wired.
const ProviderGemini Provider = "gemini"

// Config maps tiers to concrete model names for one provider.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the stock Gemini tier mapping.
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig maps the three tiers onto the current Gemini lineup.
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel resolves a tier to its model name. Unknown tiers degrade through
// standard then lite; "" means nothing is configured at all.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config with one tier remapped. The
// receiver is not modified.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	next := &Config{
		Provider: c.Provider,
		Models:   make(map[ModelTier]string, len(c.Models)+1),
	}
	for k, v := range c.Models {
		next.Models[k] = v
	}
	next.Models[tier] = model
	return next
}
