// Package llm provides centralized LLM configuration and client abstractions
// for narrative generation.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierMini is for the small mini-report payload (headline + teaser bullets)
	TierMini ModelTier = "mini"
	// TierFull is for the full report payload (all narrative sections)
	TierFull ModelTier = "full"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
)

// Config holds the model configuration for the application
type Config struct {
	Provider  Provider
	Models    map[ModelTier]string
	MaxTokens map[ModelTier]int32
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierMini: "gemini-2.5-flash-lite",
			TierFull: "gemini-2.5-flash",
		},
		MaxTokens: map[ModelTier]int32{
			TierMini: 900,
			TierFull: 1200,
		},
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback: any tier is better than none
	if model, ok := c.Models[TierFull]; ok {
		return model
	}
	if model, ok := c.Models[TierMini]; ok {
		return model
	}
	return ""
}

// GetMaxTokens returns the output token budget for a tier, 0 meaning unlimited.
func (c *Config) GetMaxTokens(tier ModelTier) int32 {
	return c.MaxTokens[tier]
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider:  c.Provider,
		Models:    make(map[ModelTier]string),
		MaxTokens: make(map[ModelTier]int32),
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	for k, v := range c.MaxTokens {
		newConfig.MaxTokens[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}
