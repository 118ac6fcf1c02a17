// Package llm provides the model-tier configuration and client
// abstraction for generative calls. The advisor works fully without a
// provider; this package exists for the optional restyle and
// suggestion passes.
package llm

// ModelTier selects capability versus cost for a call.
type ModelTier string

const (
	// TierLite covers cheap structured tasks: follow-up suggestions,
	// short classification.
	TierLite ModelTier = "lite"
	// TierStandard covers the conversational restyle pass.
	TierStandard ModelTier = "standard"
)

// Config maps tiers to provider model names.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini tier mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// Model resolves the model name for a tier, falling back to the
// standard tier when the requested one is not configured.
func (c *Config) Model(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config with one tier overridden.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	out := &Config{Models: make(map[ModelTier]string, len(c.Models))}
	for k, v := range c.Models {
		out.Models[k] = v
	}
	out.Models[tier] = model
	return out
}
