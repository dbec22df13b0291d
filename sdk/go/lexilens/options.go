package lexilens

import "github.com/lexilens/lexilens/internal/gemini"

// Option configures a Client at creation time.
type Option func(*clientConfig)

type clientConfig struct {
	rulesPath    string
	geminiConfig *gemini.Config
	preferRemote bool
}

// WithRules sets the path to a ruleset YAML file. An empty or missing path
// uses the built-in rule table.
func WithRules(path string) Option {
	return func(c *clientConfig) { c.rulesPath = path }
}

// WithGemini enables the remote generative-language engine. When enabled,
// Analyze tries the remote engine first and falls back to the rule table
// on failure.
func WithGemini(apiKey string, opts ...GeminiOption) Option {
	return func(c *clientConfig) {
		cfg := gemini.Config{APIKey: apiKey}
		for _, o := range opts {
			o(&cfg)
		}
		c.geminiConfig = &cfg
		c.preferRemote = true
	}
}

// GeminiOption tweaks the remote engine configuration.
type GeminiOption func(*gemini.Config)

// GeminiModel overrides the default model name.
func GeminiModel(model string) GeminiOption {
	return func(c *gemini.Config) { c.Model = model }
}

// GeminiURL overrides the API base URL. Mainly for testing.
func GeminiURL(url string) GeminiOption {
	return func(c *gemini.Config) { c.APIURL = url }
}
