package cli

import (
	"os"

	"github.com/lexilens/lexilens/internal/gemini"
)

// geminiKeyEnv is where the API key is read from when the flag is unset.
const geminiKeyEnv = "LEXILENS_GEMINI_KEY"

var (
	geminiURL   string
	geminiKey   string
	geminiModel string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&geminiURL, "gemini-url", "", "Generative-language API base URL (default: Google endpoint)")
	rootCmd.PersistentFlags().StringVar(&geminiKey, "gemini-key", "", "API key (default: $"+geminiKeyEnv+")")
	rootCmd.PersistentFlags().StringVar(&geminiModel, "gemini-model", "", "Model name (default: "+gemini.DefaultModel+")")
}

// geminiConfigFromFlags assembles the remote analyzer config from flags and
// environment.
func geminiConfigFromFlags() gemini.Config {
	key := geminiKey
	if key == "" {
		key = os.Getenv(geminiKeyEnv)
	}
	return gemini.Config{
		APIURL: geminiURL,
		APIKey: key,
		Model:  geminiModel,
	}
}

// geminiConfigured reports whether a key is available, i.e. whether the
// remote engine should be offered at all.
func geminiConfigured() bool {
	return geminiKey != "" || os.Getenv(geminiKeyEnv) != ""
}
