package app

import "github.com/spf13/pflag"

// RegisterFlags registers all CLI flags on the given FlagSet
func RegisterFlags(flags *pflag.FlagSet) {
	flags.StringP("templates-dir", "d", "", "Root directory of the template corpus")
	flags.StringP("log-level", "l", "", "Log verbosity: debug, info, warn or error")
	flags.StringP("embedding-provider", "e", "", "Embedding provider: openai or jina (default: auto-detect from API keys)")
	flags.Int("embedding-cache-size", 0, "In-memory embedding cache size")
}
