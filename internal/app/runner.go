// Package app wires configuration, the corpus store, the embedding provider
// and the search stack into runnable commands.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/launchkit/launchkit-mcp/internal/config"
	"github.com/launchkit/launchkit-mcp/internal/corpus"
	"github.com/launchkit/launchkit-mcp/internal/embedder"
	"github.com/launchkit/launchkit-mcp/internal/index"
	"github.com/launchkit/launchkit-mcp/internal/mcp"
	"github.com/launchkit/launchkit-mcp/internal/searcher"
)

// RunServe starts the MCP server on stdio and blocks until the context is
// cancelled or the transport closes.
func RunServe(ctx context.Context, flags *pflag.FlagSet, version string) error {
	settings, logger, err := setup(flags)
	if err != nil {
		return err
	}
	logger.Info("Starting launchkit MCP server", "version", version)
	config.Log(settings, logger)

	store := corpus.NewStore(settings.TemplatesDir, logger)

	emb, err := buildEmbedder(settings)
	if err != nil {
		return fmt.Errorf("configure embedding provider: %w", err)
	}
	if emb == nil {
		logger.Info("no embedding provider configured, using lexical ranking")
	} else {
		defer func() { _ = emb.Close() }()
		logger.Info("embedding provider configured", "provider", emb.Provider(), "model", emb.Model())
	}

	idx := index.New(store, emb, logger)
	srch := searcher.New(store, idx, logger)
	server := mcp.NewServer(store, srch, logger)

	logger.Info("MCP server ready, listening on stdio")
	return server.Serve(ctx)
}

// RunReindex regenerates the embedding cache file for the whole corpus.
// It requires a configured embedding provider.
func RunReindex(ctx context.Context, flags *pflag.FlagSet) error {
	settings, logger, err := setup(flags)
	if err != nil {
		return err
	}

	emb, err := buildEmbedder(settings)
	if err != nil {
		return fmt.Errorf("configure embedding provider: %w", err)
	}
	if emb == nil {
		return errors.New("reindex requires an embedding provider (set " + embedder.EnvOpenAIAPIKey + " or " + embedder.EnvJinaAPIKey + ")")
	}
	defer func() { _ = emb.Close() }()

	store := corpus.NewStore(settings.TemplatesDir, logger)
	cache, err := index.Rebuild(ctx, store, emb, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Generated %d embeddings with %s\n", len(cache.Embeddings), cache.Model)
	return nil
}

// RunValidate checks every template in the corpus and prints findings.
// Error-level findings fail the run; warnings only do so with strict set.
func RunValidate(flags *pflag.FlagSet, strict bool) error {
	settings, logger, err := setup(flags)
	if err != nil {
		return err
	}

	store := corpus.NewStore(settings.TemplatesDir, logger)
	issues, err := store.Validate()
	if err != nil {
		return err
	}

	failures := 0
	for _, issue := range issues {
		fmt.Println(issue)
		if issue.Level == corpus.LevelError || strict {
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("validation failed with %d blocking issue(s)", failures)
	}
	fmt.Printf("Corpus OK (%d warning(s))\n", len(issues))
	return nil
}

// setup loads settings, validates them and installs logging
func setup(flags *pflag.FlagSet) (*config.Settings, *slog.Logger, error) {
	settings, err := config.LoadSettingsWithFlags(flags)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if err := config.ValidateSettings(settings); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logger, err := config.SetupLogging(settings.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return settings, logger, nil
}

// buildEmbedder selects the provider by configuration precedence. An
// explicitly configured provider must come up or startup fails; with nothing
// configured the server runs without vectors.
func buildEmbedder(settings *config.Settings) (embedder.Embedder, error) {
	if p := settings.Embedding.Provider; p != "" {
		return embedder.New(embedder.Config{
			Provider:  p,
			APIKey:    apiKeyFor(p),
			CacheSize: settings.Embedding.CacheSize,
		})
	}

	emb, err := embedder.NewFromEnv()
	if errors.Is(err, embedder.ErrNoProviderEnabled) {
		return nil, nil
	}
	return emb, err
}

func apiKeyFor(provider string) string {
	switch provider {
	case embedder.ProviderOpenAI:
		return os.Getenv(embedder.EnvOpenAIAPIKey)
	case embedder.ProviderJina:
		return os.Getenv(embedder.EnvJinaAPIKey)
	}
	return ""
}
