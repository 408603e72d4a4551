package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/launchkit/launchkit-mcp/internal/app"
)

var (
	// Version is injected at build time
	Version = "dev"
	// ProgramName is injected at build time
	ProgramName = "launchkit"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Execute(ctx, Version, ProgramName, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// Execute is the entry point for the CLI, extracted for testing
func Execute(ctx context.Context, version, programName string, args []string) error {
	rootCmd := &cobra.Command{
		Use:     programName,
		Short:   "Launchkit MCP template server",
		Long:    "Serves pre-authored starter templates to AI coding assistants over the Model Context Protocol",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunServe(cmd.Context(), cmd.Flags(), version)
		},
	}
	rootCmd.SetVersionTemplate(`{{.Version}}
`)
	app.RegisterFlags(rootCmd.PersistentFlags())

	reindexCmd := &cobra.Command{
		Use:   "reindex",
		Short: "Regenerate the embedding cache for the template corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunReindex(cmd.Context(), cmd.Flags())
		},
	}

	var strict bool
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check every template in the corpus and report problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunValidate(cmd.Flags(), strict)
		},
	}
	validateCmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as failures")

	rootCmd.AddCommand(reindexCmd, validateCmd)
	rootCmd.SetArgs(args)

	return rootCmd.ExecuteContext(ctx)
}
