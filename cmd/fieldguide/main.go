package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/fieldguide-mcp/internal/corpus"
	"github.com/dshills/fieldguide-mcp/internal/mcp"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fieldguide",
		Short: "MCP server for the agent field guide pattern corpus",
		Long: "fieldguide serves a curated corpus of agent operation patterns and\n" +
			"documented mistakes over the Model Context Protocol (stdio).",
		// Bare invocation serves, matching how MCP clients launch the binary
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd(), validateCmd(), versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the field guide over MCP on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	// stdout carries the MCP protocol; all logging goes to stderr
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("fieldguide MCP server starting",
		zap.String("version", version),
		zap.String("build_time", buildTime),
	)

	server, err := mcp.NewServer(logger)
	if err != nil {
		logger.Error("failed to create MCP server", zap.Error(err))
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("MCP server ready, listening on stdio")
		errChan <- server.Serve(ctx)
	}()

	select {
	case sig := <-sigChan:
		logger.Info("received signal, shutting down", zap.Stringer("signal", sig))
		cancel()
	case err := <-errChan:
		if err != nil {
			logger.Error("server error", zap.Error(err))
			return err
		}
	}

	logger.Info("server stopped")
	return nil
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the bundled dataset and check its integrity",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := corpus.Load()
			if err != nil {
				return fmt.Errorf("dataset validation failed: %w", err)
			}

			mistakes := 0
			for _, p := range store.All() {
				if p.Mistake {
					mistakes++
				}
			}

			fmt.Printf("dataset v%s: %d patterns (%d mistakes) across %d categories\n",
				store.Version(), store.Len(), mistakes, len(store.CategoryCounts()))
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Field Guide MCP Server\n")
			fmt.Printf("Version: %s\n", version)
			fmt.Printf("Build Time: %s\n", buildTime)
			fmt.Printf("Server: %s %s\n", mcp.ServerName, mcp.ServerVersion)
		},
	}
}

// newLogger builds a production zap logger writing only to stderr.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if os.Getenv("FIELDGUIDE_LOG_LEVEL") == "debug" {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
