// An MCP server that gives AI agents access to the logs stored in a
// Graylog deployment.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/peterbourgon/ff/v3"

	"github.com/usestring/graylog-mcp/internal/cache"
	"github.com/usestring/graylog-mcp/internal/config"
	"github.com/usestring/graylog-mcp/internal/logging"
	"github.com/usestring/graylog-mcp/internal/mcp"
	"github.com/usestring/graylog-mcp/internal/mcp/tools"
	"github.com/usestring/graylog-mcp/internal/query"
	"github.com/usestring/graylog-mcp/pkg/graylog"
)

// Version is overridden by the release build.
var Version = "dev"

func main() {
	cfg, err := setupConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	cleanup, err := logging.Setup(logging.Config{
		Level:      cfg.LogLevel,
		FilePath:   cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		log.Fatalf("logging setup: %v", err)
	}
	defer cleanup()

	client, err := graylog.New(cfg.BaseURL, cfg.Username, cfg.Password,
		graylog.WithHTTPClient(&http.Client{Timeout: cfg.HTTPClientTimeout}))
	if err != nil {
		slog.Error("failed to create Graylog client", "error", err)
		os.Exit(1)
	}

	deps := &tools.Deps{
		Client:   client,
		Config:   cfg,
		Metadata: cache.New(cfg.MetadataCacheSize, cfg.MetadataCacheTTL),
		Query:    query.NewEngine(),
	}

	server, err := mcp.NewServer(deps, mcp.WithVersion(Version))
	if err != nil {
		slog.Error("failed to create MCP server", "error", err)
		os.Exit(1)
	}

	// Set up context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Run the server with stdio transport
	slog.Info("starting Graylog MCP server on stdio", "base_url", cfg.BaseURL, "version", Version)
	if err := server.Run(ctx); err != nil && err != context.Canceled {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// setupConfig merges flags, GRAYLOG_* environment variables and an optional
// plain config file. Flags win over the environment; tuning knobs without a
// flag (timeouts, limits, cache sizing) come from the environment alone.
func setupConfig() (*config.Config, error) {
	cfg := config.Load()

	fs := flag.NewFlagSet("graylog-mcp", flag.ExitOnError)
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "Graylog server URL, e.g. https://graylog.example.org/")
	fs.StringVar(&cfg.Username, "username", cfg.Username, "Graylog API username")
	fs.StringVar(&cfg.Password, "password", cfg.Password, "Graylog API password")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file path (default: stderr)")

	var configFile string
	fs.StringVar(&configFile, "config", "", "config file path")

	err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("GRAYLOG"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := cfg.Resolve(); err != nil {
		return nil, err
	}
	return cfg, nil
}
