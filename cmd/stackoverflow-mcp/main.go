package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/beeper/stackoverflow-mcp/pkg/mcpserver"
	"github.com/beeper/stackoverflow-mcp/pkg/stackexchange"
	"github.com/beeper/stackoverflow-mcp/pkg/tools"
)

// Information to find out exactly which commit the binary was built from.
// These are filled at build time with the -X linker flag.
var (
	Tag       = "unknown"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var cli struct {
	Config    string           `name:"config" short:"c" type:"path" help:"Path to a YAML or JSON5 config file."`
	Transport string           `name:"transport" help:"Transport to serve MCP over (stdio or http)."`
	Listen    string           `name:"listen" help:"Listen address for the http transport."`
	LogLevel  string           `name:"log-level" help:"Log level (trace, debug, info, warn, error)."`
	LogJSON   bool             `name:"log-json" help:"Log JSON instead of prettified output."`
	Version   kong.VersionFlag `name:"version" help:"Print the version and exit."`
}

func versionString() string {
	version := mcpserver.Version
	if Tag != "unknown" {
		version = Tag
	}
	return fmt.Sprintf("%s %s (commit %s, built %s)", mcpserver.ServerName, version, Commit, BuildTime)
}

func main() {
	// A .env next to the binary is a convenient place for the API key.
	_ = godotenv.Load()

	kong.Parse(&cli,
		kong.Name(mcpserver.ServerName),
		kong.Description("MCP server exposing Stack Overflow search tools."),
		kong.UsageOnError(),
		kong.Vars{"version": versionString()},
	)

	var cfg mcpserver.Config
	if cli.Config != "" {
		loaded, err := mcpserver.LoadConfig(cli.Config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	// Flags override the file; the environment fills whatever is left.
	if cli.Transport != "" {
		cfg.Transport = cli.Transport
	}
	if cli.Listen != "" {
		cfg.Listen = cli.Listen
	}
	if cli.LogLevel != "" {
		cfg.Logging.Level = cli.LogLevel
	}
	if cli.LogJSON {
		cfg.Logging.Format = "json"
	}
	cfg = mcpserver.ApplyEnvDefaults(cfg).WithDefaults()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr: stdout belongs to the stdio transport.
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	var out io.Writer = os.Stderr
	if cfg.Logging.Format != "json" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.StampMilli}
	}
	logger := zerolog.New(out).With().Timestamp().Logger().Level(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := stackexchange.NewClient(cfg.StackExchange)
	registry := tools.NewBuiltinRegistry(client)
	server := mcpserver.New(cfg, registry, logger)

	logger.Info().
		Str("version", versionString()).
		Str("transport", cfg.Transport).
		Msg("Starting stackoverflow-mcp")
	if err := mcpserver.Run(ctx, server, cfg, logger); err != nil {
		logger.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
	logger.Info().Msg("Shutdown complete")
}
