package mcpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"go.mau.fi/util/exhttp"
)

const shutdownTimeout = 5 * time.Second

// Run starts the transport selected by cfg and blocks until ctx is canceled.
func Run(ctx context.Context, server *mcp.Server, cfg Config, logger zerolog.Logger) error {
	switch cfg.Transport {
	case TransportHTTP:
		return RunHTTP(ctx, server, cfg, logger)
	default:
		logger.Info().Msg("Serving MCP over stdio")
		return RunStdio(ctx, server)
	}
}

// RunStdio serves MCP over stdin/stdout until ctx is canceled.
func RunStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves MCP over streamable HTTP on /mcp with a health endpoint,
// shutting down gracefully once ctx is canceled.
func RunHTTP(ctx context.Context, server *mcp.Server, cfg Config, logger zerolog.Logger) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", handler)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		exhttp.WriteJSONResponse(w, http.StatusOK, map[string]any{
			"status":  "ok",
			"server":  cfg.Name,
			"version": Version,
		})
	})

	httpServer := &http.Server{
		Addr:    cfg.Listen,
		Handler: mux,
	}

	done := make(chan struct{})
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
		close(done)
	}()

	logger.Info().Str("listen", cfg.Listen).Msg("Serving MCP over HTTP")
	err := httpServer.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-done
	return nil
}
