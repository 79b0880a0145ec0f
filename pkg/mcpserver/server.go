package mcpserver

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/beeper/stackoverflow-mcp/pkg/tools"
)

// New builds the MCP server and registers every tool from the registry.
func New(cfg Config, registry *tools.Registry, logger zerolog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Name,
		Version: Version,
	}, nil)
	server.AddReceivingMiddleware(loggingMiddleware(logger))
	for _, tool := range registry.All() {
		addTool(server, tool)
	}
	return server
}

// addTool registers one tool. The explicit input schema from the definition
// is used as-is; arguments arrive as a plain map.
func addTool(server *mcp.Server, tool *tools.Tool) {
	def := tool.Tool
	execute := tool.Execute
	mcp.AddTool(server, &def, func(ctx context.Context, req *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, any, error) {
		res, err := execute(ctx, args)
		if err != nil {
			return nil, nil, err
		}
		return toCallToolResult(res), nil, nil
	})
}

// toCallToolResult converts the internal result into the wire shape. Tool
// failures become IsError results rather than protocol errors.
func toCallToolResult(res *tools.Result) *mcp.CallToolResult {
	out := &mcp.CallToolResult{IsError: res.IsError()}
	for _, block := range res.Content {
		if block.Type == "text" && block.Text != "" {
			out.Content = append(out.Content, &mcp.TextContent{Text: block.Text})
		}
	}
	if len(out.Content) == 0 {
		text := res.Text()
		if text == "" {
			text = "{}"
		}
		out.Content = append(out.Content, &mcp.TextContent{Text: text})
	}
	return out
}

// loggingMiddleware tags each request with an id and logs method timing.
// The tagged logger rides the context into tool execution.
func loggingMiddleware(logger zerolog.Logger) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			log := logger.With().
				Str("request_id", uuid.NewString()).
				Str("method", method).
				Logger()
			ctx = log.WithContext(ctx)
			start := time.Now()
			result, err := next(ctx, method, req)
			evt := log.Debug()
			if err != nil {
				evt = log.Warn().Err(err)
			}
			evt.Dur("duration", time.Since(start)).Msg("Handled MCP request")
			return result, err
		}
	}
}
