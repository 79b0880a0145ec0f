// Package tools implements the Stack Overflow tools exposed over MCP.
package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/beeper/stackoverflow-mcp/pkg/stackexchange"
)

// Service is the slice of the Stack Exchange client the tools need. Keeping
// it an interface makes tool execution testable without a live API.
type Service interface {
	Search(ctx context.Context, req stackexchange.SearchRequest) ([]stackexchange.QuestionSummary, error)
	SearchByTags(ctx context.Context, req stackexchange.SearchRequest) ([]stackexchange.QuestionSummary, error)
	Question(ctx context.Context, req stackexchange.DetailRequest) (*stackexchange.QuestionDetail, error)
}

// Tool wraps an MCP tool definition with its execution logic. The embedded
// mcp.Tool carries the name, description and input schema.
type Tool struct {
	mcp.Tool
	Group   string
	Execute func(ctx context.Context, args map[string]any) (*Result, error)
}

// GroupStackOverflow tags every builtin tool.
const GroupStackOverflow = "stackoverflow"

// Result standardizes tool output. Content carries what the model sees,
// Details the structured form of the same payload.
type Result struct {
	Status  ResultStatus   `json:"status"`
	Content []ContentBlock `json:"content,omitempty"`
	Details map[string]any `json:"details,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// Text returns the first text block, or the error message for failed results.
func (r *Result) Text() string {
	if r.Status == ResultError && r.Error != "" {
		return r.Error
	}
	for _, block := range r.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text
		}
	}
	return ""
}

// IsError reports whether the result is a failure.
func (r *Result) IsError() bool {
	return r.Status == ResultError
}

// ContentBlock is one piece of tool output.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// ResultStatus indicates the outcome of tool execution.
type ResultStatus string

const (
	ResultSuccess ResultStatus = "success"
	ResultError   ResultStatus = "error"
)
