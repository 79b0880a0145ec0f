package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/beeper/stackoverflow-mcp/pkg/shared/toolspec"
	"github.com/beeper/stackoverflow-mcp/pkg/stackexchange"
)

// searchPayload is the JSON document returned by both search tools. Message
// and Suggestion are only set when nothing matched.
type searchPayload struct {
	Query      string                          `json:"query,omitempty"`
	Tags       []string                        `json:"tags,omitempty"`
	Total      int                             `json:"total"`
	Results    []stackexchange.QuestionSummary `json:"results"`
	Message    string                          `json:"message,omitempty"`
	Suggestion string                          `json:"suggestion,omitempty"`
}

// NewSearchTool builds the free-text search tool on top of svc.
func NewSearchTool(svc Service) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        toolspec.SearchName,
			Description: toolspec.SearchDescription,
			Annotations: &mcp.ToolAnnotations{Title: "Search Stack Overflow"},
			InputSchema: toolspec.SearchSchema(),
		},
		Group:   GroupStackOverflow,
		Execute: executeSearch(svc),
	}
}

func executeSearch(svc Service) func(ctx context.Context, args map[string]any) (*Result, error) {
	return func(ctx context.Context, args map[string]any) (*Result, error) {
		query, err := ReadString(args, "query", true)
		if err != nil {
			return ErrorResult(toolspec.SearchName, err.Error()), nil
		}
		tags, err := ReadStringSlice(args, "tags", false)
		if err != nil {
			return ErrorResult(toolspec.SearchName, err.Error()), nil
		}
		req := stackexchange.SearchRequest{
			Query:        query,
			Tags:         tags,
			Limit:        ReadIntDefault(args, "limit", stackexchange.DefaultPageSize),
			Sort:         ReadStringDefault(args, "sort", stackexchange.SortRelevance),
			AcceptedOnly: ReadBool(args, "accepted_only", false),
		}
		results, err := svc.Search(ctx, req)
		if err != nil {
			return ServiceErrorResult(toolspec.SearchName, err), nil
		}
		if results == nil {
			results = []stackexchange.QuestionSummary{}
		}
		payload := searchPayload{
			Query:   query,
			Total:   len(results),
			Results: results,
		}
		if len(results) == 0 {
			payload.Message = fmt.Sprintf("No results found for query: %q", query)
			payload.Suggestion = "Try using different keywords, removing tag filters, or using broader search terms"
		}
		return JSONResult(payload), nil
	}
}
