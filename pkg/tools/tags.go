package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/beeper/stackoverflow-mcp/pkg/shared/toolspec"
	"github.com/beeper/stackoverflow-mcp/pkg/stackexchange"
)

// NewTagSearchTool builds the tag search tool on top of svc.
func NewTagSearchTool(svc Service) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        toolspec.TagSearchName,
			Description: toolspec.TagSearchDescription,
			Annotations: &mcp.ToolAnnotations{Title: "Search by Tags"},
			InputSchema: toolspec.TagSearchSchema(),
		},
		Group:   GroupStackOverflow,
		Execute: executeTagSearch(svc),
	}
}

func executeTagSearch(svc Service) func(ctx context.Context, args map[string]any) (*Result, error) {
	return func(ctx context.Context, args map[string]any) (*Result, error) {
		tags, err := ReadStringSlice(args, "tags", true)
		if err != nil {
			return ErrorResult(toolspec.TagSearchName, err.Error()), nil
		}
		req := stackexchange.SearchRequest{
			Tags:     tags,
			Limit:    ReadIntDefault(args, "limit", stackexchange.DefaultPageSize),
			Sort:     ReadStringDefault(args, "sort", stackexchange.SortVotes),
			MinScore: ReadIntDefault(args, "min_score", 0),
		}
		results, err := svc.SearchByTags(ctx, req)
		if err != nil {
			return ServiceErrorResult(toolspec.TagSearchName, err), nil
		}
		if results == nil {
			results = []stackexchange.QuestionSummary{}
		}
		slugs := stackexchange.TagSlugs(tags)
		payload := searchPayload{
			Tags:    slugs,
			Total:   len(results),
			Results: results,
		}
		if len(results) == 0 {
			payload.Message = fmt.Sprintf("No results found for tags: %s", strings.Join(slugs, ", "))
			payload.Suggestion = fmt.Sprintf("Try different tags or lower the min_score (currently %d)", req.MinScore)
		}
		return JSONResult(payload), nil
	}
}
