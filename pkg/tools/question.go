package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/beeper/stackoverflow-mcp/pkg/shared/toolspec"
	"github.com/beeper/stackoverflow-mcp/pkg/stackexchange"
)

// NewQuestionTool builds the question detail tool on top of svc.
func NewQuestionTool(svc Service) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        toolspec.QuestionName,
			Description: toolspec.QuestionDescription,
			Annotations: &mcp.ToolAnnotations{Title: "Get Question Details"},
			InputSchema: toolspec.QuestionSchema(),
		},
		Group:   GroupStackOverflow,
		Execute: executeQuestion(svc),
	}
}

func executeQuestion(svc Service) func(ctx context.Context, args map[string]any) (*Result, error) {
	return func(ctx context.Context, args map[string]any) (*Result, error) {
		id, err := ReadInt(args, "question_id", true)
		if err != nil {
			return ErrorResult(toolspec.QuestionName, err.Error()), nil
		}
		req := stackexchange.DetailRequest{
			QuestionID:     int64(id),
			IncludeAnswers: ReadBool(args, "include_answers", true),
		}
		detail, err := svc.Question(ctx, req)
		if err != nil {
			return ServiceErrorResult(toolspec.QuestionName, err), nil
		}
		return JSONResult(detail), nil
	}
}
