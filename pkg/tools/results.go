package tools

import (
	"encoding/json"
	"fmt"

	"github.com/beeper/stackoverflow-mcp/pkg/stackexchange"
)

// JSONResult wraps a payload as a successful result. The payload is rendered
// as indented JSON for the text block and mirrored into Details.
func JSONResult(payload any) *Result {
	return &Result{
		Status: ResultSuccess,
		Content: []ContentBlock{{
			Type: "text",
			Text: mustJSON(payload),
		}},
		Details: toMap(payload),
	}
}

// TextResult wraps plain text as a successful result.
func TextResult(text string) *Result {
	return &Result{
		Status:  ResultSuccess,
		Content: []ContentBlock{{Type: "text", Text: text}},
	}
}

// ErrorResult builds a failed result for the named tool.
func ErrorResult(toolName, message string) *Result {
	return &Result{
		Status: ResultError,
		Error:  message,
		Details: map[string]any{
			"tool":  toolName,
			"error": message,
		},
	}
}

// ErrorResultf builds a failed result with a formatted message.
func ErrorResultf(toolName, format string, args ...any) *Result {
	return ErrorResult(toolName, fmt.Sprintf(format, args...))
}

// ServiceErrorResult folds a Stack Exchange client failure into an error
// result, naming the error kind so hosts can tell caller fault from
// upstream fault.
func ServiceErrorResult(toolName string, err error) *Result {
	res := ErrorResult(toolName, err.Error())
	res.Details["kind"] = errorKind(err)
	return res
}

func errorKind(err error) string {
	switch {
	case stackexchange.IsInvalidArgument(err):
		return "invalid_argument"
	case stackexchange.IsRemoteError(err):
		return "remote_error"
	}
	return "internal_error"
}

func mustJSON(payload any) string {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", payload)
	}
	return string(data)
}

func toMap(payload any) map[string]any {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	var out map[string]any
	if err = json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}
