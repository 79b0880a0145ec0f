package toolspec

// Tool names, descriptions, and input schemas for the Stack Overflow tools.

const (
	SearchName        = "search_stackoverflow"
	SearchDescription = "Search Stack Overflow for questions related to your query. Returns question summaries with scores, tags, links, and a short body preview."

	QuestionName        = "get_question_details"
	QuestionDescription = "Get detailed information about a specific Stack Overflow question, including the full body and optionally its answers sorted by votes."

	TagSearchName        = "search_by_tags"
	TagSearchDescription = "Find Stack Overflow questions for specific programming tags, optionally filtered by a minimum score."
)

// SearchSchema returns the JSON schema for the search_stackoverflow tool.
func SearchSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "The search query, e.g. 'python list comprehension' or 'react hooks error'",
			},
			"limit": map[string]any{
				"type":        "integer",
				"description": "Maximum number of results to return",
				"minimum":     1,
				"maximum":     100,
				"default":     10,
			},
			"sort": map[string]any{
				"type":        "string",
				"description": "Sort order for results",
				"enum":        []string{"relevance", "activity", "votes", "creation"},
				"default":     "relevance",
			},
			"tags": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Optional tags to filter by, e.g. [\"python\", \"pandas\"]",
			},
			"accepted_only": map[string]any{
				"type":        "boolean",
				"description": "Only return questions that have an accepted answer",
				"default":     false,
			},
		},
		"required": []string{"query"},
	}
}

// QuestionSchema returns the JSON schema for the get_question_details tool.
func QuestionSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_id": map[string]any{
				"type":        "integer",
				"description": "The Stack Overflow question ID, from search results or the question URL",
			},
			"include_answers": map[string]any{
				"type":        "boolean",
				"description": "Whether to fetch the question's answers as well",
				"default":     true,
			},
		},
		"required": []string{"question_id"},
	}
}

// TagSearchSchema returns the JSON schema for the search_by_tags tool.
func TagSearchSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tags": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Tags to search for, e.g. [\"python\", \"pandas\"] or [\"javascript\", \"react\"]",
			},
			"limit": map[string]any{
				"type":        "integer",
				"description": "Maximum number of results to return",
				"minimum":     1,
				"maximum":     100,
				"default":     10,
			},
			"sort": map[string]any{
				"type":        "string",
				"description": "Sort order for results",
				"enum":        []string{"votes", "activity", "creation", "relevance"},
				"default":     "votes",
			},
			"min_score": map[string]any{
				"type":        "integer",
				"description": "Drop questions scoring below this threshold",
				"default":     0,
			},
		},
		"required": []string{"tags"},
	}
}
