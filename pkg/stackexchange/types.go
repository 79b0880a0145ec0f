package stackexchange

import "go.mau.fi/util/jsontime"

// SearchRequest describes a question search before normalization. Zero Limit
// means DefaultPageSize; out-of-range values are clamped, never rejected.
type SearchRequest struct {
	Query        string   // full-text query, required for Search
	Tags         []string // tag filter, AND semantics, required for SearchByTags
	Sort         string   // relevance, activity, votes or creation
	Limit        int      // page size, clamped to [MinPageSize, MaxPageSize]
	AcceptedOnly bool     // only questions with an accepted answer
	MinScore     int      // SearchByTags only: drop results scoring below this
}

// DetailRequest selects a single question by id.
type DetailRequest struct {
	QuestionID     int64
	IncludeAnswers bool
}

// QuestionSummary is one search hit in normalized form. Bodies are reduced to
// a plain-text preview; timestamps stay in the API's epoch-second encoding.
type QuestionSummary struct {
	QuestionID        int64         `json:"question_id"`
	Title             string        `json:"title"`
	Score             int           `json:"score"`
	ViewCount         int           `json:"view_count"`
	AnswerCount       int           `json:"answer_count"`
	IsAnswered        bool          `json:"is_answered"`
	HasAcceptedAnswer bool          `json:"has_accepted_answer"`
	Tags              []string      `json:"tags"`
	CreationDate      jsontime.Unix `json:"creation_date"`
	LastActivityDate  jsontime.Unix `json:"last_activity_date"`
	Link              string        `json:"link"`
	BodyPreview       string        `json:"body_preview,omitempty"`
}

// Answer is a normalized answer with its body reduced to plain text.
type Answer struct {
	AnswerID         int64         `json:"answer_id"`
	Score            int           `json:"score"`
	IsAccepted       bool          `json:"is_accepted"`
	Author           string        `json:"author,omitempty"`
	CreationDate     jsontime.Unix `json:"creation_date"`
	LastActivityDate jsontime.Unix `json:"last_activity_date"`
	Body             string        `json:"body"`
}

// QuestionDetail is the full view of one question: the summary fields plus the
// complete body and, when answers were fetched, the answer list with the
// accepted and top answers picked out. TopAnswer is only set when its score is
// positive.
type QuestionDetail struct {
	QuestionSummary
	Body           string   `json:"body,omitempty"`
	Answers        []Answer `json:"answers,omitempty"`
	AcceptedAnswer *Answer  `json:"accepted_answer,omitempty"`
	TopAnswer      *Answer  `json:"top_answer,omitempty"`
}
