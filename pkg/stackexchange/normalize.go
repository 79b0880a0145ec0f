package stackexchange

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.mau.fi/util/jsontime"

	"github.com/beeper/stackoverflow-mcp/pkg/shared/stringutil"
)

// previewChars caps the plain-text excerpt attached to search summaries.
const previewChars = 300

// apiQuestion is a question item as the API encodes it. Absent fields decode
// to zero values and never fail.
type apiQuestion struct {
	QuestionID       int64         `json:"question_id"`
	Title            string        `json:"title"`
	Score            int           `json:"score"`
	ViewCount        int           `json:"view_count"`
	AnswerCount      int           `json:"answer_count"`
	IsAnswered       bool          `json:"is_answered"`
	AcceptedAnswerID int64         `json:"accepted_answer_id"`
	Tags             []string      `json:"tags"`
	CreationDate     jsontime.Unix `json:"creation_date"`
	LastActivityDate jsontime.Unix `json:"last_activity_date"`
	Link             string        `json:"link"`
	Body             string        `json:"body"`
}

// apiAnswer is an answer item as the API encodes it.
type apiAnswer struct {
	AnswerID         int64         `json:"answer_id"`
	Score            int           `json:"score"`
	IsAccepted       bool          `json:"is_accepted"`
	CreationDate     jsontime.Unix `json:"creation_date"`
	LastActivityDate jsontime.Unix `json:"last_activity_date"`
	Body             string        `json:"body"`
	Owner            apiOwner      `json:"owner"`
}

type apiOwner struct {
	DisplayName string `json:"display_name"`
}

// CleanHTML reduces an HTML fragment to readable plain text: tags stripped,
// entities resolved, whitespace runs collapsed to single spaces.
func CleanHTML(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return stringutil.CollapseWhitespace(html.UnescapeString(fragment))
	}
	return stringutil.CollapseWhitespace(doc.Text())
}

// Preview reduces an HTML body to a short plain-text excerpt.
func Preview(body string) string {
	return stringutil.Truncate(CleanHTML(body), previewChars)
}

// FilterByScore drops summaries scoring below minScore, preserving order.
// A floor of zero or less keeps everything, negative scores included.
func FilterByScore(items []QuestionSummary, minScore int) []QuestionSummary {
	if minScore <= 0 {
		return items
	}
	out := make([]QuestionSummary, 0, len(items))
	for _, item := range items {
		if item.Score >= minScore {
			out = append(out, item)
		}
	}
	return out
}

func normalizeQuestion(item apiQuestion) QuestionSummary {
	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}
	return QuestionSummary{
		QuestionID:        item.QuestionID,
		Title:             html.UnescapeString(item.Title),
		Score:             item.Score,
		ViewCount:         item.ViewCount,
		AnswerCount:       item.AnswerCount,
		IsAnswered:        item.IsAnswered,
		HasAcceptedAnswer: item.AcceptedAnswerID > 0,
		Tags:              tags,
		CreationDate:      item.CreationDate,
		LastActivityDate:  item.LastActivityDate,
		Link:              item.Link,
		BodyPreview:       Preview(item.Body),
	}
}

func normalizeQuestions(items []apiQuestion) []QuestionSummary {
	out := make([]QuestionSummary, 0, len(items))
	for _, item := range items {
		out = append(out, normalizeQuestion(item))
	}
	return out
}

func normalizeDetail(item apiQuestion) *QuestionDetail {
	detail := &QuestionDetail{QuestionSummary: normalizeQuestion(item)}
	detail.Body = CleanHTML(item.Body)
	// The full body replaces the excerpt on the detail view.
	detail.BodyPreview = ""
	return detail
}

func normalizeAnswer(item apiAnswer) Answer {
	author := strings.TrimSpace(item.Owner.DisplayName)
	if author == "" {
		author = "Anonymous"
	}
	return Answer{
		AnswerID:         item.AnswerID,
		Score:            item.Score,
		IsAccepted:       item.IsAccepted,
		Author:           html.UnescapeString(author),
		CreationDate:     item.CreationDate,
		LastActivityDate: item.LastActivityDate,
		Body:             CleanHTML(item.Body),
	}
}

// attachAnswers fills the answer list on a detail view and picks out the
// accepted answer and the highest-voted one. The API returns answers sorted
// by votes; that order is kept as-is. TopAnswer stays nil unless the best
// score is positive.
func attachAnswers(detail *QuestionDetail, items []apiAnswer) {
	answers := make([]Answer, 0, len(items))
	for _, item := range items {
		answers = append(answers, normalizeAnswer(item))
	}
	detail.Answers = answers
	for i := range detail.Answers {
		if detail.Answers[i].IsAccepted {
			detail.AcceptedAnswer = &detail.Answers[i]
			break
		}
	}
	if len(detail.Answers) == 0 {
		return
	}
	top := &detail.Answers[0]
	for i := range detail.Answers {
		if detail.Answers[i].Score > top.Score {
			top = &detail.Answers[i]
		}
	}
	if top.Score > 0 {
		detail.TopAnswer = top
	}
}
