package stackexchange

import (
	"net/url"
	"strconv"
	"strings"
)

// ClampLimit forces a page size into the API's accepted range. Applying it
// twice gives the same result as applying it once.
func ClampLimit(limit int) int {
	if limit < MinPageSize {
		return MinPageSize
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}

// CanonicalSort returns sort when it is one of the four accepted orders,
// otherwise the operation default. Unknown values are never sent upstream.
func CanonicalSort(sort, fallback string) string {
	switch strings.TrimSpace(sort) {
	case SortRelevance, SortActivity, SortVotes, SortCreation:
		return strings.TrimSpace(sort)
	}
	return fallback
}

// TagSlug normalizes a display tag into the API's slug form: lowercased,
// trimmed, with internal whitespace runs collapsed to single hyphens
// ("Machine Learning" -> "machine-learning").
func TagSlug(tag string) string {
	fields := strings.Fields(strings.ToLower(tag))
	return strings.Join(fields, "-")
}

// TagSlugs normalizes every tag and drops the ones that come out empty.
func TagSlugs(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if slug := TagSlug(tag); slug != "" {
			out = append(out, slug)
		}
	}
	return out
}

// BuildSearch produces the query parameters for GET /search. The query string
// is required; everything else has a usable default.
func BuildSearch(req SearchRequest, cfg Config) (url.Values, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, &InvalidArgumentError{Field: "query", Reason: "must not be empty"}
	}
	values := baseValues(cfg)
	values.Set("sort", CanonicalSort(req.Sort, SortRelevance))
	values.Set("q", query)
	values.Set("pagesize", strconv.Itoa(pageSize(req.Limit)))
	if tags := TagSlugs(req.Tags); len(tags) > 0 {
		values.Set("tagged", strings.Join(tags, ";"))
	}
	if req.AcceptedOnly {
		values.Set("accepted", "True")
	}
	return values, nil
}

// BuildTagSearch produces the query parameters for a tag-only GET /search.
// At least one usable tag is required; MinScore is applied after the
// response is normalized, never sent upstream.
func BuildTagSearch(req SearchRequest, cfg Config) (url.Values, error) {
	tags := TagSlugs(req.Tags)
	if len(tags) == 0 {
		return nil, &InvalidArgumentError{Field: "tags", Reason: "at least one tag is required"}
	}
	values := baseValues(cfg)
	values.Set("sort", CanonicalSort(req.Sort, SortVotes))
	values.Set("tagged", strings.Join(tags, ";"))
	values.Set("pagesize", strconv.Itoa(pageSize(req.Limit)))
	return values, nil
}

// BuildDetail produces the query parameters shared by the question fetch and
// the answer fetch for GET /questions/{id} and /questions/{id}/answers.
// The id must be positive; there is no silent correction.
func BuildDetail(req DetailRequest, cfg Config) (url.Values, error) {
	if req.QuestionID <= 0 {
		return nil, &InvalidArgumentError{Field: "question_id", Reason: "must be a positive id"}
	}
	values := baseValues(cfg)
	values.Set("sort", SortVotes)
	return values, nil
}

func baseValues(cfg Config) url.Values {
	values := url.Values{}
	values.Set("order", "desc")
	values.Set("site", Site)
	values.Set("filter", apiFilter)
	if strings.TrimSpace(cfg.APIKey) != "" {
		values.Set("key", cfg.APIKey)
	}
	return values
}

func pageSize(limit int) int {
	if limit == 0 {
		limit = DefaultPageSize
	}
	return ClampLimit(limit)
}
