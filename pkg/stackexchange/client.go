package stackexchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/beeper/stackoverflow-mcp/pkg/shared/httputil"
)

// lowQuotaThreshold triggers a warning once the daily request quota is nearly
// gone. Quota is surfaced in logs only, never enforced.
const lowQuotaThreshold = 10

// Client queries the Stack Exchange API for a single site.
type Client struct {
	cfg Config
}

// NewClient builds a client. Zero-value config fields pick up defaults.
func NewClient(cfg Config) *Client {
	return &Client{cfg: cfg.WithDefaults()}
}

// apiEnvelope is the wrapper common to every API response. The error fields
// are set on failures (quota exhaustion included); quota and backoff hints
// ride along on successes.
type apiEnvelope struct {
	Items          json.RawMessage `json:"items"`
	ErrorID        int             `json:"error_id"`
	ErrorName      string          `json:"error_name"`
	ErrorMessage   string          `json:"error_message"`
	QuotaRemaining int             `json:"quota_remaining"`
	QuotaMax       int             `json:"quota_max"`
	Backoff        int             `json:"backoff"`
	HasMore        bool            `json:"has_more"`
}

// Search runs a full-text question search and returns normalized summaries in
// the order the API produced them.
func (c *Client) Search(ctx context.Context, req SearchRequest) ([]QuestionSummary, error) {
	values, err := BuildSearch(req, c.cfg)
	if err != nil {
		return nil, err
	}
	var items []apiQuestion
	if err := c.fetch(ctx, "/search", values, &items); err != nil {
		return nil, err
	}
	return normalizeQuestions(items), nil
}

// SearchByTags runs a tag-only search and applies the MinScore floor after
// normalization, keeping the API's ordering.
func (c *Client) SearchByTags(ctx context.Context, req SearchRequest) ([]QuestionSummary, error) {
	values, err := BuildTagSearch(req, c.cfg)
	if err != nil {
		return nil, err
	}
	var items []apiQuestion
	if err := c.fetch(ctx, "/search", values, &items); err != nil {
		return nil, err
	}
	return FilterByScore(normalizeQuestions(items), req.MinScore), nil
}

// Question fetches one question and, when requested, its answers. Detail with
// answers is exactly two sequential calls; the first failure aborts, there is
// no partial result.
func (c *Client) Question(ctx context.Context, req DetailRequest) (*QuestionDetail, error) {
	values, err := BuildDetail(req, c.cfg)
	if err != nil {
		return nil, err
	}
	id := strconv.FormatInt(req.QuestionID, 10)
	var questions []apiQuestion
	if err := c.fetch(ctx, "/questions/"+id, values, &questions); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, &RemoteError{Message: fmt.Sprintf("question %d not found", req.QuestionID)}
	}
	detail := normalizeDetail(questions[0])
	if !req.IncludeAnswers {
		return detail, nil
	}
	var answers []apiAnswer
	if err := c.fetch(ctx, "/questions/"+id+"/answers", values, &answers); err != nil {
		return nil, err
	}
	attachAnswers(detail, answers)
	return detail, nil
}

func (c *Client) fetch(ctx context.Context, endpoint string, values url.Values, items any) error {
	requestURL := strings.TrimRight(c.cfg.BaseURL, "/") + endpoint + "?" + values.Encode()
	log := zerolog.Ctx(ctx)
	log.Debug().Str("endpoint", endpoint).Msg("Querying Stack Exchange API")

	data, status, httpErr := httputil.GetJSON(ctx, requestURL, map[string]string{
		"Accept":     "application/json",
		"User-Agent": c.cfg.UserAgent,
	}, c.cfg.TimeoutSecs)
	if httpErr != nil && len(data) == 0 {
		return &RemoteError{StatusCode: status, Err: httpErr}
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		if httpErr != nil {
			return &RemoteError{StatusCode: status, Err: httpErr}
		}
		return &RemoteError{StatusCode: status, Err: fmt.Errorf("decoding response: %w", err)}
	}
	if envelope.ErrorID != 0 || envelope.ErrorMessage != "" {
		return &RemoteError{
			StatusCode: status,
			ErrorID:    envelope.ErrorID,
			Name:       envelope.ErrorName,
			Message:    envelope.ErrorMessage,
		}
	}
	if httpErr != nil {
		return &RemoteError{StatusCode: status, Err: httpErr}
	}

	if envelope.Backoff > 0 {
		log.Warn().Int("backoff_seconds", envelope.Backoff).Msg("Stack Exchange API requested a backoff")
	}
	if envelope.QuotaMax > 0 {
		log.Debug().
			Int("quota_remaining", envelope.QuotaRemaining).
			Int("quota_max", envelope.QuotaMax).
			Msg("Stack Exchange quota")
		if envelope.QuotaRemaining <= lowQuotaThreshold {
			log.Warn().Int("quota_remaining", envelope.QuotaRemaining).Msg("Stack Exchange API quota nearly exhausted")
		}
	}

	if len(envelope.Items) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Items, items); err != nil {
		return &RemoteError{StatusCode: status, Err: fmt.Errorf("decoding items: %w", err)}
	}
	return nil
}
