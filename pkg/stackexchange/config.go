package stackexchange

import "strings"

const (
	// DefaultBaseURL is the Stack Exchange API root.
	DefaultBaseURL = "https://api.stackexchange.com/2.3"

	// Site is the only site this client queries. Other Stack Exchange sites
	// are out of scope.
	Site = "stackoverflow"

	DefaultUserAgent   = "stackoverflow-mcp/1.0"
	DefaultTimeoutSecs = 30

	DefaultPageSize = 10
	MinPageSize     = 1
	MaxPageSize     = 100

	// apiFilter makes the API include bodies in question and answer items.
	apiFilter = "withbody"
)

// Sort orders accepted by the builders. Anything else falls back to the
// operation default instead of being passed through raw.
const (
	SortRelevance = "relevance"
	SortActivity  = "activity"
	SortVotes     = "votes"
	SortCreation  = "creation"
)

// Config holds connection settings for the Stack Exchange API.
type Config struct {
	BaseURL     string `yaml:"base_url" json:"base_url"`
	APIKey      string `yaml:"api_key" json:"api_key"`
	UserAgent   string `yaml:"user_agent" json:"user_agent"`
	TimeoutSecs int    `yaml:"timeout_seconds" json:"timeout_seconds"`
}

func (c Config) WithDefaults() Config {
	if strings.TrimSpace(c.BaseURL) == "" {
		c.BaseURL = DefaultBaseURL
	}
	if strings.TrimSpace(c.UserAgent) == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	return c
}
