package stackexchange

import (
	"os"
	"strconv"
	"strings"

	"github.com/beeper/stackoverflow-mcp/pkg/shared/stringutil"
)

// ConfigFromEnv builds a client config from environment variables.
func ConfigFromEnv() Config {
	cfg := Config{}
	cfg.APIKey = stringutil.FirstNonEmpty(
		os.Getenv("STACKEXCHANGE_API_KEY"),
		os.Getenv("STACK_EXCHANGE_API_KEY"),
	)
	cfg.BaseURL = stringutil.EnvOr(cfg.BaseURL, os.Getenv("STACKEXCHANGE_BASE_URL"))
	cfg.UserAgent = stringutil.EnvOr(cfg.UserAgent, os.Getenv("STACKEXCHANGE_USER_AGENT"))
	if raw := strings.TrimSpace(os.Getenv("STACKEXCHANGE_TIMEOUT_SECONDS")); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cfg.TimeoutSecs = secs
		}
	}
	return cfg.WithDefaults()
}

// ApplyEnvDefaults fills empty config fields from environment variables.
// Values already present in cfg win over the environment.
func ApplyEnvDefaults(cfg Config) Config {
	envCfg := ConfigFromEnv()
	if strings.TrimSpace(cfg.APIKey) == "" {
		cfg.APIKey = envCfg.APIKey
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = envCfg.BaseURL
	}
	if strings.TrimSpace(cfg.UserAgent) == "" {
		cfg.UserAgent = envCfg.UserAgent
	}
	if cfg.TimeoutSecs <= 0 {
		cfg.TimeoutSecs = envCfg.TimeoutSecs
	}
	return cfg.WithDefaults()
}
