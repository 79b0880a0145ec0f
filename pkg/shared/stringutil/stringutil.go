package stringutil

import (
	"regexp"
	"strings"
)

// EnvOr returns value (trimmed) if non-empty, otherwise returns existing.
func EnvOr(existing, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return existing
	}
	return value
}

// FirstNonEmpty returns the first non-empty string after trimming.
func FirstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// CollapseWhitespace folds whitespace runs (including newlines) into single
// spaces and trims the ends.
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
}

// Truncate shortens text to at most max bytes, appending "..." when it cuts.
func Truncate(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}
	return strings.TrimSpace(text[:max]) + "..."
}
