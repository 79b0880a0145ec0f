package tools

import (
	"fmt"
	"strings"
)

// ReadString extracts a string parameter. Required parameters must be
// present and non-blank after trimming.
func ReadString(params map[string]any, key string, required bool) (string, error) {
	value, ok := params[key]
	if !ok || value == nil {
		if required {
			return "", fmt.Errorf("missing required parameter: %s", key)
		}
		return "", nil
	}
	str, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("parameter %s must be a string", key)
	}
	str = strings.TrimSpace(str)
	if required && str == "" {
		return "", fmt.Errorf("missing required parameter: %s", key)
	}
	return str, nil
}

// ReadStringDefault extracts an optional string parameter, falling back to
// def when the parameter is absent or blank.
func ReadStringDefault(params map[string]any, key, def string) string {
	str, err := ReadString(params, key, false)
	if err != nil || str == "" {
		return def
	}
	return str
}

// ReadNumber extracts a numeric parameter. JSON decoding hands numbers over
// as float64, but ints are accepted too for direct callers.
func ReadNumber(params map[string]any, key string, required bool) (float64, error) {
	value, ok := params[key]
	if !ok || value == nil {
		if required {
			return 0, fmt.Errorf("missing required parameter: %s", key)
		}
		return 0, nil
	}
	switch n := value.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("parameter %s must be a number", key)
}

// ReadInt extracts an integer parameter.
func ReadInt(params map[string]any, key string, required bool) (int, error) {
	n, err := ReadNumber(params, key, required)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// ReadIntDefault extracts an optional integer parameter, falling back to def
// when the parameter is absent or zero.
func ReadIntDefault(params map[string]any, key string, def int) int {
	n, err := ReadInt(params, key, false)
	if err != nil || n == 0 {
		return def
	}
	return n
}

// ReadBool extracts an optional boolean parameter.
func ReadBool(params map[string]any, key string, def bool) bool {
	value, ok := params[key]
	if !ok || value == nil {
		return def
	}
	b, ok := value.(bool)
	if !ok {
		return def
	}
	return b
}

// ReadStringSlice extracts a string array parameter. JSON decoding hands
// arrays over as []any; blank entries are dropped.
func ReadStringSlice(params map[string]any, key string, required bool) ([]string, error) {
	value, ok := params[key]
	if !ok || value == nil {
		if required {
			return nil, fmt.Errorf("missing required parameter: %s", key)
		}
		return nil, nil
	}
	var raw []any
	switch v := value.(type) {
	case []any:
		raw = v
	case []string:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		if required && len(out) == 0 {
			return nil, fmt.Errorf("missing required parameter: %s", key)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("parameter %s must be an array of strings", key)
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		str, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("parameter %s must be an array of strings", key)
		}
		if str = strings.TrimSpace(str); str != "" {
			out = append(out, str)
		}
	}
	if required && len(out) == 0 {
		return nil, fmt.Errorf("missing required parameter: %s", key)
	}
	return out, nil
}
