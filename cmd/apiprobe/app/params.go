package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/apiprobe/apiprobe/cmd/apiprobe/client"
)

// ParseParams parses KEY=VALUE tokens into typed query parameters.
//
// Each token must contain a literal '='; the split happens on the first
// one, and key and value are trimmed of surrounding whitespace. An
// absent '=' or an empty key is a parameter-format error. Duplicate
// keys follow map-overwrite semantics: the last occurrence wins.
//
// Values are coerced in a fixed precedence order, each step total and
// deterministic:
//  1. "true"/"false" (case-insensitive) -> bool
//  2. all-digit -> int64
//  3. exactly one '.' with a digit-only remainder -> float64
//  4. anything else -> string
func ParseParams(tokens []string) (client.Params, error) {
	params := client.Params{}

	for _, tok := range tokens {
		key, value, found := strings.Cut(tok, "=")
		if !found {
			return nil, fmt.Errorf("invalid parameter format: %s (expected 'key=value')", tok)
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" {
			return nil, fmt.Errorf("empty key in parameter: %s", tok)
		}

		params[key] = coerceValue(value)
	}

	return params, nil
}

// coerceValue applies the typed-parse precedence documented on
// ParseParams.
func coerceValue(v string) any {
	switch strings.ToLower(v) {
	case "true":
		return true
	case "false":
		return false
	}

	if isDigits(v) {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
		// Exceeds int64: keep the literal rather than lose precision.
		return v
	}

	if strings.Count(v, ".") == 1 {
		if rem := strings.ReplaceAll(v, ".", ""); isDigits(rem) {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
	}

	return v
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
