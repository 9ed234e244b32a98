package common

import (
	"strconv"
	"strings"
)

// ParsePositiveInt parses positive integers with fallback.
func ParsePositiveInt(value string, fallback int) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, false
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback, false
	}
	return parsed, true
}

// ParseLimit parses a page size, defaulting and capping it.
func ParseLimit(value string) int {
	limit, _ := ParsePositiveInt(value, DefaultPageLimit)
	if limit > MaxPageLimit {
		return MaxPageLimit
	}
	return limit
}

// ParseFlag reports whether a boolean query flag is set. Only explicit true
// values count, so an absent flag never narrows a filter.
func ParseFlag(value string) bool {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && parsed
}
