package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// InferValue converts a raw CSV cell into a typed scalar: whole numbers
// become int64, other numeric-looking strings become float64, everything
// else stays a string.
func InferValue(s string) interface{} {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return s
}

// CoerceFloat renders val to its string form, trims surrounding whitespace,
// and parses it as a float. Empty and unparseable values come back as nil;
// coercion never fails.
func CoerceFloat(val interface{}) interface{} {
	switch v := val.(type) {
	case nil:
		return nil
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}

	s := strings.TrimSpace(fmt.Sprintf("%v", val))
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return f
}
