package refined

import (
	"math"
	"strconv"
	"strings"
)

// formatNumber renders v in the shortest form that parses back to v.
func formatNumber[P Number](v P) string {
	switch x := any(v).(type) {
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	default:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	}
}

// literal renders v the way it would be written as a literal: whole floats
// keep a ".0" and float32 values carry an "f" suffix.
func literal[P Number](v P) string {
	s := formatNumber(v)
	if !isFloat[P]() || math.IsInf(float64(v), 0) {
		return s
	}
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	if _, ok := any(v).(float32); ok {
		s += "f"
	}
	return s
}

// describe renders a kind value for debugging, e.g. "NegFloat(-1.5f)".
func describe[P Number](kind string, v P) string {
	return kind + "(" + literal(v) + ")"
}

// parseNumber parses s as a P, rejecting values out of P's range.
func parseNumber[P Number](s string) (P, error) {
	var zero P
	switch any(zero).(type) {
	case int32:
		v, err := strconv.ParseInt(s, 10, 32)
		return P(v), err
	case int64:
		v, err := strconv.ParseInt(s, 10, 64)
		return P(v), err
	case float32:
		v, err := strconv.ParseFloat(s, 32)
		return P(v), err
	default:
		v, err := strconv.ParseFloat(s, 64)
		return P(v), err
	}
}
