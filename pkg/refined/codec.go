package refined

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// The helpers below back the encoding methods of every generated kind.
// Each one validates through the kind, so an unmarshal never produces a
// value outside the kind.

func marshalText[P Number](v P) ([]byte, error) {
	return []byte(formatNumber(v)), nil
}

func unmarshalText[T any, P Number](k Kind[T, P], text []byte) (T, error) {
	v, err := parseNumber[P](string(bytes.TrimSpace(text)))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("refined: parse %s: %w", k.name, err)
	}
	return k.TryingValid(v)
}

// marshalJSON encodes v as a JSON number. JSON has no infinities, so they
// are written as the strings "+Inf" and "-Inf".
func marshalJSON[P Number](v P) ([]byte, error) {
	if isFloat[P]() && math.IsInf(float64(v), 0) {
		return json.Marshal(formatNumber(v))
	}
	return json.Marshal(v)
}

// unmarshalJSON decodes data into k. JSON null keeps current. The only
// strings accepted are "+Inf" and "-Inf", for float kinds.
func unmarshalJSON[T any, P Number](k Kind[T, P], data []byte, current T) (T, error) {
	var zero T
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return current, nil
	}
	if len(data) > 0 && data[0] == '"' {
		v, err := unmarshalInfinity[P](data)
		if err != nil {
			return zero, fmt.Errorf("refined: decode %s: %w", k.name, err)
		}
		return k.TryingValid(v)
	}
	var v P
	if err := json.Unmarshal(data, &v); err != nil {
		return zero, fmt.Errorf("refined: decode %s: %w", k.name, err)
	}
	return k.TryingValid(v)
}

func unmarshalInfinity[P Number](data []byte) (P, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return 0, err
	}
	if isFloat[P]() {
		switch s {
		case "+Inf":
			return P(math.Inf(1)), nil
		case "-Inf":
			return P(math.Inf(-1)), nil
		}
	}
	return 0, fmt.Errorf("%q is not a number", s)
}

// scanSQL converts a database/sql source value into k.
func scanSQL[T any, P Number](k Kind[T, P], src any) (T, error) {
	var zero T
	switch s := src.(type) {
	case nil:
		return zero, fmt.Errorf("refined: scan %s: %w", k.name, ErrNullValue)
	case int64:
		return scanInt64(k, s)
	case float64:
		return scanFloat64(k, s)
	case []byte:
		return unmarshalText(k, s)
	case string:
		return unmarshalText(k, []byte(s))
	default:
		return zero, fmt.Errorf("refined: cannot scan %T into %s", src, k.name)
	}
}

// scanInt64 converts an int64 into k, rejecting values that P cannot hold
// exactly: integers out of range and integers a float would round.
func scanInt64[T any, P Number](k Kind[T, P], v int64) (T, error) {
	p := P(v)
	if !holdsInt(p, v) {
		var zero T
		return zero, fmt.Errorf("refined: %d cannot be represented exactly as %s", v, k.name)
	}
	return k.TryingValid(p)
}

// holdsInt reports whether p is exactly v. Floats at or beyond ±2^63 are
// checked before the conversion back, which would overflow.
func holdsInt[P Number](p P, v int64) bool {
	if isFloat[P]() {
		if f := float64(p); f < -0x1p63 || f >= 0x1p63 {
			return false
		}
	}
	return int64(p) == v
}

// scanFloat64 converts a float64 into k, rejecting values that P cannot
// hold exactly. NaN is left to the kind's predicate.
func scanFloat64[T any, P Number](k Kind[T, P], v float64) (T, error) {
	p := P(v)
	if float64(p) != v && !(isFloat[P]() && math.IsNaN(v)) {
		var zero T
		return zero, fmt.Errorf("refined: %v cannot be represented exactly as %s", v, k.name)
	}
	return k.TryingValid(p)
}

// scanNull reports the error for a NULL pgx value.
func scanNull[T any, P Number](k Kind[T, P]) error {
	return fmt.Errorf("refined: scan %s: %w", k.name, ErrNullValue)
}
