// Package refined provides numeric types that can only hold values
// satisfying a sign predicate.
//
// There are five predicates (Neg, NegZ, Pos, PosZ and NonZero) over four
// primitives (Int is int32, Long is int64, Float is float32 and Double is
// float64), giving twenty kinds such as NegInt or PosZDouble. Each kind has a
// companion Kind value, e.g. NegIntKind, which is the only way to build one
// from an untrusted primitive:
//
//	n, ok := refined.NegIntKind.From(-42)       // NegInt(-42), true
//	_, err := refined.NegIntKind.TryingValid(5) // 5 was not a valid NegInt
//	p := refined.PosIntKind.EnsuringValid(1)    // panics if invalid
//
// Values are immutable. Compare them with Equal or Compare: == also sees
// the sign of zero, so a PosZFloat holding -0 is != one holding +0 while
// Equal reports them equal. The zero value of every kind is valid: -1 for Neg kinds, 1
// for Pos and NonZero kinds and 0 for the zero-inclusive ones.
//
// NaN is never valid. Signed zeros are rejected by Neg, Pos and NonZero and
// accepted as is by NegZ and PosZ. Float kinds admit the infinity on their
// side of zero, so PosDoubleKind.MaxValue() is +Inf.
//
// Every kind widens without loss of sign to any kind whose predicate it
// implies over the same or a wider primitive:
//
//	l := n.ToNegLong()       // NegLong(-42)
//	d := l.ToNonZeroDouble() // NonZeroDouble(-42.0)
//
// Kinds implement encoding.TextMarshaler, json.Marshaler, sql.Scanner,
// driver.Valuer and the pgx Int64/Float64 scanner and valuer interfaces.
// Decoding validates, so a bad row or payload surfaces as an error wrapping
// ErrInvalidValue instead of an invalid value.
//
// The *_gen.go files are generated from kinds.yaml.
package refined

//go:generate go run ../../cmd/refinegen
