// Package result provides small generic carriers for the outcome of a
// checked construction: Option (value or nothing), Validation (pass or an
// error value), Or (good value or bad value) and Either (left or right).
//
// All carriers are immutable value types with unexported fields; they are
// built with the package constructors (Some, None, Pass, Fail, Good, Bad,
// Left, Right) and inspected through methods that return the payload
// together with a presence flag, the same shape as a map lookup:
//
//	o := result.Good[int, string](42)
//	if v, ok := o.Get(); ok {
//	    fmt.Println(v)
//	}
//
// Fold and Map helpers cover the common "handle both branches" cases
// without exposing the internal representation.
package result
