// Package gen renders the refinement kinds of pkg/refined from a YAML
// manifest.
//
// The manifest names the primitives (with their lossless widening edges)
// and the predicate rules. Every rule is combined with every primitive into
// one kind, and each kind gets a generated file with its nominal type, its
// companion Kind value and all of its methods. Widening conversions are the
// closure of the primitive edges and predicate.Rule.Implies, so a
// conversion exists only when the source invariant implies the target one.
//
// The shared behaviour (constructors, extremes, codecs) lives in hand
// written generic code in pkg/refined; generated files only bind it to a
// concrete type.
package gen
