// Package async runs independent computations concurrently and collects
// their results.
//
// Map applies a function to every element of a slice with at most limit
// calls in flight and returns the results in input order; the first error
// cancels the remaining work and is returned.
//
//	outputs, err := async.Map(ctx, 4, specs, func(ctx context.Context, s gen.Spec) ([]byte, error) {
//	    return renderer.Render(s)
//	})
//
// Calls whose context is already done complete with the context error
// without calling fn.
package async
