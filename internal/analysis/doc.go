// Package analysis measures how generated traces grow with input size.
//
// A profile runs one generator over a range of input sizes and counts the
// steps it emits per operation:
//
//	samples := analysis.Profile(def, analysis.Sizes(16), analysis.ShapeReversed, 1)
//	fmt.Println(analysis.Plot(samples, step.OpCompare))
//
// Counts are exact, not timed, so profiles are reproducible for a given
// seed.
package analysis
