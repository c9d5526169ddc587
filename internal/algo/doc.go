// Package algo holds the step generators and the catalogue that names them.
//
// Every generator is a pure function from an integer input to a complete,
// eagerly built trace:
//
//	def, _ := algo.NewRegistry().Get("quick-sort")
//	steps := def.Generate([]int{5, 3, 8, 1})
//
// Sorting and tree generators depend only on their input. Graph generators
// ignore the input and always walk the same built-in graph. Recursion
// generators read input[0] and clamp it to a range that keeps the trace small.
//
// Generated traces start with an initial step, end with a done step and hold
// an independent deep copy of the working state in every element.
package algo
