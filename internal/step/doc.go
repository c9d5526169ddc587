// Package step defines the snapshot records produced by algorithm generators.
//
// A trace is an ordered []Step. Every element is one of five concrete kinds:
//
//   - [SortingStep]: working array plus the indices being compared or swapped
//   - [TreeStep]: full binary tree snapshot, highlighted nodes, traversal output
//   - [GraphStep]: fixed node/edge set, visited set, frontier and distances
//   - [RecursionStep]: call stack frames and an optional board for backtracking
//   - [MemoryStep]: stack and heap blocks with the pointer relation between them
//
// Consumers switch on the concrete type (or on [Step.Kind]) at the rendering
// boundary:
//
//	switch s := st.(type) {
//	case *step.SortingStep:
//		drawBars(s.Array, s.ActiveIndices)
//	case *step.TreeStep:
//		drawTree(s.Root, s.HighlightedNodes)
//	}
//
// # Snapshots
//
// Steps never share backing arrays, maps or tree nodes with each other.
// Generators copy their working state with the Clone helpers in this package
// before appending a step, and [Step.Clone] returns a fully independent copy.
package step
