package step

import "fmt"

// Validate checks the structural invariants every generated sequence must
// hold: non-empty, initial first, done last, one kind throughout, operations
// valid for that kind, references resolvable within each snapshot and no
// mutable state shared between neighbouring steps.
func Validate(steps []Step) error {
	if len(steps) == 0 {
		return ErrEmptySequence
	}
	if steps[0].Op() != OpInitial {
		return &SequenceError{Index: 0, Wrapped: ErrMissingInitial, Detail: string(steps[0].Op())}
	}
	last := len(steps) - 1
	if steps[last].Op() != OpDone {
		return &SequenceError{Index: last, Wrapped: ErrMissingDone, Detail: string(steps[last].Op())}
	}

	kind := steps[0].Kind()
	for i, s := range steps {
		if s.Kind() != kind {
			return &SequenceError{Index: i, Wrapped: ErrMixedKinds, Detail: fmt.Sprintf("%s after %s", s.Kind(), kind)}
		}
		if !s.Op().ValidFor(kind) {
			return &SequenceError{Index: i, Wrapped: ErrInvalidOperation, Detail: string(s.Op())}
		}
		if err := checkReferences(s); err != nil {
			return &SequenceError{Index: i, Wrapped: err, Detail: s.Narration()}
		}
		if i > 0 && shares(steps[i-1], s) {
			return &SequenceError{Index: i, Wrapped: ErrSharedState}
		}
	}
	return nil
}

func checkReferences(s Step) error {
	switch st := s.(type) {
	case *SortingStep:
		if len(st.ActiveIndices) > 2 {
			return ErrDanglingReference
		}
		for _, idx := range st.ActiveIndices {
			if idx < 0 || idx >= len(st.Array) {
				return ErrDanglingReference
			}
		}
	case *TreeStep:
		ids := make(map[string]bool)
		if dup := collectIDs(st.Root, ids); dup {
			return ErrDuplicateID
		}
		for _, id := range st.HighlightedNodes {
			if !ids[id] {
				return ErrDanglingReference
			}
		}
	case *GraphStep:
		ids := make(map[string]bool, len(st.Nodes))
		for _, n := range st.Nodes {
			if ids[n.ID] {
				return ErrDuplicateID
			}
			ids[n.ID] = true
		}
		if st.ActiveNode != "" && !ids[st.ActiveNode] {
			return ErrDanglingReference
		}
		if st.ActiveEdge != nil && (!ids[st.ActiveEdge.From] || !ids[st.ActiveEdge.To]) {
			return ErrDanglingReference
		}
		for _, group := range [][]string{st.VisitedNodes, st.Queue} {
			for _, id := range group {
				if !ids[id] {
					return ErrDanglingReference
				}
			}
		}
		for id := range st.Distances {
			if !ids[id] {
				return ErrDanglingReference
			}
		}
	case *RecursionStep:
		if st.BoardState != nil {
			if st.CurrentRow != nil && (*st.CurrentRow < -1 || *st.CurrentRow > len(st.BoardState)) {
				return ErrDanglingReference
			}
			if st.CurrentCol != nil && (*st.CurrentCol < 0 || *st.CurrentCol >= len(st.BoardState)) {
				return ErrDanglingReference
			}
		}
	case *MemoryStep:
		ids := make(map[string]bool)
		for _, b := range st.StackMemory {
			ids[b.ID] = true
		}
		for _, b := range st.HeapMemory {
			ids[b.ID] = true
		}
		for _, p := range st.Pointers {
			if !ids[p.From] || !ids[p.To] {
				return ErrDanglingReference
			}
		}
		for _, group := range [][]MemoryBlock{st.StackMemory, st.HeapMemory} {
			for _, b := range group {
				if b.PointsTo != "" && !ids[b.PointsTo] {
					return ErrDanglingReference
				}
			}
		}
	}
	return nil
}

func collectIDs(n *TreeNode, seen map[string]bool) bool {
	if n == nil {
		return false
	}
	if seen[n.ID] {
		return true
	}
	seen[n.ID] = true
	return collectIDs(n.Left, seen) || collectIDs(n.Right, seen)
}

// shares reports obvious aliasing between two neighbouring snapshots: the
// same backing array or the same root node.
func shares(a, b Step) bool {
	switch x := a.(type) {
	case *SortingStep:
		y, ok := b.(*SortingStep)
		return ok && sameBacking(x.Array, y.Array)
	case *TreeStep:
		y, ok := b.(*TreeStep)
		return ok && x.Root != nil && x.Root == y.Root
	case *GraphStep:
		y, ok := b.(*GraphStep)
		return ok && (sameBackingStrings(x.VisitedNodes, y.VisitedNodes) || sameBackingStrings(x.Queue, y.Queue))
	case *RecursionStep:
		y, ok := b.(*RecursionStep)
		return ok && len(x.BoardState) > 0 && len(y.BoardState) > 0 && sameBacking(x.BoardState[0], y.BoardState[0])
	case *MemoryStep:
		y, ok := b.(*MemoryStep)
		return ok && len(x.HeapMemory) > 0 && len(y.HeapMemory) > 0 && &x.HeapMemory[0] == &y.HeapMemory[0]
	}
	return false
}

func sameBacking(a, b []int) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

func sameBackingStrings(a, b []string) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}
