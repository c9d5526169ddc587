package step

type Kind string

const (
	KindSorting   Kind = "sorting"
	KindTree      Kind = "tree"
	KindGraph     Kind = "graph"
	KindRecursion Kind = "recursion"
	KindMemory    Kind = "memory"
)

// Operation classifies what happened at a step. The valid set depends on the
// step kind; see ValidFor.
type Operation string

const (
	OpInitial Operation = "initial"
	OpDone    Operation = "done"

	OpCompare Operation = "compare"
	OpSwap    Operation = "swap"

	OpVisit  Operation = "visit"
	OpInsert Operation = "insert"
	OpDelete Operation = "delete"

	OpExplore Operation = "explore"
	OpEnqueue Operation = "enqueue"
	OpDequeue Operation = "dequeue"

	OpPush      Operation = "push"
	OpPop       Operation = "pop"
	OpExecute   Operation = "execute"
	OpBacktrack Operation = "backtrack"

	OpAllocate   Operation = "allocate"
	OpDeallocate Operation = "deallocate"
	OpUpdate     Operation = "update"
	OpTraverse   Operation = "traverse"
)

var operationsByKind = map[Kind][]Operation{
	KindSorting:   {OpCompare, OpSwap, OpDone, OpInitial},
	KindTree:      {OpVisit, OpInsert, OpDelete, OpCompare, OpDone, OpInitial},
	KindGraph:     {OpVisit, OpExplore, OpEnqueue, OpDequeue, OpDone, OpInitial},
	KindRecursion: {OpPush, OpPop, OpExecute, OpBacktrack, OpDone, OpInitial},
	KindMemory:    {OpAllocate, OpDeallocate, OpUpdate, OpTraverse, OpDone, OpInitial},
}

// ValidFor reports whether op belongs to the operation set of kind k.
func (op Operation) ValidFor(k Kind) bool {
	for _, o := range operationsByKind[k] {
		if o == op {
			return true
		}
	}
	return false
}

// Operations returns the operation set of kind k.
func Operations(k Kind) []Operation {
	ops := operationsByKind[k]
	out := make([]Operation, len(ops))
	copy(out, ops)
	return out
}

// Step is one immutable snapshot of algorithm state. The interface is sealed;
// the five implementations live in this package.
type Step interface {
	Kind() Kind
	Op() Operation
	Narration() string
	// Clone returns a deep copy sharing no memory with the receiver.
	Clone() Step

	isStep()
}

// CloneAll deep-copies a whole sequence.
func CloneAll(steps []Step) []Step {
	out := make([]Step, len(steps))
	for i, s := range steps {
		out[i] = s.Clone()
	}
	return out
}
