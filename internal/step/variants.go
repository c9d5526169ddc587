package step

type SortingStep struct {
	Array         []int     `json:"array" yaml:"array"`
	ActiveIndices []int     `json:"activeIndices" yaml:"activeIndices"`
	Operation     Operation `json:"operation" yaml:"operation"`
	Description   string    `json:"description" yaml:"description"`
}

func (s *SortingStep) Kind() Kind        { return KindSorting }
func (s *SortingStep) Op() Operation     { return s.Operation }
func (s *SortingStep) Narration() string { return s.Description }
func (s *SortingStep) isStep()           {}

func (s *SortingStep) Clone() Step {
	return &SortingStep{
		Array:         CloneInts(s.Array),
		ActiveIndices: CloneInts(s.ActiveIndices),
		Operation:     s.Operation,
		Description:   s.Description,
	}
}

type TreeNode struct {
	ID    string    `json:"id" yaml:"id"`
	Value int       `json:"value" yaml:"value"`
	Left  *TreeNode `json:"left,omitempty" yaml:"left,omitempty"`
	Right *TreeNode `json:"right,omitempty" yaml:"right,omitempty"`
}

type TreeStep struct {
	Root             *TreeNode `json:"root" yaml:"root"`
	HighlightedNodes []string  `json:"highlightedNodes" yaml:"highlightedNodes"`
	TraversalOrder   []int     `json:"traversalOrder" yaml:"traversalOrder"`
	Operation        Operation `json:"operation" yaml:"operation"`
	Description      string    `json:"description" yaml:"description"`
}

func (s *TreeStep) Kind() Kind        { return KindTree }
func (s *TreeStep) Op() Operation     { return s.Operation }
func (s *TreeStep) Narration() string { return s.Description }
func (s *TreeStep) isStep()           {}

func (s *TreeStep) Clone() Step {
	return &TreeStep{
		Root:             CloneTree(s.Root),
		HighlightedNodes: CloneStrings(s.HighlightedNodes),
		TraversalOrder:   CloneInts(s.TraversalOrder),
		Operation:        s.Operation,
		Description:      s.Description,
	}
}

type GraphNode struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	X     int    `json:"x" yaml:"x"`
	Y     int    `json:"y" yaml:"y"`
}

// GraphEdge is undirected for traversal purposes. Weight is zero on
// unweighted graphs.
type GraphEdge struct {
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Weight int    `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// Connects reports whether the edge joins a and b in either direction.
func (e GraphEdge) Connects(a, b string) bool {
	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}

type GraphStep struct {
	Nodes        []GraphNode         `json:"nodes" yaml:"nodes"`
	Edges        []GraphEdge         `json:"edges" yaml:"edges"`
	VisitedNodes []string            `json:"visitedNodes" yaml:"visitedNodes"`
	ActiveNode   string              `json:"activeNode,omitempty" yaml:"activeNode,omitempty"`
	ActiveEdge   *GraphEdge          `json:"activeEdge,omitempty" yaml:"activeEdge,omitempty"`
	Queue        []string            `json:"queue" yaml:"queue"`
	Distances    map[string]Distance `json:"distances,omitempty" yaml:"distances,omitempty"`
	Operation    Operation           `json:"operation" yaml:"operation"`
	Description  string              `json:"description" yaml:"description"`
}

func (s *GraphStep) Kind() Kind        { return KindGraph }
func (s *GraphStep) Op() Operation     { return s.Operation }
func (s *GraphStep) Narration() string { return s.Description }
func (s *GraphStep) isStep()           {}

func (s *GraphStep) Clone() Step {
	c := &GraphStep{
		Nodes:        CloneNodes(s.Nodes),
		Edges:        CloneEdges(s.Edges),
		VisitedNodes: CloneStrings(s.VisitedNodes),
		ActiveNode:   s.ActiveNode,
		Queue:        CloneStrings(s.Queue),
		Distances:    CloneDistances(s.Distances),
		Operation:    s.Operation,
		Description:  s.Description,
	}
	if s.ActiveEdge != nil {
		e := *s.ActiveEdge
		c.ActiveEdge = &e
	}
	return c
}

// Frame is a call-stack entry. ReturnValue stays nil until the call returns.
type Frame struct {
	ID           string         `json:"id" yaml:"id"`
	FunctionName string         `json:"functionName" yaml:"functionName"`
	Args         map[string]any `json:"args" yaml:"args"`
	ReturnValue  any            `json:"returnValue,omitempty" yaml:"returnValue,omitempty"`
	Active       bool           `json:"isActive" yaml:"isActive"`
}

type RecursionStep struct {
	StackFrames []Frame   `json:"stackFrames" yaml:"stackFrames"`
	BoardState  [][]int   `json:"boardState,omitempty" yaml:"boardState,omitempty"`
	CurrentRow  *int      `json:"currentRow,omitempty" yaml:"currentRow,omitempty"`
	CurrentCol  *int      `json:"currentCol,omitempty" yaml:"currentCol,omitempty"`
	Operation   Operation `json:"operation" yaml:"operation"`
	Description string    `json:"description" yaml:"description"`
}

func (s *RecursionStep) Kind() Kind        { return KindRecursion }
func (s *RecursionStep) Op() Operation     { return s.Operation }
func (s *RecursionStep) Narration() string { return s.Description }
func (s *RecursionStep) isStep()           {}

func (s *RecursionStep) Clone() Step {
	return &RecursionStep{
		StackFrames: CloneFrames(s.StackFrames),
		BoardState:  CloneBoard(s.BoardState),
		CurrentRow:  cloneIntPtr(s.CurrentRow),
		CurrentCol:  cloneIntPtr(s.CurrentCol),
		Operation:   s.Operation,
		Description: s.Description,
	}
}

type Region string

const (
	RegionStack Region = "stack"
	RegionHeap  Region = "heap"
)

// MemoryBlock is a named, addressed slot. PointsTo holds the id of the block
// it references, if any.
type MemoryBlock struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Value    any    `json:"value" yaml:"value"`
	Address  string `json:"address" yaml:"address"`
	Region   Region `json:"type" yaml:"type"`
	PointsTo string `json:"pointsTo,omitempty" yaml:"pointsTo,omitempty"`
}

// ListNode is the heap payload of a singly linked list node. Next holds the
// address of the successor or "null".
type ListNode struct {
	Value int    `json:"value" yaml:"value"`
	Next  string `json:"next" yaml:"next"`
}

type Pointer struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

type MemoryStep struct {
	StackMemory []MemoryBlock `json:"stackMemory" yaml:"stackMemory"`
	HeapMemory  []MemoryBlock `json:"heapMemory" yaml:"heapMemory"`
	Pointers    []Pointer     `json:"pointers" yaml:"pointers"`
	Operation   Operation     `json:"operation" yaml:"operation"`
	Description string        `json:"description" yaml:"description"`
}

func (s *MemoryStep) Kind() Kind        { return KindMemory }
func (s *MemoryStep) Op() Operation     { return s.Operation }
func (s *MemoryStep) Narration() string { return s.Description }
func (s *MemoryStep) isStep()           {}

func (s *MemoryStep) Clone() Step {
	return &MemoryStep{
		StackMemory: CloneBlocks(s.StackMemory),
		HeapMemory:  CloneBlocks(s.HeapMemory),
		Pointers:    ClonePointers(s.Pointers),
		Operation:   s.Operation,
		Description: s.Description,
	}
}
