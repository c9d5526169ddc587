package step

func CloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	c := make([]int, len(s))
	copy(c, s)
	return c
}

func CloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	c := make([]string, len(s))
	copy(c, s)
	return c
}

// CloneTree copies every node reachable from n. Node ids are preserved.
func CloneTree(n *TreeNode) *TreeNode {
	if n == nil {
		return nil
	}
	return &TreeNode{
		ID:    n.ID,
		Value: n.Value,
		Left:  CloneTree(n.Left),
		Right: CloneTree(n.Right),
	}
}

func CloneNodes(nodes []GraphNode) []GraphNode {
	if nodes == nil {
		return nil
	}
	c := make([]GraphNode, len(nodes))
	copy(c, nodes)
	return c
}

func CloneEdges(edges []GraphEdge) []GraphEdge {
	if edges == nil {
		return nil
	}
	c := make([]GraphEdge, len(edges))
	copy(c, edges)
	return c
}

func CloneDistances(d map[string]Distance) map[string]Distance {
	if d == nil {
		return nil
	}
	c := make(map[string]Distance, len(d))
	for k, v := range d {
		c[k] = v
	}
	return c
}

func CloneBoard(b [][]int) [][]int {
	if b == nil {
		return nil
	}
	c := make([][]int, len(b))
	for i, row := range b {
		c[i] = CloneInts(row)
	}
	return c
}

func CloneFrames(frames []Frame) []Frame {
	if frames == nil {
		return nil
	}
	c := make([]Frame, len(frames))
	for i, f := range frames {
		c[i] = Frame{
			ID:           f.ID,
			FunctionName: f.FunctionName,
			Args:         cloneArgs(f.Args),
			ReturnValue:  CloneValue(f.ReturnValue),
			Active:       f.Active,
		}
	}
	return c
}

func CloneBlocks(blocks []MemoryBlock) []MemoryBlock {
	if blocks == nil {
		return nil
	}
	c := make([]MemoryBlock, len(blocks))
	for i, b := range blocks {
		c[i] = b
		c[i].Value = CloneValue(b.Value)
	}
	return c
}

func ClonePointers(p []Pointer) []Pointer {
	if p == nil {
		return nil
	}
	c := make([]Pointer, len(p))
	copy(c, p)
	return c
}

// CloneValue deep-copies the payload types generators store in frames and
// memory blocks. Scalars are returned as is.
func CloneValue(v any) any {
	switch t := v.(type) {
	case []int:
		return CloneInts(t)
	case []string:
		return CloneStrings(t)
	case map[string]any:
		return cloneArgs(t)
	case map[string]int:
		c := make(map[string]int, len(t))
		for k, x := range t {
			c[k] = x
		}
		return c
	case *ListNode:
		if t == nil {
			return t
		}
		n := *t
		return &n
	default:
		return v
	}
}

func cloneArgs(args map[string]any) map[string]any {
	if args == nil {
		return nil
	}
	c := make(map[string]any, len(args))
	for k, v := range args {
		c[k] = CloneValue(v)
	}
	return c
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// IntPtr returns a pointer to a copy of v.
func IntPtr(v int) *int {
	return &v
}
