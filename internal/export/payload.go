package export

import (
	"math"

	"github.com/san-kum/algoviz/internal/step"
)

// restorePayloads converts the untyped frame arguments, return values and
// memory block values of a decoded step back to the shapes generators
// produce: whole numbers become int, integer lists []int, integer maps
// map[string]int and {value, next} objects *step.ListNode.
func restorePayloads(s step.Step) {
	switch t := s.(type) {
	case *step.RecursionStep:
		for i := range t.StackFrames {
			f := &t.StackFrames[i]
			for k, v := range f.Args {
				f.Args[k] = decodeValue(v)
			}
			f.ReturnValue = decodeValue(f.ReturnValue)
		}
	case *step.MemoryStep:
		for _, blocks := range [][]step.MemoryBlock{t.StackMemory, t.HeapMemory} {
			for i := range blocks {
				blocks[i].Value = decodeValue(blocks[i].Value)
			}
		}
	}
}

func decodeValue(v any) any {
	switch t := v.(type) {
	case float64:
		if t == math.Trunc(t) && math.Abs(t) <= math.MaxInt32 {
			return int(t)
		}
		return t
	case []any:
		ints := make([]int, len(t))
		for i, x := range t {
			n, ok := decodeValue(x).(int)
			if !ok {
				return t
			}
			ints[i] = n
		}
		return ints
	case map[string]any:
		if node, ok := listNode(t); ok {
			return node
		}
		ints := make(map[string]int, len(t))
		for k, x := range t {
			n, ok := decodeValue(x).(int)
			if !ok {
				return t
			}
			ints[k] = n
		}
		return ints
	}
	return v
}

func listNode(m map[string]any) (*step.ListNode, bool) {
	if len(m) != 2 {
		return nil, false
	}
	value, ok := decodeValue(m["value"]).(int)
	if !ok {
		return nil, false
	}
	next, ok := m["next"].(string)
	if !ok {
		return nil, false
	}
	return &step.ListNode{Value: value, Next: next}, true
}
