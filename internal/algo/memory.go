package algo

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/step"
)

const (
	stackHeapID       = "stack-heap"
	maxListNodes      = 6
	nullAddress       = "null"
	listHeapBase      = 1000
	listNodeStride    = 8
	headAddress       = "0x0100"
	currentAddress    = "0x0108"
	currentMarker     = " ← CURRENT"
	currentPointer    = "current"
	headPointer       = "head"
	stackHeapDoneText = "Demo complete! Key insight: Objects/arrays are references, primitives are values."
)

var defaultListValues = []int{10, 20, 30, 40, 50}

// memoryTrace emits snapshots of whatever stack and heap the script has
// built so far.
type memoryTrace struct {
	steps []step.Step
}

func (t *memoryTrace) emit(op step.Operation, stack, heap []step.MemoryBlock, pointers []step.Pointer, desc string) {
	s := &step.MemoryStep{
		StackMemory: step.CloneBlocks(stack),
		HeapMemory:  step.CloneBlocks(heap),
		Pointers:    step.ClonePointers(pointers),
		Operation:   op,
		Description: desc,
	}
	if s.StackMemory == nil {
		s.StackMemory = []step.MemoryBlock{}
	}
	if s.HeapMemory == nil {
		s.HeapMemory = []step.MemoryBlock{}
	}
	if s.Pointers == nil {
		s.Pointers = []step.Pointer{}
	}
	t.steps = append(t.steps, s)
}

func listNodeID(i int) string { return fmt.Sprintf("node-%d", i) }

func listAddress(i int) string { return fmt.Sprintf("0x%x", listHeapBase+i*listNodeStride) }

func linkedListSteps(input []int) []step.Step {
	values := defaultListValues
	if len(input) > 0 {
		values = input
		if len(values) > maxListNodes {
			values = values[:maxListNodes]
		}
	}

	heap := make([]step.MemoryBlock, len(values))
	for i, v := range values {
		next := nullAddress
		pointsTo := ""
		if i+1 < len(values) {
			next = listAddress(i + 1)
			pointsTo = listNodeID(i + 1)
		}
		heap[i] = step.MemoryBlock{
			ID:       listNodeID(i),
			Name:     fmt.Sprintf("Node %d", i),
			Value:    &step.ListNode{Value: v, Next: next},
			Address:  listAddress(i),
			Region:   step.RegionHeap,
			PointsTo: pointsTo,
		}
	}

	head := step.MemoryBlock{
		ID:       headPointer,
		Name:     headPointer,
		Value:    heap[0].Address,
		Address:  headAddress,
		Region:   step.RegionStack,
		PointsTo: heap[0].ID,
	}
	headLink := step.Pointer{From: headPointer, To: heap[0].ID}

	t := &memoryTrace{}
	t.emit(step.OpInitial, []step.MemoryBlock{head}, heap, []step.Pointer{headLink},
		fmt.Sprintf("Created linked list with %d nodes: [%s]", len(values), joinInts(values, " → ")))

	current := step.MemoryBlock{
		ID:       currentPointer,
		Name:     currentPointer,
		Value:    heap[0].Address,
		Address:  currentAddress,
		Region:   step.RegionStack,
		PointsTo: heap[0].ID,
	}
	t.emit(step.OpAllocate, []step.MemoryBlock{head, current}, heap,
		[]step.Pointer{headLink, {From: currentPointer, To: heap[0].ID}},
		"Created 'current' pointer initialized to head")

	for i := range heap {
		marked := step.CloneBlocks(heap)
		marked[i].Name += currentMarker
		pointers := []step.Pointer{headLink, {From: currentPointer, To: heap[i].ID}}
		node := heap[i].Value.(*step.ListNode)
		t.emit(step.OpTraverse, []step.MemoryBlock{head, current}, marked, pointers,
			fmt.Sprintf("Visiting node at %s: value = %d", heap[i].Address, node.Value))

		if i+1 < len(heap) {
			current.Value = heap[i+1].Address
			current.PointsTo = heap[i+1].ID
			t.emit(step.OpUpdate, []step.MemoryBlock{head, current}, heap,
				[]step.Pointer{headLink, {From: currentPointer, To: heap[i+1].ID}},
				"Moving current to next node: current = current.next")
		}
	}

	t.emit(step.OpDone, []step.MemoryBlock{head}, heap, []step.Pointer{headLink},
		fmt.Sprintf("Traversal complete! Visited all %d nodes.", len(heap)))
	return t.steps
}

func formatArray(values []int) string {
	return "[" + joinInts(values, ", ") + "]"
}

// stackHeapSteps plays a fixed script; it ignores its input.
func stackHeapSteps(_ []int) []step.Step {
	t := &memoryTrace{}
	t.emit(step.OpInitial, nil, nil, nil, "Starting function execution - memory is empty")

	x := step.MemoryBlock{ID: "x", Name: "x", Value: 10, Address: "0x0100", Region: step.RegionStack}
	stack := []step.MemoryBlock{x}
	t.emit(step.OpAllocate, stack, nil, nil, "let x = 10 → Primitive stored directly on stack")

	y := step.MemoryBlock{ID: "y", Name: "y", Value: 20, Address: "0x0108", Region: step.RegionStack}
	stack = append(stack, y)
	t.emit(step.OpAllocate, stack, nil, nil, "let y = 20 → Another primitive on stack")

	arrValues := []int{1, 2, 3}
	arrHeap := step.MemoryBlock{ID: "arr-heap", Name: formatArray(arrValues), Value: arrValues, Address: "0x2000", Region: step.RegionHeap}
	arr := step.MemoryBlock{ID: "arr", Name: "arr", Value: arrHeap.Address, Address: "0x0110", Region: step.RegionStack, PointsTo: arrHeap.ID}
	stack = append(stack, arr)
	heap := []step.MemoryBlock{arrHeap}
	pointers := []step.Pointer{{From: arr.ID, To: arrHeap.ID}}
	t.emit(step.OpAllocate, stack, heap, pointers, "let arr = [1, 2, 3] → Array allocated on heap, reference stored on stack")

	objHeap := step.MemoryBlock{ID: "obj-heap", Name: "{ a: 1 }", Value: map[string]int{"a": 1}, Address: "0x2020", Region: step.RegionHeap}
	obj := step.MemoryBlock{ID: "obj", Name: "obj", Value: objHeap.Address, Address: "0x0118", Region: step.RegionStack, PointsTo: objHeap.ID}
	stack = append(stack, obj)
	heap = append(heap, objHeap)
	pointers = append(pointers, step.Pointer{From: obj.ID, To: objHeap.ID})
	t.emit(step.OpAllocate, stack, heap, pointers, "let obj = { a: 1 } → Object allocated on heap, reference on stack")

	arr2 := step.MemoryBlock{ID: "arr2", Name: "arr2", Value: arrHeap.Address, Address: "0x0120", Region: step.RegionStack, PointsTo: arrHeap.ID}
	stack = append(stack, arr2)
	pointers = append(pointers, step.Pointer{From: arr2.ID, To: arrHeap.ID})
	t.emit(step.OpAllocate, stack, heap, pointers, "let arr2 = arr → Both arr and arr2 now point to the SAME heap location!")

	modified := []int{99, 2, 3}
	heap[0].Value = modified
	heap[0].Name = formatArray(modified)
	t.emit(step.OpUpdate, stack, heap, pointers, "arr2[0] = 99 → Modified heap data. arr[0] is also 99 now!")

	t.emit(step.OpDone, stack, heap, pointers, stackHeapDoneText)
	return t.steps
}

var linkedList = &Definition{
	ID:          "linked-list",
	Name:        "Linked List Traversal",
	Category:    CategoryMemory,
	Description: "Traverse a linked list and visualize pointer movements and memory allocation.",
	Code: `type Node struct {
	Value int
	Next  *Node
}

func traverse(head *Node) {
	for cur := head; cur != nil; cur = cur.Next {
		fmt.Println(cur.Value)
	}
}`,
	TimeComplexity:  Complexity{Best: "O(n)", Average: "O(n)", Worst: "O(n)"},
	SpaceComplexity: "O(1)",
	Generate:        linkedListSteps,
}

var stackHeap = &Definition{
	ID:          stackHeapID,
	Name:        "Stack vs Heap",
	Category:    CategoryMemory,
	Description: "Visualize the difference between stack and heap memory allocation.",
	Code: `func demo() {
	x := 10
	y := 20
	arr := []int{1, 2, 3}
	obj := &struct{ A int }{A: 1}
	arr2 := arr
	arr2[0] = 99
	_, _, _ = x, y, obj
}`,
	TimeComplexity:  Complexity{Best: "O(1)", Average: "O(1)", Worst: "O(1)"},
	SpaceComplexity: "O(n)",
	Generate:        stackHeapSteps,
}
