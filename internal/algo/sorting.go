package algo

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/step"
)

const (
	initialArrayText = "Initial array state"
	sortDoneText     = "Sorting complete!"
)

// sortTrace owns the working array and records a snapshot per emit.
type sortTrace struct {
	arr   []int
	steps []step.Step
}

func newSortTrace(input []int) *sortTrace {
	t := &sortTrace{arr: step.CloneInts(input)}
	if t.arr == nil {
		t.arr = []int{}
	}
	t.emit(step.OpInitial, initialArrayText)
	return t
}

func (t *sortTrace) emit(op step.Operation, desc string, active ...int) {
	idx := make([]int, len(active))
	copy(idx, active)
	t.steps = append(t.steps, &step.SortingStep{
		Array:         step.CloneInts(t.arr),
		ActiveIndices: idx,
		Operation:     op,
		Description:   desc,
	})
}

func (t *sortTrace) swap(i, j int) {
	t.arr[i], t.arr[j] = t.arr[j], t.arr[i]
}

func (t *sortTrace) finish() []step.Step {
	t.emit(step.OpDone, sortDoneText)
	return t.steps
}

func bubbleSortSteps(input []int) []step.Step {
	t := newSortTrace(input)
	n := len(t.arr)

	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			t.emit(step.OpCompare, fmt.Sprintf("Comparing arr[%d]=%d with arr[%d]=%d", j, t.arr[j], j+1, t.arr[j+1]), j, j+1)
			if t.arr[j] > t.arr[j+1] {
				t.swap(j, j+1)
				t.emit(step.OpSwap, fmt.Sprintf("Swapped arr[%d] and arr[%d]", j, j+1), j, j+1)
			}
		}
	}

	return t.finish()
}

func selectionSortSteps(input []int) []step.Step {
	t := newSortTrace(input)
	n := len(t.arr)

	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			t.emit(step.OpCompare, fmt.Sprintf("Comparing arr[%d]=%d with arr[%d]=%d", minIdx, t.arr[minIdx], j, t.arr[j]), minIdx, j)
			if t.arr[j] < t.arr[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			t.swap(i, minIdx)
			t.emit(step.OpSwap, fmt.Sprintf("Swapped arr[%d] and arr[%d]", i, minIdx), i, minIdx)
		}
	}

	return t.finish()
}

// insertionSortSteps sinks each key into the sorted prefix by adjacent
// exchanges, so every snapshot stays a permutation of the input.
func insertionSortSteps(input []int) []step.Step {
	t := newSortTrace(input)
	n := len(t.arr)

	for i := 1; i < n; i++ {
		key := t.arr[i]
		for j := i; j > 0; j-- {
			t.emit(step.OpCompare, fmt.Sprintf("Comparing arr[%d]=%d with key=%d", j-1, t.arr[j-1], key), j-1, j)
			if t.arr[j-1] <= t.arr[j] {
				break
			}
			t.swap(j-1, j)
			t.emit(step.OpSwap, fmt.Sprintf("Shifted arr[%d]=%d right, key=%d moves to position %d", j-1, t.arr[j], key, j-1), j-1, j)
		}
	}

	return t.finish()
}

func quickSortSteps(input []int) []step.Step {
	t := newSortTrace(input)

	var sort func(low, high int)
	sort = func(low, high int) {
		if low < high {
			p := t.partition(low, high)
			sort(low, p-1)
			sort(p+1, high)
		}
	}
	sort(0, len(t.arr)-1)

	return t.finish()
}

// partition is Lomuto's scheme with the last element as pivot.
func (t *sortTrace) partition(low, high int) int {
	pivot := t.arr[high]
	i := low - 1

	for j := low; j < high; j++ {
		t.emit(step.OpCompare, fmt.Sprintf("Comparing arr[%d]=%d with pivot=%d", j, t.arr[j], pivot), j, high)
		if t.arr[j] < pivot {
			i++
			if i != j {
				t.swap(i, j)
				t.emit(step.OpSwap, fmt.Sprintf("Swapped arr[%d] and arr[%d]", i, j), i, j)
			}
		}
	}

	// A placement that moves nothing is marked as a compare so every swap
	// step changes the array.
	p := i + 1
	switch {
	case t.arr[p] != pivot:
		t.swap(p, high)
		t.emit(step.OpSwap, fmt.Sprintf("Placed pivot at position %d", p), p, high)
	case p != high:
		t.emit(step.OpCompare, fmt.Sprintf("Pivot %d equals arr[%d], already in final position %d", pivot, p, p), p, high)
	default:
		t.emit(step.OpCompare, fmt.Sprintf("Pivot %d already in final position %d", pivot, p), p)
	}
	return p
}

var bubbleSort = &Definition{
	ID:       "bubble-sort",
	Name:     "Bubble Sort",
	Category: CategorySorting,
	Description: "A simple comparison-based sorting algorithm that repeatedly steps through the list, " +
		"compares adjacent elements, and swaps them if they are in the wrong order.",
	Code: `func bubbleSort(arr []int) {
	n := len(arr)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if arr[j] > arr[j+1] {
				arr[j], arr[j+1] = arr[j+1], arr[j]
			}
		}
	}
}`,
	TimeComplexity:  Complexity{Best: "O(n)", Average: "O(n²)", Worst: "O(n²)"},
	SpaceComplexity: "O(1)",
	Generate:        bubbleSortSteps,
}

var selectionSort = &Definition{
	ID:       "selection-sort",
	Name:     "Selection Sort",
	Category: CategorySorting,
	Description: "An in-place comparison sorting algorithm that divides the input into a sorted and unsorted region, " +
		"repeatedly selecting the smallest element from the unsorted region.",
	Code: `func selectionSort(arr []int) {
	n := len(arr)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if arr[j] < arr[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			arr[i], arr[minIdx] = arr[minIdx], arr[i]
		}
	}
}`,
	TimeComplexity:  Complexity{Best: "O(n²)", Average: "O(n²)", Worst: "O(n²)"},
	SpaceComplexity: "O(1)",
	Generate:        selectionSortSteps,
}

var insertionSort = &Definition{
	ID:       "insertion-sort",
	Name:     "Insertion Sort",
	Category: CategorySorting,
	Description: "Builds the final sorted array one item at a time by repeatedly picking the next element " +
		"and inserting it into the sorted portion.",
	Code: `func insertionSort(arr []int) {
	for i := 1; i < len(arr); i++ {
		for j := i; j > 0 && arr[j-1] > arr[j]; j-- {
			arr[j-1], arr[j] = arr[j], arr[j-1]
		}
	}
}`,
	TimeComplexity:  Complexity{Best: "O(n)", Average: "O(n²)", Worst: "O(n²)"},
	SpaceComplexity: "O(1)",
	Generate:        insertionSortSteps,
}

var quickSort = &Definition{
	ID:       "quick-sort",
	Name:     "Quick Sort",
	Category: CategorySorting,
	Description: "A divide-and-conquer algorithm that selects a pivot element and partitions the array around it, " +
		"recursively sorting the sub-arrays.",
	Code: `func quickSort(arr []int, low, high int) {
	if low < high {
		p := partition(arr, low, high)
		quickSort(arr, low, p-1)
		quickSort(arr, p+1, high)
	}
}

func partition(arr []int, low, high int) int {
	pivot := arr[high]
	i := low - 1
	for j := low; j < high; j++ {
		if arr[j] < pivot {
			i++
			arr[i], arr[j] = arr[j], arr[i]
		}
	}
	arr[i+1], arr[high] = arr[high], arr[i+1]
	return i + 1
}`,
	TimeComplexity:  Complexity{Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n²)"},
	SpaceComplexity: "O(log n)",
	Generate:        quickSortSteps,
}
