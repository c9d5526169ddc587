package algo_test

import (
	"sort"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/step"

	. "github.com/onsi/gomega"
)

func generate(id string, input []int) []step.Step {
	def, err := algo.NewRegistry().Get(id)
	Expect(err).NotTo(HaveOccurred())
	return def.Generate(input)
}

func sorted(values []int) []int {
	out := append([]int(nil), values...)
	sort.Ints(out)
	return out
}

func countOps(steps []step.Step, op step.Operation) int {
	n := 0
	for _, s := range steps {
		if s.Op() == op {
			n++
		}
	}
	return n
}

func changedIndices(prev, cur []int) []int {
	var out []int
	for i := range cur {
		if prev[i] != cur[i] {
			out = append(out, i)
		}
	}
	return out
}

func last(steps []step.Step) step.Step {
	return steps[len(steps)-1]
}

func sortingStep(s step.Step) *step.SortingStep {
	st, ok := s.(*step.SortingStep)
	Expect(ok).To(BeTrue(), "expected sorting step, got %T", s)
	return st
}

func graphStep(s step.Step) *step.GraphStep {
	st, ok := s.(*step.GraphStep)
	Expect(ok).To(BeTrue(), "expected graph step, got %T", s)
	return st
}

func recursionStep(s step.Step) *step.RecursionStep {
	st, ok := s.(*step.RecursionStep)
	Expect(ok).To(BeTrue(), "expected recursion step, got %T", s)
	return st
}

func memoryStep(s step.Step) *step.MemoryStep {
	st, ok := s.(*step.MemoryStep)
	Expect(ok).To(BeTrue(), "expected memory step, got %T", s)
	return st
}

func treeStep(s step.Step) *step.TreeStep {
	st, ok := s.(*step.TreeStep)
	Expect(ok).To(BeTrue(), "expected tree step, got %T", s)
	return st
}

// inorderValues flattens a tree for shape-independent comparisons.
func inorderValues(n *step.TreeNode) []int {
	if n == nil {
		return nil
	}
	out := inorderValues(n.Left)
	out = append(out, n.Value)
	return append(out, inorderValues(n.Right)...)
}
