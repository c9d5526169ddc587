package algo_test

import (
	"github.com/san-kum/algoviz/internal/step"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func queensSafe(board [][]int) bool {
	n := len(board)
	var rows, cols []int
	for r := range board {
		for c := range board[r] {
			if board[r][c] == 1 {
				rows = append(rows, r)
				cols = append(cols, c)
			}
		}
	}
	if len(rows) != n {
		return false
	}
	for i := range rows {
		for j := i + 1; j < len(rows); j++ {
			dr, dc := rows[i]-rows[j], cols[i]-cols[j]
			if dr == 0 || dc == 0 || dr == dc || dr == -dc {
				return false
			}
		}
	}
	return true
}

// maxDepth reports the deepest call stack seen across a trace.
func maxDepth(steps []step.Step) int {
	depth := 0
	for _, s := range steps {
		if d := len(recursionStep(s).StackFrames); d > depth {
			depth = d
		}
	}
	return depth
}

var _ = Describe("Recursion generators", func() {
	Describe("fibonacci-recursive", func() {
		It("computes fib(5) with the expected number of calls", func() {
			steps := generate("fibonacci-recursive", []int{5})
			Expect(step.Validate(steps)).To(Succeed())
			Expect(countOps(steps, step.OpPush)).To(Equal(15))
			Expect(countOps(steps, step.OpPop)).To(Equal(15))
			Expect(last(steps).Narration()).To(Equal("Fibonacci calculation complete! fib(5) = 5"))
		})

		It("bounds stack depth by n", func() {
			Expect(maxDepth(generate("fibonacci-recursive", []int{5}))).To(Equal(5))
		})

		It("starts and ends with an empty stack", func() {
			steps := generate("fibonacci-recursive", []int{4})
			Expect(recursionStep(steps[0]).StackFrames).To(BeEmpty())
			Expect(recursionStep(last(steps)).StackFrames).To(BeEmpty())
		})

		It("records the return value before popping", func() {
			steps := generate("fibonacci-recursive", []int{3})
			for i := 1; i < len(steps); i++ {
				if steps[i].Op() != step.OpPop {
					continue
				}
				frames := recursionStep(steps[i-1]).StackFrames
				top := frames[len(frames)-1]
				Expect(top.ReturnValue).NotTo(BeNil())
				Expect(top.Active).To(BeFalse())
			}
		})

		It("keeps frame ids unique per call", func() {
			seen := map[string]bool{}
			for _, s := range generate("fibonacci-recursive", []int{4}) {
				if s.Op() != step.OpPush {
					continue
				}
				frames := recursionStep(s).StackFrames
				id := frames[len(frames)-1].ID
				Expect(seen[id]).To(BeFalse())
				seen[id] = true
			}
		})

		DescribeTable("clamps n",
			func(input []int, want string) {
				Expect(last(generate("fibonacci-recursive", input)).Narration()).To(Equal(want))
			},
			Entry("default on empty input", nil, "Fibonacci calculation complete! fib(5) = 5"),
			Entry("zero selects the default", []int{0}, "Fibonacci calculation complete! fib(5) = 5"),
			Entry("negative raised to one", []int{-3}, "Fibonacci calculation complete! fib(1) = 1"),
			Entry("large lowered to seven", []int{30}, "Fibonacci calculation complete! fib(7) = 13"),
		)
	})

	Describe("n-queens", func() {
		It("places four non-attacking queens", func() {
			steps := generate("n-queens", []int{4})
			Expect(step.Validate(steps)).To(Succeed())

			done := recursionStep(last(steps))
			Expect(done.BoardState).To(Equal([][]int{
				{0, 1, 0, 0},
				{0, 0, 0, 1},
				{1, 0, 0, 0},
				{0, 0, 1, 0},
			}))
			Expect(queensSafe(done.BoardState)).To(BeTrue())
			Expect(done.StackFrames).To(BeEmpty())
			Expect(done.Narration()).To(Equal("N-Queens problem solved!"))
		})

		It("backtracks before finding a solution", func() {
			Expect(countOps(generate("n-queens", []int{4}), step.OpBacktrack)).To(BeNumerically(">", 0))
		})

		It("unwinds every frame it pushes", func() {
			steps := generate("n-queens", []int{5})
			Expect(countOps(steps, step.OpPush)).To(Equal(countOps(steps, step.OpPop)))
		})

		It("never shows an attacked pair of queens", func() {
			for _, s := range generate("n-queens", []int{6}) {
				board := recursionStep(s).BoardState
				Expect(board).To(HaveLen(6))
				placed := 0
				for _, row := range board {
					for _, v := range row {
						placed += v
					}
				}
				if placed == 6 {
					Expect(queensSafe(board)).To(BeTrue())
				}
			}
		})

		DescribeTable("clamps the board size",
			func(input []int, want int) {
				Expect(recursionStep(generate("n-queens", input)[0]).BoardState).To(HaveLen(want))
			},
			Entry("default on empty input", nil, 4),
			Entry("zero selects the default", []int{0}, 4),
			Entry("small raised to four", []int{2}, 4),
			Entry("large lowered to eight", []int{12}, 8),
			Entry("in range kept", []int{6}, 6),
		)
	})
})
