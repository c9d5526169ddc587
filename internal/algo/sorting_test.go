package algo_test

import (
	"github.com/san-kum/algoviz/internal/step"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var sortingIDs = []string{"bubble-sort", "selection-sort", "insertion-sort", "quick-sort"}

var sortingInputs = map[string][]int{
	"default":    {64, 34, 25, 12, 22, 11, 90, 45},
	"sorted":     {1, 2, 3, 4, 5},
	"reversed":   {5, 4, 3, 2, 1},
	"duplicates": {3, 1, 3, 2, 1},
	"single":     {7},
	"negative":   {0, -4, 9, -1},
}

var _ = Describe("Sorting generators", func() {
	for _, id := range sortingIDs {
		Context(id, func() {
			for name, input := range sortingInputs {
				It("produces a valid sorted trace for "+name+" input", func() {
					steps := generate(id, input)
					Expect(step.Validate(steps)).To(Succeed())

					first := sortingStep(steps[0])
					Expect(first.Array).To(Equal(input))
					Expect(first.ActiveIndices).To(BeEmpty())

					done := sortingStep(last(steps))
					Expect(done.Array).To(Equal(sorted(input)))
					Expect(done.ActiveIndices).To(BeEmpty())
				})

				It("keeps every snapshot a permutation of "+name+" input", func() {
					want := sorted(input)
					for _, s := range generate(id, input) {
						Expect(sorted(sortingStep(s).Array)).To(Equal(want))
					}
				})
			}

			It("only emits sorting operations", func() {
				for _, s := range generate(id, sortingInputs["default"]) {
					Expect(s.Op()).To(BeElementOf(step.OpInitial, step.OpCompare, step.OpSwap, step.OpDone))
				}
			})

			for name, input := range sortingInputs {
				It("changes the array at exactly the swapped pair for "+name+" input", func() {
					steps := generate(id, input)
					for i := 1; i < len(steps); i++ {
						cur := sortingStep(steps[i])
						if cur.Operation != step.OpSwap {
							continue
						}
						prev := sortingStep(steps[i-1])
						Expect(cur.ActiveIndices).To(HaveLen(2))
						Expect(changedIndices(prev.Array, cur.Array)).To(ConsistOf(cur.ActiveIndices[0], cur.ActiveIndices[1]))
						a, b := cur.ActiveIndices[0], cur.ActiveIndices[1]
						Expect(cur.Array[a]).To(Equal(prev.Array[b]))
						Expect(cur.Array[b]).To(Equal(prev.Array[a]))
					}
				})

				It("leaves the array untouched on compare for "+name+" input", func() {
					steps := generate(id, input)
					for i := 1; i < len(steps); i++ {
						cur := sortingStep(steps[i])
						if cur.Operation != step.OpCompare {
							continue
						}
						Expect(len(cur.ActiveIndices)).To(BeNumerically(">=", 1))
						Expect(len(cur.ActiveIndices)).To(BeNumerically("<=", 2))
						Expect(cur.Array).To(Equal(sortingStep(steps[i-1]).Array))
					}
				})
			}

			It("yields initial and done only for empty input", func() {
				steps := generate(id, nil)
				Expect(steps).To(HaveLen(2))
				Expect(steps[0].Op()).To(Equal(step.OpInitial))
				Expect(steps[1].Op()).To(Equal(step.OpDone))
				Expect(sortingStep(steps[1]).Array).To(BeEmpty())
			})

			It("does not modify the caller's input", func() {
				input := []int{3, 2, 1}
				generate(id, input)
				Expect(input).To(Equal([]int{3, 2, 1}))
			})

			It("is deterministic", func() {
				Expect(generate(id, sortingInputs["default"])).To(Equal(generate(id, sortingInputs["default"])))
			})
		})
	}

	It("narrates bubble sort steps in order", func() {
		steps := generate("bubble-sort", []int{3, 1, 2})
		ops := make([]step.Operation, len(steps))
		for i, s := range steps {
			ops[i] = s.Op()
		}
		Expect(ops).To(Equal([]step.Operation{
			step.OpInitial,
			step.OpCompare, step.OpSwap,
			step.OpCompare, step.OpSwap,
			step.OpCompare,
			step.OpDone,
		}))
		Expect(steps[0].Narration()).To(Equal("Initial array state"))
		Expect(last(steps).Narration()).To(Equal("Sorting complete!"))
	})

	It("marks an in-place quick sort pivot without a swap", func() {
		steps := generate("quick-sort", []int{2, 1, 2})
		Expect(steps).To(HaveLen(6))
		placed := sortingStep(steps[4])
		Expect(placed.Operation).To(Equal(step.OpCompare))
		Expect(placed.ActiveIndices).To(Equal([]int{1, 2}))
		Expect(placed.Array).To(Equal([]int{1, 2, 2}))
		Expect(placed.Description).To(ContainSubstring("already in final position 1"))

		steps = generate("quick-sort", []int{1, 2})
		placed = sortingStep(steps[len(steps)-2])
		Expect(placed.Operation).To(Equal(step.OpCompare))
		Expect(placed.ActiveIndices).To(Equal([]int{1}))
		Expect(countOps(steps, step.OpSwap)).To(BeZero())
	})

	It("snapshots are independent of one another", func() {
		steps := generate("bubble-sort", []int{2, 1})
		sortingStep(steps[0]).Array[0] = 99
		Expect(sortingStep(steps[1]).Array).To(Equal([]int{2, 1}))
	})
})
