package algo_test

import (
	"github.com/san-kum/algoviz/internal/step"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func blockByID(blocks []step.MemoryBlock, id string) *step.MemoryBlock {
	for i := range blocks {
		if blocks[i].ID == id {
			return &blocks[i]
		}
	}
	return nil
}

var _ = Describe("Memory generators", func() {
	Describe("linked-list", func() {
		It("traverses every node once", func() {
			steps := generate("linked-list", []int{10, 20, 30})
			Expect(step.Validate(steps)).To(Succeed())
			Expect(steps).To(HaveLen(8))
			Expect(countOps(steps, step.OpTraverse)).To(Equal(3))
			Expect(countOps(steps, step.OpUpdate)).To(Equal(2))
			Expect(last(steps).Narration()).To(Equal("Traversal complete! Visited all 3 nodes."))
		})

		It("links nodes by address", func() {
			heap := memoryStep(generate("linked-list", []int{10, 20})[0]).HeapMemory
			Expect(heap).To(HaveLen(2))
			Expect(heap[0].Address).To(Equal("0x3e8"))
			Expect(heap[0].Value).To(Equal(&step.ListNode{Value: 10, Next: "0x3f0"}))
			Expect(heap[0].PointsTo).To(Equal("node-1"))
			Expect(heap[1].Value).To(Equal(&step.ListNode{Value: 20, Next: "null"}))
			Expect(heap[1].PointsTo).To(BeEmpty())
		})

		It("moves the current pointer along the list", func() {
			steps := generate("linked-list", []int{1, 2, 3})
			var targets []string
			for _, s := range steps {
				if s.Op() != step.OpTraverse {
					continue
				}
				m := memoryStep(s)
				Expect(m.Pointers).To(ContainElement(step.Pointer{From: "head", To: "node-0"}))
				for _, p := range m.Pointers {
					if p.From == "current" {
						targets = append(targets, p.To)
					}
				}
			}
			Expect(targets).To(Equal([]string{"node-0", "node-1", "node-2"}))
		})

		It("marks only the visited node", func() {
			steps := generate("linked-list", []int{1, 2, 3})
			for _, s := range steps {
				if s.Op() != step.OpTraverse {
					continue
				}
				marked := 0
				for _, b := range memoryStep(s).HeapMemory {
					if len(b.Name) > len("Node 0") {
						marked++
					}
				}
				Expect(marked).To(Equal(1))
			}
		})

		It("uses the default list for empty input", func() {
			heap := memoryStep(generate("linked-list", nil)[0]).HeapMemory
			Expect(heap).To(HaveLen(5))
			Expect(heap[4].Value).To(Equal(&step.ListNode{Value: 50, Next: "null"}))
		})

		It("caps the list at six nodes", func() {
			heap := memoryStep(generate("linked-list", []int{1, 2, 3, 4, 5, 6, 7, 8})[0]).HeapMemory
			Expect(heap).To(HaveLen(6))
		})
	})

	Describe("stack-heap", func() {
		It("plays the fixed script", func() {
			steps := generate("stack-heap", nil)
			Expect(step.Validate(steps)).To(Succeed())
			Expect(steps).To(HaveLen(8))
			Expect(countOps(steps, step.OpAllocate)).To(Equal(5))

			first := memoryStep(steps[0])
			Expect(first.StackMemory).To(BeEmpty())
			Expect(first.HeapMemory).To(BeEmpty())
		})

		It("aliases arr and arr2 to one heap block", func() {
			done := memoryStep(last(generate("stack-heap", nil)))
			arr := blockByID(done.StackMemory, "arr")
			arr2 := blockByID(done.StackMemory, "arr2")
			Expect(arr).NotTo(BeNil())
			Expect(arr2).NotTo(BeNil())
			Expect(arr.PointsTo).To(Equal("arr-heap"))
			Expect(arr2.PointsTo).To(Equal("arr-heap"))
			Expect(blockByID(done.HeapMemory, "arr-heap").Value).To(Equal([]int{99, 2, 3}))
		})

		It("keeps earlier snapshots unmodified by the update", func() {
			steps := generate("stack-heap", nil)
			before := memoryStep(steps[5])
			Expect(blockByID(before.HeapMemory, "arr-heap").Value).To(Equal([]int{1, 2, 3}))
		})

		It("ignores its input", func() {
			Expect(generate("stack-heap", []int{1, 2})).To(Equal(generate("stack-heap", nil)))
		})
	})
})
