package algo_test

import (
	"github.com/san-kum/algoviz/internal/step"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Tree generators", func() {
	input := []int{50, 30, 70, 20, 40}

	Describe("bst-insert", func() {
		It("inserts every value and keeps BST order", func() {
			steps := generate("bst-insert", input)
			Expect(step.Validate(steps)).To(Succeed())
			Expect(countOps(steps, step.OpInsert)).To(Equal(len(input)))

			root := treeStep(last(steps)).Root
			Expect(root.Value).To(Equal(50))
			Expect(inorderValues(root)).To(Equal(sorted(input)))
		})

		It("starts from an empty tree", func() {
			steps := generate("bst-insert", input)
			Expect(treeStep(steps[0]).Root).To(BeNil())
			Expect(treeStep(steps[1]).Root.Value).To(Equal(50))
		})

		It("sends ties to the right", func() {
			root := treeStep(last(generate("bst-insert", []int{5, 5}))).Root
			Expect(root.Left).To(BeNil())
			Expect(root.Right).NotTo(BeNil())
			Expect(root.Right.Value).To(Equal(5))
		})

		It("highlights the comparison path", func() {
			steps := generate("bst-insert", []int{50, 30, 40})
			var paths [][]string
			for _, s := range steps {
				if s.Op() == step.OpCompare {
					paths = append(paths, treeStep(s).HighlightedNodes)
				}
			}
			Expect(paths).To(Equal([][]string{
				{"node-1"},
				{"node-1"},
				{"node-1", "node-2"},
			}))
		})

		It("handles empty input", func() {
			steps := generate("bst-insert", nil)
			Expect(steps).To(HaveLen(2))
			Expect(treeStep(last(steps)).Root).To(BeNil())
		})
	})

	DescribeTable("traversals",
		func(id string, want []int) {
			steps := generate(id, input)
			Expect(step.Validate(steps)).To(Succeed())
			Expect(countOps(steps, step.OpVisit)).To(Equal(len(input)))
			Expect(treeStep(last(steps)).TraversalOrder).To(Equal(want))

			for _, s := range steps {
				if s.Op() == step.OpVisit {
					Expect(treeStep(s).HighlightedNodes).To(HaveLen(1))
				}
			}
		},
		Entry("inorder", "inorder-traversal", []int{20, 30, 40, 50, 70}),
		Entry("preorder", "preorder-traversal", []int{50, 30, 20, 40, 70}),
		Entry("postorder", "postorder-traversal", []int{20, 40, 30, 70, 50}),
	)

	It("grows the traversal order one value per visit", func() {
		steps := generate("inorder-traversal", input)
		prev := 0
		for _, s := range steps[1:] {
			n := len(treeStep(s).TraversalOrder)
			if s.Op() == step.OpVisit {
				Expect(n).To(Equal(prev + 1))
			}
			prev = n
		}
	})
})
