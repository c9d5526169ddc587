package algo_test

import (
	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/step"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func ids(defs []*algo.Definition) []string {
	out := make([]string, len(defs))
	for i, d := range defs {
		out[i] = d.ID
	}
	return out
}

var _ = Describe("Registry", func() {
	var reg *algo.Registry

	BeforeEach(func() {
		reg = algo.NewRegistry()
	})

	It("registers every algorithm in display order", func() {
		Expect(ids(reg.List())).To(Equal([]string{
			"bubble-sort", "selection-sort", "insertion-sort", "quick-sort",
			"bst-insert", "inorder-traversal", "preorder-traversal", "postorder-traversal",
			"bfs", "dfs", "dijkstra",
			"fibonacci-recursive", "n-queens",
			"linked-list", "stack-heap",
		}))
		Expect(reg.IDs()).To(HaveLen(15))
		Expect(reg.IDs()[0]).To(Equal("bfs"))
	})

	It("resolves the default id", func() {
		def, err := reg.Get(algo.DefaultID)
		Expect(err).NotTo(HaveOccurred())
		Expect(def.Name).To(Equal("Bubble Sort"))
	})

	It("rejects unknown ids", func() {
		_, err := reg.Get("bogo-sort")
		Expect(err).To(MatchError(algo.ErrUnknownAlgorithm))
		Expect(err.Error()).To(ContainSubstring("bogo-sort"))
	})

	It("rejects duplicate registrations", func() {
		def, _ := reg.Get("dfs")
		Expect(reg.Register(def)).To(MatchError(algo.ErrDuplicateAlgorithm))
		Expect(reg.List()).To(HaveLen(15))
	})

	It("builds the built-in set without conflicts", func() {
		Expect(func() { algo.NewRegistry() }).NotTo(Panic())
	})

	It("groups by category", func() {
		Expect(reg.Categories()).To(Equal([]algo.Category{
			algo.CategorySorting, algo.CategoryTrees, algo.CategoryGraphs,
			algo.CategoryRecursion, algo.CategoryMemory,
		}))
		Expect(ids(reg.ByCategory(algo.CategoryRecursion))).To(Equal([]string{"fibonacci-recursive", "n-queens"}))
		Expect(reg.ByCategory(algo.CategorySorting)).To(HaveLen(4))
	})

	DescribeTable("search",
		func(query string, want []string) {
			Expect(ids(reg.Search(query))).To(Equal(want))
		},
		Entry("by name, any case", "QUEEN", []string{"n-queens"}),
		Entry("by category", "graph", []string{"bfs", "dfs", "dijkstra"}),
		Entry("by description", "pointer movements", []string{"linked-list"}),
		Entry("no match", "zzz", nil),
	)

	It("matches everything on an empty query", func() {
		Expect(reg.Search("  ")).To(HaveLen(15))
	})

	It("describes each algorithm fully", func() {
		for _, def := range reg.List() {
			Expect(def.Name).NotTo(BeEmpty(), def.ID)
			Expect(def.Description).NotTo(BeEmpty(), def.ID)
			Expect(def.Code).NotTo(BeEmpty(), def.ID)
			Expect(def.TimeComplexity.Worst).NotTo(BeEmpty(), def.ID)
			Expect(def.SpaceComplexity).NotTo(BeEmpty(), def.ID)
			Expect(def.Generate).NotTo(BeNil(), def.ID)
		}
	})

	It("flags generators that ignore their input", func() {
		for _, id := range []string{"bfs", "dfs", "dijkstra", "stack-heap"} {
			def, _ := reg.Get(id)
			Expect(def.IgnoresInput()).To(BeTrue(), id)
		}
		def, _ := reg.Get("quick-sort")
		Expect(def.IgnoresInput()).To(BeFalse())
	})

	Context("every generator", func() {
		inputs := [][]int{nil, {7}, {64, 34, 25, 12, 22, 11, 90, 45}, {3, 3, 1, 1}}

		It("emits a well-formed trace of its declared kind", func() {
			for _, def := range reg.List() {
				for _, input := range inputs {
					steps := def.Generate(input)
					Expect(step.Validate(steps)).To(Succeed(), "%s %v", def.ID, input)
					Expect(steps[0].Kind()).To(Equal(def.StepKind()), def.ID)
				}
			}
		})

		It("is deterministic", func() {
			for _, def := range reg.List() {
				Expect(def.Generate(inputs[2])).To(Equal(def.Generate(inputs[2])), def.ID)
			}
		})
	})
})
