package algo_test

import (
	"github.com/san-kum/algoviz/internal/step"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// visitOrder collects active nodes of visit steps in emission order.
func visitOrder(steps []step.Step) []string {
	var order []string
	for _, s := range steps {
		if s.Op() == step.OpVisit {
			order = append(order, graphStep(s).ActiveNode)
		}
	}
	return order
}

var _ = Describe("Graph generators", func() {
	DescribeTable("traversal order",
		func(id string, want []string) {
			steps := generate(id, nil)
			Expect(step.Validate(steps)).To(Succeed())
			Expect(visitOrder(steps)).To(Equal(want))
			Expect(graphStep(last(steps)).VisitedNodes).To(Equal(want))
		},
		Entry("bfs", "bfs", []string{"A", "B", "C", "D", "E", "F", "G"}),
		Entry("dfs", "dfs", []string{"A", "B", "D", "E", "C", "F", "G"}),
		Entry("dijkstra", "dijkstra", []string{"A", "C", "B", "D", "E"}),
	)

	DescribeTable("ignores its input",
		func(id string) {
			Expect(generate(id, []int{9, 8, 7})).To(Equal(generate(id, nil)))
		},
		Entry("bfs", "bfs"),
		Entry("dfs", "dfs"),
		Entry("dijkstra", "dijkstra"),
	)

	Describe("bfs", func() {
		It("starts with an empty queue then enqueues the source", func() {
			steps := generate("bfs", nil)
			Expect(graphStep(steps[0]).Queue).To(BeEmpty())
			Expect(graphStep(steps[0]).VisitedNodes).To(BeEmpty())
			Expect(steps[1].Op()).To(Equal(step.OpEnqueue))
			Expect(graphStep(steps[1]).Queue).To(Equal([]string{"A"}))
		})

		It("carries an existing edge on every explore step", func() {
			steps := generate("bfs", nil)
			explores := 0
			for _, s := range steps {
				if s.Op() != step.OpExplore {
					continue
				}
				explores++
				g := graphStep(s)
				Expect(g.ActiveEdge).NotTo(BeNil())
				Expect(g.ActiveEdge.From == g.ActiveNode || g.ActiveEdge.To == g.ActiveNode).To(BeTrue())
			}
			Expect(explores).To(Equal(6))
		})

		It("narrates the visit order when done", func() {
			Expect(last(generate("bfs", nil)).Narration()).To(Equal("BFS complete! Visited: A → B → C → D → E → F → G"))
		})

		It("never visits a node twice", func() {
			visited := graphStep(last(generate("bfs", nil))).VisitedNodes
			seen := map[string]bool{}
			for _, id := range visited {
				Expect(seen[id]).To(BeFalse())
				seen[id] = true
			}
		})
	})

	Describe("dfs", func() {
		It("exposes the recursion stack as the queue", func() {
			steps := generate("dfs", nil)
			for _, s := range steps {
				g := graphStep(s)
				if s.Op() == step.OpVisit {
					Expect(g.Queue).NotTo(BeEmpty())
					Expect(g.Queue[len(g.Queue)-1]).To(Equal(g.ActiveNode))
				}
			}
		})

		It("reports visited before the current visit", func() {
			steps := generate("dfs", nil)
			for _, s := range steps {
				g := graphStep(s)
				if s.Op() == step.OpVisit {
					Expect(g.VisitedNodes).NotTo(ContainElement(g.ActiveNode))
				}
			}
		})
	})

	Describe("dijkstra", func() {
		It("starts with every distance infinite except the source", func() {
			g := graphStep(generate("dijkstra", nil)[0])
			Expect(g.Distances).To(HaveLen(5))
			Expect(g.Distances["A"]).To(Equal(step.Distance(0)))
			for _, id := range []string{"B", "C", "D", "E"} {
				Expect(g.Distances[id].IsInfinite()).To(BeTrue())
			}
			Expect(g.Queue).To(Equal([]string{"A"}))
		})

		It("settles the shortest distances", func() {
			steps := generate("dijkstra", nil)
			Expect(graphStep(last(steps)).Distances).To(Equal(map[string]step.Distance{
				"A": 0, "B": 3, "C": 2, "D": 8, "E": 10,
			}))
			Expect(last(steps).Narration()).To(Equal("Dijkstra complete! Shortest distances from A: A=0, B=3, C=2, D=8, E=10"))
		})

		It("only lowers distances", func() {
			steps := generate("dijkstra", nil)
			for i := 1; i < len(steps); i++ {
				prev, cur := graphStep(steps[i-1]), graphStep(steps[i])
				for id, d := range cur.Distances {
					Expect(d).To(BeNumerically("<=", prev.Distances[id]))
				}
			}
		})

		It("carries weighted edges", func() {
			g := graphStep(generate("dijkstra", nil)[0])
			for _, e := range g.Edges {
				Expect(e.Weight).To(BeNumerically(">", 0))
			}
		})
	})
})
