package algo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/algoviz/internal/step"
)

const startNode = "A"

// sampleGraph is the unweighted tree-shaped graph BFS and DFS walk.
func sampleGraph() ([]step.GraphNode, []step.GraphEdge) {
	nodes := []step.GraphNode{
		{ID: "A", Label: "A", X: 200, Y: 50},
		{ID: "B", Label: "B", X: 100, Y: 150},
		{ID: "C", Label: "C", X: 300, Y: 150},
		{ID: "D", Label: "D", X: 50, Y: 250},
		{ID: "E", Label: "E", X: 150, Y: 250},
		{ID: "F", Label: "F", X: 250, Y: 250},
		{ID: "G", Label: "G", X: 350, Y: 250},
	}
	edges := []step.GraphEdge{
		{From: "A", To: "B"},
		{From: "A", To: "C"},
		{From: "B", To: "D"},
		{From: "B", To: "E"},
		{From: "C", To: "F"},
		{From: "C", To: "G"},
	}
	return nodes, edges
}

func weightedGraph() ([]step.GraphNode, []step.GraphEdge) {
	nodes := []step.GraphNode{
		{ID: "A", Label: "A", X: 100, Y: 100},
		{ID: "B", Label: "B", X: 250, Y: 50},
		{ID: "C", Label: "C", X: 250, Y: 180},
		{ID: "D", Label: "D", X: 400, Y: 100},
		{ID: "E", Label: "E", X: 400, Y: 220},
	}
	edges := []step.GraphEdge{
		{From: "A", To: "B", Weight: 4},
		{From: "A", To: "C", Weight: 2},
		{From: "B", To: "C", Weight: 1},
		{From: "B", To: "D", Weight: 5},
		{From: "C", To: "D", Weight: 8},
		{From: "C", To: "E", Weight: 10},
		{From: "D", To: "E", Weight: 2},
	}
	return nodes, edges
}

type neighbor struct {
	id     string
	weight int
}

// adjacency lists neighbours in edge order, both directions.
func adjacency(nodes []step.GraphNode, edges []step.GraphEdge) map[string][]neighbor {
	adj := make(map[string][]neighbor, len(nodes))
	for _, n := range nodes {
		adj[n.ID] = nil
	}
	for _, e := range edges {
		adj[e.From] = append(adj[e.From], neighbor{id: e.To, weight: e.Weight})
		adj[e.To] = append(adj[e.To], neighbor{id: e.From, weight: e.Weight})
	}
	return adj
}

func findEdge(edges []step.GraphEdge, a, b string) *step.GraphEdge {
	for _, e := range edges {
		if e.Connects(a, b) {
			found := e
			return &found
		}
	}
	return nil
}

// graphTrace snapshots the fixed node/edge set together with the per-step
// traversal state.
type graphTrace struct {
	nodes []step.GraphNode
	edges []step.GraphEdge
	steps []step.Step
}

type graphState struct {
	visited   []string
	active    string
	edge      *step.GraphEdge
	queue     []string
	distances map[string]step.Distance
}

func (t *graphTrace) emit(op step.Operation, st graphState, desc string) {
	s := &step.GraphStep{
		Nodes:        step.CloneNodes(t.nodes),
		Edges:        step.CloneEdges(t.edges),
		VisitedNodes: step.CloneStrings(st.visited),
		ActiveNode:   st.active,
		Queue:        step.CloneStrings(st.queue),
		Distances:    step.CloneDistances(st.distances),
		Operation:    op,
		Description:  desc,
	}
	if s.VisitedNodes == nil {
		s.VisitedNodes = []string{}
	}
	if s.Queue == nil {
		s.Queue = []string{}
	}
	if st.edge != nil {
		e := *st.edge
		s.ActiveEdge = &e
	}
	t.steps = append(t.steps, s)
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

func bfsSteps(_ []int) []step.Step {
	nodes, edges := sampleGraph()
	adj := adjacency(nodes, edges)
	t := &graphTrace{nodes: nodes, edges: edges}

	t.emit(step.OpInitial, graphState{}, "Starting BFS from node "+startNode)

	var visited []string
	seen := make(map[string]bool)
	queue := []string{startNode}
	t.emit(step.OpEnqueue, graphState{queue: queue}, fmt.Sprintf("Added starting node %s to queue", startNode))

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if seen[cur] {
			continue
		}

		t.emit(step.OpDequeue, graphState{visited: visited, active: cur, queue: queue}, "Dequeued node "+cur)

		seen[cur] = true
		visited = append(visited, cur)
		t.emit(step.OpVisit, graphState{visited: visited, active: cur, queue: queue}, "Visiting node "+cur)

		for _, nb := range adj[cur] {
			if seen[nb.id] || contains(queue, nb.id) {
				continue
			}
			queue = append(queue, nb.id)
			t.emit(step.OpExplore, graphState{
				visited: visited,
				active:  cur,
				edge:    findEdge(edges, cur, nb.id),
				queue:   queue,
			}, fmt.Sprintf("Exploring edge to %s, adding to queue", nb.id))
		}
	}

	t.emit(step.OpDone, graphState{visited: visited}, "BFS complete! Visited: "+strings.Join(visited, " → "))
	return t.steps
}

func dfsSteps(_ []int) []step.Step {
	nodes, edges := sampleGraph()
	adj := adjacency(nodes, edges)
	t := &graphTrace{nodes: nodes, edges: edges}

	var visited []string
	seen := make(map[string]bool)
	var stack []string

	t.emit(step.OpInitial, graphState{}, "Starting DFS from node "+startNode)

	var walk func(cur string)
	walk = func(cur string) {
		if seen[cur] {
			return
		}
		stack = append(stack, cur)
		t.emit(step.OpVisit, graphState{visited: visited, active: cur, queue: stack}, "Visiting node "+cur)
		seen[cur] = true
		visited = append(visited, cur)

		for _, nb := range adj[cur] {
			if seen[nb.id] {
				continue
			}
			t.emit(step.OpExplore, graphState{
				visited: visited,
				active:  cur,
				edge:    findEdge(edges, cur, nb.id),
				queue:   stack,
			}, "Exploring edge to "+nb.id)
			walk(nb.id)
		}
		stack = stack[:len(stack)-1]
	}
	walk(startNode)

	t.emit(step.OpDone, graphState{visited: visited}, "DFS complete! Visited: "+strings.Join(visited, " → "))
	return t.steps
}

type pqEntry struct {
	dist int
	node string
}

func pqNodes(pq []pqEntry) []string {
	out := make([]string, len(pq))
	for i, e := range pq {
		out[i] = e.node
	}
	return out
}

// dijkstraSteps keeps its frontier as a plain list that is stable-sorted by
// distance before every pop. The demo graph has five nodes.
func dijkstraSteps(_ []int) []step.Step {
	nodes, edges := weightedGraph()
	adj := adjacency(nodes, edges)
	t := &graphTrace{nodes: nodes, edges: edges}

	dist := make(map[string]step.Distance, len(nodes))
	for _, n := range nodes {
		dist[n.ID] = step.Infinity
	}
	dist[startNode] = 0

	var visited []string
	seen := make(map[string]bool)
	pq := []pqEntry{{dist: 0, node: startNode}}

	t.emit(step.OpInitial, graphState{queue: pqNodes(pq), distances: dist},
		fmt.Sprintf("Starting Dijkstra from node %s. All distances set to ∞ except %s=0", startNode, startNode))

	for len(pq) > 0 {
		sort.SliceStable(pq, func(i, j int) bool { return pq[i].dist < pq[j].dist })
		cur := pq[0]
		pq = pq[1:]
		if seen[cur.node] {
			continue
		}

		t.emit(step.OpDequeue, graphState{visited: visited, active: cur.node, queue: pqNodes(pq), distances: dist},
			fmt.Sprintf("Processing node %s with distance %d", cur.node, cur.dist))

		seen[cur.node] = true
		visited = append(visited, cur.node)
		t.emit(step.OpVisit, graphState{visited: visited, active: cur.node, queue: pqNodes(pq), distances: dist},
			fmt.Sprintf("Marked node %s as visited", cur.node))

		for _, nb := range adj[cur.node] {
			if seen[nb.id] {
				continue
			}
			next := cur.dist + nb.weight
			if step.Distance(next) >= dist[nb.id] {
				continue
			}
			dist[nb.id] = step.Distance(next)
			pq = append(pq, pqEntry{dist: next, node: nb.id})
			t.emit(step.OpExplore, graphState{
				visited:   visited,
				active:    cur.node,
				edge:      findEdge(edges, cur.node, nb.id),
				queue:     pqNodes(pq),
				distances: dist,
			}, fmt.Sprintf("Updated distance to %s: %d (via %s)", nb.id, next, cur.node))
		}
	}

	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = fmt.Sprintf("%s=%s", n.ID, dist[n.ID])
	}
	t.emit(step.OpDone, graphState{visited: visited, distances: dist},
		fmt.Sprintf("Dijkstra complete! Shortest distances from %s: %s", startNode, strings.Join(parts, ", ")))
	return t.steps
}

var bfs = &Definition{
	ID:          "bfs",
	Name:        "Breadth-First Search",
	Category:    CategoryGraphs,
	Description: "Explore all neighbors at current depth before moving to nodes at next depth level.",
	Code: `func bfs(adj map[string][]string, start string) []string {
	visited := map[string]bool{}
	queue := []string{start}
	var order []string
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if visited[node] {
			continue
		}
		visited[node] = true
		order = append(order, node)
		for _, nb := range adj[node] {
			if !visited[nb] {
				queue = append(queue, nb)
			}
		}
	}
	return order
}`,
	TimeComplexity:  Complexity{Best: "O(V + E)", Average: "O(V + E)", Worst: "O(V + E)"},
	SpaceComplexity: "O(V)",
	Generate:        bfsSteps,
}

var dfs = &Definition{
	ID:          "dfs",
	Name:        "Depth-First Search",
	Category:    CategoryGraphs,
	Description: "Explore as far as possible along each branch before backtracking.",
	Code: `func dfs(adj map[string][]string, start string) []string {
	visited := map[string]bool{}
	var order []string
	var explore func(string)
	explore = func(node string) {
		if visited[node] {
			return
		}
		visited[node] = true
		order = append(order, node)
		for _, nb := range adj[node] {
			explore(nb)
		}
	}
	explore(start)
	return order
}`,
	TimeComplexity:  Complexity{Best: "O(V + E)", Average: "O(V + E)", Worst: "O(V + E)"},
	SpaceComplexity: "O(V)",
	Generate:        dfsSteps,
}

var dijkstra = &Definition{
	ID:          "dijkstra",
	Name:        "Dijkstra's Algorithm",
	Category:    CategoryGraphs,
	Description: "Find the shortest path from a source node to all other nodes in a weighted graph.",
	Code: `func dijkstra(adj map[string][]Edge, start string) map[string]int {
	dist := map[string]int{start: 0}
	visited := map[string]bool{}
	pq := []Item{{Dist: 0, Node: start}}
	for len(pq) > 0 {
		sort.SliceStable(pq, func(i, j int) bool { return pq[i].Dist < pq[j].Dist })
		cur := pq[0]
		pq = pq[1:]
		if visited[cur.Node] {
			continue
		}
		visited[cur.Node] = true
		for _, e := range adj[cur.Node] {
			d := cur.Dist + e.Weight
			if old, ok := dist[e.To]; !ok || d < old {
				dist[e.To] = d
				pq = append(pq, Item{Dist: d, Node: e.To})
			}
		}
	}
	return dist
}`,
	TimeComplexity:  Complexity{Best: "O((V + E) log V)", Average: "O((V + E) log V)", Worst: "O((V + E) log V)"},
	SpaceComplexity: "O(V)",
	Generate:        dijkstraSteps,
}
