package algo

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultID is the algorithm selected when nothing else is asked for.
const DefaultID = "bubble-sort"

// Registry maps algorithm ids to their definitions and keeps registration
// order for listing.
type Registry struct {
	defs  map[string]*Definition
	order []string
}

func NewRegistry() *Registry {
	r := &Registry{defs: make(map[string]*Definition)}
	for _, d := range []*Definition{
		bubbleSort,
		selectionSort,
		insertionSort,
		quickSort,
		bstInsert,
		inorderTraversal,
		preorderTraversal,
		postorderTraversal,
		bfs,
		dfs,
		dijkstra,
		fibonacciRecursive,
		nQueens,
		linkedList,
		stackHeap,
	} {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
	return r
}

func (r *Registry) Register(d *Definition) error {
	if _, ok := r.defs[d.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateAlgorithm, d.ID)
	}
	r.defs[d.ID] = d
	r.order = append(r.order, d.ID)
	return nil
}

func (r *Registry) Get(id string) (*Definition, error) {
	d, ok := r.defs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, id)
	}
	return d, nil
}

// List returns definitions in registration order.
func (r *Registry) List() []*Definition {
	out := make([]*Definition, len(r.order))
	for i, id := range r.order {
		out[i] = r.defs[id]
	}
	return out
}

// IDs returns the registered ids sorted alphabetically.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	sort.Strings(ids)
	return ids
}

func (r *Registry) ByCategory(c Category) []*Definition {
	var out []*Definition
	for _, id := range r.order {
		if d := r.defs[id]; d.Category == c {
			out = append(out, d)
		}
	}
	return out
}

// Categories lists the categories that have at least one definition, in
// display order.
func (r *Registry) Categories() []Category {
	var out []Category
	for _, c := range categoryOrder {
		if len(r.ByCategory(c)) > 0 {
			out = append(out, c)
		}
	}
	return out
}

// Search matches query case-insensitively against name, description and
// category. An empty query matches everything.
func (r *Registry) Search(query string) []*Definition {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []*Definition
	for _, d := range r.List() {
		if strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Description), q) ||
			strings.Contains(string(d.Category), q) {
			out = append(out, d)
		}
	}
	return out
}
