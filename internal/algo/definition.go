package algo

import "github.com/san-kum/algoviz/internal/step"

type Category string

const (
	CategorySorting   Category = "sorting"
	CategoryTrees     Category = "trees"
	CategoryGraphs    Category = "graphs"
	CategoryRecursion Category = "recursion"
	CategoryMemory    Category = "memory"
)

// Categories in display order.
var categoryOrder = []Category{
	CategorySorting,
	CategoryTrees,
	CategoryGraphs,
	CategoryRecursion,
	CategoryMemory,
}

type Complexity struct {
	Best    string `json:"best" yaml:"best"`
	Average string `json:"average" yaml:"average"`
	Worst   string `json:"worst" yaml:"worst"`
}

// Generator maps an input to a complete step sequence.
type Generator func(input []int) []step.Step

// Definition is the static description of one algorithm.
type Definition struct {
	ID              string     `json:"id" yaml:"id"`
	Name            string     `json:"name" yaml:"name"`
	Category        Category   `json:"category" yaml:"category"`
	Description     string     `json:"description" yaml:"description"`
	Code            string     `json:"code" yaml:"code"`
	TimeComplexity  Complexity `json:"timeComplexity" yaml:"timeComplexity"`
	SpaceComplexity string     `json:"spaceComplexity" yaml:"spaceComplexity"`
	Generate        Generator  `json:"-" yaml:"-"`
}

// StepKind is the kind of step the definition's generator produces.
func (d *Definition) StepKind() step.Kind {
	switch d.Category {
	case CategorySorting:
		return step.KindSorting
	case CategoryTrees:
		return step.KindTree
	case CategoryGraphs:
		return step.KindGraph
	case CategoryRecursion:
		return step.KindRecursion
	default:
		return step.KindMemory
	}
}

// IgnoresInput reports whether the generator walks a fixed built-in data set.
func (d *Definition) IgnoresInput() bool {
	return d.Category == CategoryGraphs || d.ID == stackHeapID
}
