package analysis

import (
	"fmt"
	"math/rand"
)

// Shape selects how benchmark inputs are arranged.
type Shape string

const (
	ShapeRandom   Shape = "random"
	ShapeSorted   Shape = "sorted"
	ShapeReversed Shape = "reversed"
)

const maxRandomValue = 100

func ParseShape(s string) (Shape, error) {
	switch Shape(s) {
	case ShapeRandom, ShapeSorted, ShapeReversed:
		return Shape(s), nil
	}
	return "", fmt.Errorf("unknown input shape: %s", s)
}

// MakeInput builds n values of the given shape. rng is only used for
// ShapeRandom.
func MakeInput(shape Shape, n int, rng *rand.Rand) []int {
	values := make([]int, n)
	for i := range values {
		switch shape {
		case ShapeSorted:
			values[i] = i + 1
		case ShapeReversed:
			values[i] = n - i
		default:
			values[i] = rng.Intn(maxRandomValue)
		}
	}
	return values
}

// Sizes returns 1..max.
func Sizes(max int) []int {
	if max < 1 {
		return nil
	}
	sizes := make([]int, max)
	for i := range sizes {
		sizes[i] = i + 1
	}
	return sizes
}
