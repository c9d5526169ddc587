package analysis

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/step"
)

func TestMakeInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tests := []struct {
		shape    Shape
		expected []int
	}{
		{ShapeSorted, []int{1, 2, 3, 4}},
		{ShapeReversed, []int{4, 3, 2, 1}},
	}

	for _, tt := range tests {
		got := MakeInput(tt.shape, 4, rng)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("%s: expected %v, got %v", tt.shape, tt.expected, got)
		}
	}

	random := MakeInput(ShapeRandom, 50, rng)
	for _, v := range random {
		if v < 0 || v >= maxRandomValue {
			t.Errorf("random value %d out of range", v)
		}
	}
}

func TestParseShape(t *testing.T) {
	if s, err := ParseShape("reversed"); err != nil || s != ShapeReversed {
		t.Errorf("expected reversed, got %q %v", s, err)
	}
	if _, err := ParseShape("zigzag"); err == nil {
		t.Error("expected error for unknown shape")
	}
}

func TestSizes(t *testing.T) {
	if got := Sizes(3); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("got %v", got)
	}
	if got := Sizes(0); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestProfile_BubbleSortReversed(t *testing.T) {
	def, err := algo.NewRegistry().Get("bubble-sort")
	if err != nil {
		t.Fatal(err)
	}

	samples := Profile(def, []int{2, 4, 8}, ShapeReversed, 1)
	if len(samples) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(samples))
	}

	for _, s := range samples {
		// reversed input: every comparison swaps
		want := s.Size * (s.Size - 1) / 2
		if s.Count(step.OpCompare) != want || s.Count(step.OpSwap) != want {
			t.Errorf("size %d: expected %d compares and swaps, got %v", s.Size, want, s.Ops)
		}
		if s.Count("") != s.Steps || s.Steps != 2*want+2 {
			t.Errorf("size %d: unexpected total %d", s.Size, s.Steps)
		}
	}
}

func TestProfile_Deterministic(t *testing.T) {
	def, err := algo.NewRegistry().Get("quick-sort")
	if err != nil {
		t.Fatal(err)
	}

	a := Profile(def, Sizes(10), ShapeRandom, 42)
	b := Profile(def, Sizes(10), ShapeRandom, 42)
	if !reflect.DeepEqual(a, b) {
		t.Error("profiles with the same seed differ")
	}
}

func TestPlot(t *testing.T) {
	if Plot(nil, step.OpCompare) != "" {
		t.Error("expected empty plot for no samples")
	}

	samples := []Sample{
		{Size: 1, Steps: 2, Ops: map[step.Operation]int{step.OpCompare: 0}},
		{Size: 2, Steps: 4, Ops: map[step.Operation]int{step.OpCompare: 1}},
		{Size: 3, Steps: 8, Ops: map[step.Operation]int{step.OpCompare: 3}},
	}
	out := Plot(samples, step.OpCompare)
	if !strings.Contains(out, "compare steps per input size") {
		t.Errorf("missing caption in %q", out)
	}
	if !strings.Contains(Plot(samples, ""), "steps per input size") {
		t.Error("missing caption for total plot")
	}
}
