package analysis

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/step"
)

// Sample is the step census of one generated trace.
type Sample struct {
	Size  int
	Steps int
	Ops   map[step.Operation]int
}

func (s Sample) Count(op step.Operation) int {
	if op == "" {
		return s.Steps
	}
	return s.Ops[op]
}

func Count(steps []step.Step) map[step.Operation]int {
	ops := make(map[step.Operation]int)
	for _, s := range steps {
		ops[s.Op()]++
	}
	return ops
}

// Profile generates one trace per size concurrently. Each size draws from
// its own rng seeded with seed+index, so results do not depend on
// scheduling.
func Profile(def *algo.Definition, sizes []int, shape Shape, seed int64) []Sample {
	samples := make([]Sample, len(sizes))

	var wg sync.WaitGroup
	for i, n := range sizes {
		wg.Add(1)
		go func(idx, size int) {
			defer wg.Done()

			rng := rand.New(rand.NewSource(seed + int64(idx)))
			steps := def.Generate(MakeInput(shape, size, rng))
			samples[idx] = Sample{Size: size, Steps: len(steps), Ops: Count(steps)}
		}(i, n)
	}
	wg.Wait()

	return samples
}

// Plot charts op counts against input size. An empty op plots total steps.
func Plot(samples []Sample, op step.Operation) string {
	if len(samples) == 0 {
		return ""
	}

	data := make([]float64, len(samples))
	for i, s := range samples {
		data[i] = float64(s.Count(op))
	}

	caption := "steps per input size"
	if op != "" {
		caption = fmt.Sprintf("%s steps per input size", op)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
	)
}
