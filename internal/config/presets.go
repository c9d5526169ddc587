package config

import (
	"fmt"
	"sort"
)

type Preset struct {
	Description string `yaml:"description"`
	Algorithm   string `yaml:"algorithm,omitempty"`
	Input       []int  `yaml:"input"`
}

var Presets = map[string]Preset{
	"default": {
		Description: "Unsorted sample array",
		Input:       []int{64, 34, 25, 12, 22, 11, 90, 45},
	},
	"sorted": {
		Description: "Already sorted, best case for bubble and insertion sort",
		Input:       []int{1, 2, 3, 4, 5, 6, 7, 8},
	},
	"reversed": {
		Description: "Reverse order, worst case for most sorts",
		Input:       []int{8, 7, 6, 5, 4, 3, 2, 1},
	},
	"nearly-sorted": {
		Description: "Sorted except for two neighbours",
		Input:       []int{1, 2, 4, 3, 5, 6, 8, 7},
	},
	"duplicates": {
		Description: "Repeated values",
		Input:       []int{5, 1, 5, 3, 1, 3, 5, 1},
	},
	"single": {
		Description: "One element",
		Input:       []int{42},
	},
	"empty": {
		Description: "No elements",
		Input:       []int{},
	},
	"queens-8": {
		Description: "Classic eight queens board",
		Algorithm:   "n-queens",
		Input:       []int{8},
	},
	"fib-7": {
		Description: "Deepest Fibonacci call tree",
		Algorithm:   "fibonacci-recursive",
		Input:       []int{7},
	},
}

func GetPreset(name string) (Preset, error) {
	p, ok := Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return p, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
