// Package export serialises generated traces as JSON or YAML documents.
package export

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/step"
)

type Document struct {
	Algorithm string        `json:"algorithm" yaml:"algorithm"`
	Name      string        `json:"name" yaml:"name"`
	Category  algo.Category `json:"category" yaml:"category"`
	Input     []int         `json:"input" yaml:"input"`
	Total     int           `json:"total" yaml:"total"`
	Steps     []Envelope    `json:"steps" yaml:"steps"`
}

// Envelope tags a step with its kind so documents can be decoded back into
// concrete step types.
type Envelope struct {
	Index int       `json:"index" yaml:"index"`
	Type  step.Kind `json:"type" yaml:"type"`
	Step  step.Step `json:"step" yaml:"step"`
}

func NewDocument(def *algo.Definition, input []int, steps []step.Step) *Document {
	doc := &Document{
		Algorithm: def.ID,
		Name:      def.Name,
		Category:  def.Category,
		Input:     step.CloneInts(input),
		Total:     len(steps),
		Steps:     make([]Envelope, len(steps)),
	}
	if doc.Input == nil {
		doc.Input = []int{}
	}
	for i, s := range steps {
		doc.Steps[i] = Envelope{Index: i, Type: s.Kind(), Step: s}
	}
	return doc
}

// Sequence returns the decoded steps in order.
func (d *Document) Sequence() []step.Step {
	out := make([]step.Step, len(d.Steps))
	for i, env := range d.Steps {
		out[i] = env.Step
	}
	return out
}

func newStep(kind step.Kind) (step.Step, error) {
	switch kind {
	case step.KindSorting:
		return &step.SortingStep{}, nil
	case step.KindTree:
		return &step.TreeStep{}, nil
	case step.KindGraph:
		return &step.GraphStep{}, nil
	case step.KindRecursion:
		return &step.RecursionStep{}, nil
	case step.KindMemory:
		return &step.MemoryStep{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

func (e *Envelope) UnmarshalJSON(data []byte) error {
	var raw struct {
		Index int             `json:"index"`
		Type  step.Kind       `json:"type"`
		Step  json.RawMessage `json:"step"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s, err := newStep(raw.Type)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw.Step, s); err != nil {
		return fmt.Errorf("step %d: %w", raw.Index, err)
	}
	restorePayloads(s)
	e.Index, e.Type, e.Step = raw.Index, raw.Type, s
	return nil
}

func (e *Envelope) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Index int       `yaml:"index"`
		Type  step.Kind `yaml:"type"`
		Step  yaml.Node `yaml:"step"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	s, err := newStep(raw.Type)
	if err != nil {
		return err
	}
	if err := raw.Step.Decode(s); err != nil {
		return fmt.Errorf("step %d: %w", raw.Index, err)
	}
	restorePayloads(s)
	e.Index, e.Type, e.Step = raw.Index, raw.Type, s
	return nil
}
