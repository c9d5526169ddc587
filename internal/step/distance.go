package step

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Distance is a shortest-path estimate. Infinity marks a node that has not
// been reached yet.
type Distance int

const Infinity Distance = math.MaxInt

func (d Distance) IsInfinite() bool { return d == Infinity }

func (d Distance) String() string {
	if d.IsInfinite() {
		return "∞"
	}
	return strconv.Itoa(int(d))
}

func (d Distance) MarshalJSON() ([]byte, error) {
	if d.IsInfinite() {
		return []byte(`"Infinity"`), nil
	}
	return []byte(strconv.Itoa(int(d))), nil
}

func (d *Distance) UnmarshalJSON(data []byte) error {
	if string(data) == `"Infinity"` {
		*d = Infinity
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("distance: %w", err)
	}
	*d = Distance(n)
	return nil
}

func (d Distance) MarshalYAML() (interface{}, error) {
	if d.IsInfinite() {
		return math.Inf(1), nil
	}
	return int(d), nil
}

func (d *Distance) UnmarshalYAML(value *yaml.Node) error {
	var f float64
	if err := value.Decode(&f); err != nil {
		return fmt.Errorf("distance: %w", err)
	}
	if math.IsInf(f, 1) {
		*d = Infinity
		return nil
	}
	*d = Distance(int(f))
	return nil
}
