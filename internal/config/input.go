package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	MinSpeed = 1
	MaxSpeed = 10

	slowestInterval = 1000 * time.Millisecond
	speedStep       = 90 * time.Millisecond
	fastestInterval = 100 * time.Millisecond
)

// ParseInput reads a comma separated list of integers. Blank entries are
// skipped; any other token that is not an integer fails the whole parse.
func ParseInput(text string) ([]int, error) {
	values := []int{}
	for _, tok := range strings.Split(text, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidInput, tok)
		}
		values = append(values, v)
	}
	return values, nil
}

func FormatInput(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

func ClampSpeed(speed int) int {
	if speed < MinSpeed {
		return MinSpeed
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}

// SpeedToInterval maps the 1..10 speed scale to the delay between steps.
func SpeedToInterval(speed int) time.Duration {
	d := slowestInterval - time.Duration(ClampSpeed(speed))*speedStep
	if d < fastestInterval {
		return fastestInterval
	}
	return d
}
