package playback

import (
	"time"

	"github.com/rs/zerolog"
)

type Option func(*Engine)

func WithScheduler(s Scheduler) Option {
	return func(e *Engine) { e.sched = s }
}

func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithSpeed sets the interval between automatic advances. Non-positive
// values keep DefaultSpeed.
func WithSpeed(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.speed = d
		}
	}
}

func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observers = append(e.observers, o) }
}
