package playback

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/san-kum/algoviz/internal/step"
)

// DefaultSpeed is the interval between automatic advances.
const DefaultSpeed = 400 * time.Millisecond

// Engine is a cursor over a loaded step sequence with a play timer.
// All methods are safe for concurrent use. Observers run outside the engine
// lock and see notifications in the order the state changed. Whichever
// goroutine finds the delivery queue idle delivers; a call made while
// another goroutine (or an observer) is delivering returns after queueing.
type Engine struct {
	mu sync.Mutex

	id      string
	steps   []step.Step
	index   int
	playing bool
	speed   time.Duration
	closed  bool

	sched  Scheduler
	cancel func()
	// epoch invalidates ticks from a cancelled registration.
	epoch uint64

	observers []Observer
	pending   []batch
	draining  bool
	log       zerolog.Logger
}

// batch is the events of one command and the observers registered when it
// ran.
type batch struct {
	events    []event
	observers []Observer
}

func New(opts ...Option) *Engine {
	e := &Engine{
		id:    uuid.NewString(),
		speed: DefaultSpeed,
		sched: TickerScheduler{},
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With().Str("session", e.id).Logger()
	return e
}

func (e *Engine) AddObserver(o Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.observers = append(e.observers, o)
}

// do runs fn under the lock and queues the events it returns for delivery
// once the lock is released.
func (e *Engine) do(cmd string, fn func() []event) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	if events := fn(); len(events) > 0 {
		observers := make([]Observer, len(e.observers))
		copy(observers, e.observers)
		e.pending = append(e.pending, batch{events: events, observers: observers})
	}
	e.log.Debug().
		Str("cmd", cmd).
		Int("index", e.index).
		Int("total", len(e.steps)).
		Bool("playing", e.playing).
		Msg("playback")
	if e.draining {
		e.mu.Unlock()
		return
	}
	e.draining = true
	e.mu.Unlock()

	e.drain()
}

// drain delivers queued batches in order until the queue is empty.
func (e *Engine) drain() {
	for {
		e.mu.Lock()
		if len(e.pending) == 0 {
			e.draining = false
			e.mu.Unlock()
			return
		}
		b := e.pending[0]
		e.pending[0] = batch{}
		e.pending = e.pending[1:]
		e.mu.Unlock()

		for _, ev := range b.events {
			for _, o := range b.observers {
				ev.deliver(o)
			}
		}
	}
}

func (e *Engine) stepEvent() event {
	return event{kind: stepChanged, step: e.steps[e.index], index: e.index, total: len(e.steps)}
}

func (e *Engine) lastIndex() int {
	return len(e.steps) - 1
}

func (e *Engine) startTimer() {
	e.epoch++
	epoch := e.epoch
	e.cancel = e.sched.Every(e.speed, func() { e.tick(epoch) })
}

func (e *Engine) stopTimer() {
	e.epoch++
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

func (e *Engine) pauseLocked() []event {
	e.stopTimer()
	e.playing = false
	return []event{{kind: playStateChanged, playing: false}}
}

func (e *Engine) tick(epoch uint64) {
	e.do("tick", func() []event {
		if !e.playing || epoch != e.epoch {
			return nil
		}
		if e.index >= e.lastIndex() {
			return e.pauseLocked()
		}
		e.index++
		events := []event{e.stepEvent()}
		if e.index == e.lastIndex() {
			events = append(events, e.pauseLocked()...)
		}
		return events
	})
}

// LoadSteps stops playback and replaces the sequence. The cursor returns to
// the first step.
func (e *Engine) LoadSteps(steps []step.Step) {
	e.do("load", func() []event {
		events := e.pauseLocked()
		e.steps = make([]step.Step, len(steps))
		copy(e.steps, steps)
		e.index = 0
		if len(e.steps) > 0 {
			events = append(events, e.stepEvent())
		}
		return events
	})
}

// Play starts automatic advancing. It does nothing while already playing or
// when the cursor is on the last step.
func (e *Engine) Play() {
	e.do("play", func() []event {
		if e.playing || e.index >= e.lastIndex() {
			return nil
		}
		e.playing = true
		e.startTimer()
		return []event{{kind: playStateChanged, playing: true}}
	})
}

// Pause stops the timer. Observers are notified even when nothing was playing.
func (e *Engine) Pause() {
	e.do("pause", e.pauseLocked)
}

// TogglePlay pauses when playing and plays otherwise.
func (e *Engine) TogglePlay() {
	if e.IsPlaying() {
		e.Pause()
		return
	}
	e.Play()
}

func (e *Engine) StepForward() {
	e.do("forward", func() []event {
		if e.index >= e.lastIndex() {
			return nil
		}
		e.index++
		return []event{e.stepEvent()}
	})
}

func (e *Engine) StepBack() {
	e.do("back", func() []event {
		if e.index <= 0 {
			return nil
		}
		e.index--
		return []event{e.stepEvent()}
	})
}

// Seek moves the cursor to i clamped into the sequence.
func (e *Engine) Seek(i int) {
	e.do("seek", func() []event {
		if len(e.steps) == 0 {
			return nil
		}
		if i < 0 {
			i = 0
		}
		if i > e.lastIndex() {
			i = e.lastIndex()
		}
		if i == e.index {
			return nil
		}
		e.index = i
		return []event{e.stepEvent()}
	})
}

func (e *Engine) Reset() {
	e.do("reset", func() []event {
		events := e.pauseLocked()
		e.index = 0
		if len(e.steps) > 0 {
			events = append(events, e.stepEvent())
		}
		return events
	})
}

// SetSpeed changes the advance interval, restarting the timer when playing.
// Non-positive durations select DefaultSpeed.
func (e *Engine) SetSpeed(d time.Duration) {
	e.do("speed", func() []event {
		if d <= 0 {
			d = DefaultSpeed
		}
		e.speed = d
		if e.playing {
			e.stopTimer()
			e.startTimer()
		}
		return nil
	})
}

// Close stops the timer and drops observers. Later calls are no-ops.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.stopTimer()
	e.playing = false
	e.observers = nil
	e.closed = true
	e.log.Debug().Msg("playback closed")
}

// CurrentStep returns the step under the cursor, or nil when nothing is loaded.
func (e *Engine) CurrentStep() step.Step {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.steps) == 0 {
		return nil
	}
	return e.steps[e.index]
}

func (e *Engine) CurrentIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.index
}

func (e *Engine) Total() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.steps)
}

func (e *Engine) IsPlaying() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playing
}

func (e *Engine) Speed() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.speed
}

func (e *Engine) ID() string {
	return e.id
}
