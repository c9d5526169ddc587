package playback

import "github.com/san-kum/algoviz/internal/step"

type Observer interface {
	OnStepChange(s step.Step, index, total int)
	OnPlayStateChange(playing bool)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Step      func(s step.Step, index, total int)
	PlayState func(playing bool)
}

func (f ObserverFuncs) OnStepChange(s step.Step, index, total int) {
	if f.Step != nil {
		f.Step(s, index, total)
	}
}

func (f ObserverFuncs) OnPlayStateChange(playing bool) {
	if f.PlayState != nil {
		f.PlayState(playing)
	}
}

type eventKind int

const (
	stepChanged eventKind = iota
	playStateChanged
)

// event is a notification captured under the engine lock and delivered
// after it is released.
type event struct {
	kind    eventKind
	step    step.Step
	index   int
	total   int
	playing bool
}

func (ev event) deliver(o Observer) {
	switch ev.kind {
	case stepChanged:
		o.OnStepChange(ev.step, ev.index, ev.total)
	case playStateChanged:
		o.OnPlayStateChange(ev.playing)
	}
}
