package viz

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/algoviz/internal/step"
)

type StepMsg struct {
	Step  step.Step
	Index int
	Total int
}

type PlayStateMsg struct {
	Playing bool
}

const bridgeBuffer = 64

// Bridge forwards engine notifications to a Bubble Tea program. When the
// program falls behind, further notifications are dropped; the model
// re-reads engine state on every message it does receive.
type Bridge struct {
	ch chan tea.Msg
}

func NewBridge() *Bridge {
	return &Bridge{ch: make(chan tea.Msg, bridgeBuffer)}
}

func (b *Bridge) send(msg tea.Msg) {
	select {
	case b.ch <- msg:
	default:
	}
}

func (b *Bridge) OnStepChange(s step.Step, index, total int) {
	b.send(StepMsg{Step: s, Index: index, Total: total})
}

func (b *Bridge) OnPlayStateChange(playing bool) {
	b.send(PlayStateMsg{Playing: playing})
}

// Wait returns a command that blocks until the next notification.
func (b *Bridge) Wait() tea.Cmd {
	return func() tea.Msg { return <-b.ch }
}
