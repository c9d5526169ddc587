package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/step"
)

const (
	progressWidth = 40
	panelWidth    = 72
)

// Model renders the engine's current step and drives it from the keyboard.
type Model struct {
	engine *playback.Engine
	bridge *Bridge
	def    *algo.Definition

	current step.Step
	index   int
	total   int
	playing bool
	speed   int

	theme    Theme
	styles   styles
	showHelp bool
}

// NewModel binds a model to engine. bridge must already be registered as an
// engine observer. speed is on the 1..10 scale.
func NewModel(engine *playback.Engine, bridge *Bridge, def *algo.Definition, speed int) Model {
	m := Model{
		engine: engine,
		bridge: bridge,
		def:    def,
		speed:  config.ClampSpeed(speed),
		theme:  Themes[0],
		styles: newStyles(Themes[0]),
	}
	engine.SetSpeed(config.SpeedToInterval(m.speed))
	m.sync()
	return m
}

// WithTheme returns m drawn with t.
func (m Model) WithTheme(t Theme) Model {
	m.theme = t
	m.styles = newStyles(t)
	return m
}

func (m Model) Init() tea.Cmd {
	return m.bridge.Wait()
}

// Update handles key presses and engine notifications.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.engine.Pause()
			return m, tea.Quit
		case " ":
			m.engine.TogglePlay()
		case "right", "l":
			m.engine.StepForward()
		case "left", "h":
			m.engine.StepBack()
		case "r":
			m.engine.Reset()
		case "g", "home":
			m.engine.Seek(0)
		case "G", "end":
			m.engine.Seek(m.engine.Total() - 1)
		case "+", "=":
			m.setSpeed(m.speed + 1)
		case "-", "_":
			m.setSpeed(m.speed - 1)
		case "t":
			m.theme = nextTheme(m.theme)
			m.styles = newStyles(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
		m.sync()
		return m, nil
	case StepMsg:
		m.current, m.index, m.total = msg.Step, msg.Index, msg.Total
		m.sync()
		return m, m.bridge.Wait()
	case PlayStateMsg:
		m.playing = msg.Playing
		m.sync()
		return m, m.bridge.Wait()
	}
	return m, nil
}

func (m *Model) setSpeed(speed int) {
	m.speed = config.ClampSpeed(speed)
	m.engine.SetSpeed(config.SpeedToInterval(m.speed))
}

// sync copies engine state, which is authoritative when notifications were
// dropped.
func (m *Model) sync() {
	m.current = m.engine.CurrentStep()
	m.index = m.engine.CurrentIndex()
	m.total = m.engine.Total()
	m.playing = m.engine.IsPlaying()
}

func (m Model) View() string {
	st := m.styles
	var s strings.Builder

	s.WriteString(st.header.Render(strings.ToUpper(m.def.Name)) + "\n")

	status := st.paused.Render("PAUSED")
	if m.playing {
		status = st.playing.Render("PLAYING")
	}
	s.WriteString(status + "\n\n")

	position := 0
	if m.total > 0 {
		position = m.index + 1
	}
	s.WriteString(ProgressBar(m.index, m.total, progressWidth) + fmt.Sprintf(" %d/%d\n\n", position, m.total))

	if m.current != nil {
		s.WriteString(st.label.Render("Operation") + st.op.Render(string(m.current.Op())) + "\n")
		s.WriteString(st.label.Render("Step") + st.value.Render(m.current.Narration()) + "\n")
	} else {
		s.WriteString(st.label.Render("Step") + st.value.Render("(no steps)") + "\n")
	}
	s.WriteString(st.label.Render("Speed") + st.value.Render(fmt.Sprintf("%d/%d (%v)", m.speed, config.MaxSpeed, config.SpeedToInterval(m.speed))) + "\n")
	s.WriteString(st.label.Render("Theme") + st.value.Render(m.theme.Name) + "\n")

	if m.showHelp {
		s.WriteString(st.help.Render(strings.Join([]string{
			"Space  play/pause      →/l  step forward",
			"r      reset           ←/h  step back",
			"g/G    first/last      +/-  speed",
			"t      theme           q    quit",
		}, "\n")))
	} else {
		s.WriteString(st.help.Render("SP:Play/Pause ←→:Step R:Reset +/-:Speed ?:Help Q:Quit"))
	}

	return lipgloss.NewStyle().Width(panelWidth).Render(st.panel.Render(s.String()))
}
