package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name    string
	Title   lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Playing lipgloss.Color
	Paused  lipgloss.Color
}

var (
	ThemeChalk = Theme{
		Name:    "chalk",
		Title:   lipgloss.Color("86"),
		Accent:  lipgloss.Color("205"),
		Text:    lipgloss.Color("252"),
		Muted:   lipgloss.Color("240"),
		Playing: lipgloss.Color("#00ff88"),
		Paused:  lipgloss.Color("#ffaa00"),
	}

	ThemeAmber = Theme{
		Name:    "amber",
		Title:   lipgloss.Color("#ffb000"),
		Accent:  lipgloss.Color("#ffd37a"),
		Text:    lipgloss.Color("#ffcc66"),
		Muted:   lipgloss.Color("#805800"),
		Playing: lipgloss.Color("#ffe08a"),
		Paused:  lipgloss.Color("#cc7a00"),
	}

	ThemeMono = Theme{
		Name:    "mono",
		Title:   lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#dddddd"),
		Muted:   lipgloss.Color("#777777"),
		Playing: lipgloss.Color("#ffffff"),
		Paused:  lipgloss.Color("#999999"),
	}

	Themes = []Theme{ThemeChalk, ThemeAmber, ThemeMono}
)

func GetTheme(name string) (Theme, error) {
	for _, t := range Themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("unknown theme: %s (available: %v)", name, ThemeNames())
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// nextTheme returns the theme after current in Themes, wrapping around.
func nextTheme(current Theme) Theme {
	for i, t := range Themes {
		if t.Name == current.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
