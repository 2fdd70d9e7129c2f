package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/algoviz/internal/trace"
)

// Theme colours the bar roles and the chrome around them.
type Theme struct {
	Name     string
	Idle     lipgloss.Color
	Outside  lipgloss.Color
	Sorted   lipgloss.Color
	Boundary lipgloss.Color
	Min      lipgloss.Color
	Compare  lipgloss.Color
	Key      lipgloss.Color
	Pivot    lipgloss.Color
	Swap     lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Accent   lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:     "cyberpunk",
		Idle:     lipgloss.Color("#00ffff"),
		Outside:  lipgloss.Color("#333344"),
		Sorted:   lipgloss.Color("#00ff00"),
		Boundary: lipgloss.Color("#88ff88"),
		Min:      lipgloss.Color("#ff8800"),
		Compare:  lipgloss.Color("#ffff00"),
		Key:      lipgloss.Color("#0088ff"),
		Pivot:    lipgloss.Color("#ff00ff"),
		Swap:     lipgloss.Color("#ff0000"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#666666"),
		Accent:   lipgloss.Color("#ff00ff"),
	}

	ThemeRetroGreen = Theme{
		Name:     "retro",
		Idle:     lipgloss.Color("#00aa00"),
		Outside:  lipgloss.Color("#003300"),
		Sorted:   lipgloss.Color("#88ff88"),
		Boundary: lipgloss.Color("#55dd55"),
		Min:      lipgloss.Color("#ccff00"),
		Compare:  lipgloss.Color("#ffff00"),
		Key:      lipgloss.Color("#00ffaa"),
		Pivot:    lipgloss.Color("#ffffff"),
		Swap:     lipgloss.Color("#ff0000"),
		Text:     lipgloss.Color("#00ff00"),
		Muted:    lipgloss.Color("#005500"),
		Accent:   lipgloss.Color("#88ff88"),
	}

	ThemeOcean = Theme{
		Name:     "ocean",
		Idle:     lipgloss.Color("#00a8cc"),
		Outside:  lipgloss.Color("#123047"),
		Sorted:   lipgloss.Color("#00ff88"),
		Boundary: lipgloss.Color("#7fdbca"),
		Min:      lipgloss.Color("#ffcc00"),
		Compare:  lipgloss.Color("#ffd700"),
		Key:      lipgloss.Color("#e0f0ff"),
		Pivot:    lipgloss.Color("#c792ea"),
		Swap:     lipgloss.Color("#ff4444"),
		Text:     lipgloss.Color("#e0f0ff"),
		Muted:    lipgloss.Color("#4488aa"),
		Accent:   lipgloss.Color("#0077be"),
	}

	ThemeSunset = Theme{
		Name:     "sunset",
		Idle:     lipgloss.Color("#feca57"),
		Outside:  lipgloss.Color("#3d2b3e"),
		Sorted:   lipgloss.Color("#5fd068"),
		Boundary: lipgloss.Color("#a3e4a0"),
		Min:      lipgloss.Color("#ffc048"),
		Compare:  lipgloss.Color("#ff9ff3"),
		Key:      lipgloss.Color("#48dbfb"),
		Pivot:    lipgloss.Color("#a55eea"),
		Swap:     lipgloss.Color("#ff4757"),
		Text:     lipgloss.Color("#fff5f5"),
		Muted:    lipgloss.Color("#8b6b8c"),
		Accent:   lipgloss.Color("#ff6b6b"),
	}

	CurrentTheme = ThemeCyberpunk

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme switches to the theme after the current one.
func NextTheme() {
	names := ThemeNames()
	for i, name := range names {
		if name == CurrentTheme.Name {
			SetTheme(names[(i+1)%len(names)])
			return
		}
	}
}

// RoleColor maps a slot role to the current theme.
func RoleColor(r trace.Role) lipgloss.Color {
	t := CurrentTheme
	switch r {
	case trace.RoleOutside:
		return t.Outside
	case trace.RoleSorted:
		return t.Sorted
	case trace.RoleBoundary:
		return t.Boundary
	case trace.RoleMin:
		return t.Min
	case trace.RoleCompare:
		return t.Compare
	case trace.RoleKey:
		return t.Key
	case trace.RolePivot:
		return t.Pivot
	case trace.RoleSwap:
		return t.Swap
	}
	return t.Idle
}
