package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors of terminal output and exported drawings.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Constant   lipgloss.Color
	Error      lipgloss.Color
}

var (
	ThemeDefault = Theme{
		Name:       "default",
		Primary:    lipgloss.Color("#00ccff"),
		Accent:     lipgloss.Color("#ffcc00"),
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#e0e0e0"),
		Muted:      lipgloss.Color("#666688"),
		Constant:   lipgloss.Color("#ff6b6b"),
		Error:      lipgloss.Color("#ff4444"),
	}

	ThemeMono = Theme{
		Name:       "mono",
		Primary:    lipgloss.Color("#ffffff"),
		Accent:     lipgloss.Color("#cccccc"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Constant:   lipgloss.Color("#ffffff"),
		Error:      lipgloss.Color("#ffffff"),
	}

	// Boxwood and celluloid, like a Faber-Castell.
	ThemeIvory = Theme{
		Name:       "ivory",
		Primary:    lipgloss.Color("#1a1a1a"),
		Accent:     lipgloss.Color("#0b5394"),
		Background: lipgloss.Color("#fffff0"),
		Text:       lipgloss.Color("#1a1a1a"),
		Muted:      lipgloss.Color("#7f7f7f"),
		Constant:   lipgloss.Color("#c00000"),
		Error:      lipgloss.Color("#c00000"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Primary:    lipgloss.Color("#00ff00"),
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Constant:   lipgloss.Color("#ffff00"),
		Error:      lipgloss.Color("#ff0000"),
	}

	Themes = []Theme{
		ThemeDefault,
		ThemeMono,
		ThemeIvory,
		ThemeRetroGreen,
	}
)

// GetTheme returns a theme by name, falling back to the default theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
