package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"doodlepet/internal/pet"
)

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#FF75B5")).
	Padding(0, 2)

// StatsModel is a simple Bubble Tea model for displaying stats
type StatsModel struct {
	Stats pet.Stats
	Skin  pet.Skin
	Text  func(key string) string
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, tea.Quit
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m StatsModel) View() string {
	text := m.Text
	if text == nil {
		text = func(key string) string { return key }
	}
	s := m.Stats

	var b strings.Builder
	b.WriteString(gameStyles.title.Render(fmt.Sprintf("%s %s %s", m.Skin.Emoji, m.Skin.Name, m.Skin.Emoji)))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%-10s %d\n", text("level")+":", s.Level)
	fmt.Fprintf(&b, "%-10s %.0f / %.0f\n", text("exp")+":", s.Experience, s.MaxExp)
	fmt.Fprintf(&b, "%-10s %s\n\n", "Status:", pet.GetStatusWithLabel(pet.Baseline(s), s))
	fmt.Fprintf(&b, "%-10s [%s] %3.0f%%\n", text("hunger")+":", makeBar(s.Hunger, 5), s.Hunger)
	fmt.Fprintf(&b, "%-10s [%s] %3.0f%%\n", text("happiness")+":", makeBar(s.Happiness, 5), s.Happiness)
	fmt.Fprintf(&b, "%-10s [%s] %3.0f%%", text("health")+":", makeBar(s.Health, 5), s.Health)

	return cardStyle.Render(b.String()) + "\n\nPress ESC, click, or any key to close..."
}

// makeBar draws value (0-100) as width cells.
func makeBar(value float64, width int) string {
	filled := int(value / 100 * float64(width))
	filled = min(max(filled, 0), width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// DisplayStats shows the stats card until a key or click.
func DisplayStats(s pet.Stats, skin pet.Skin, text func(key string) string) error {
	program := tea.NewProgram(StatsModel{Stats: s, Skin: skin, Text: text}, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running stats display: %w", err)
	}
	return nil
}
