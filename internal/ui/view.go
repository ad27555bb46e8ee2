package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"doodlepet/internal/pet"
)

// Screen layout, in rows from the top of the view.
const (
	headerLines = 8
	bubbleRows  = 2
	liftRows    = 3 // How far the pet can be lifted above the ground
	maxSprite   = 4
	petWidth    = 7
	fieldRows   = bubbleRows + liftRows + maxSprite
)

var gameStyles = struct {
	title  lipgloss.Style
	status lipgloss.Style
	label  lipgloss.Style
	bubble lipgloss.Style
	pet    lipgloss.Style
	ground lipgloss.Style
	help   lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")),

	label: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Bold(true),

	bubble: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#1A1A1A")).
		Background(lipgloss.Color("#FFE4F1")).
		Padding(0, 1),

	pet: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD700")).
		Bold(true),

	ground: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5C5C5C")),

	help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8A8A8A")),
}

// rect is a block of screen cells.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "See you soon!\n"
	}

	now := m.clock()
	sections := []string{m.renderHeader()}

	if m.Prefs.Visible {
		sections = append(sections, m.renderField(now))
	} else {
		sections = append(sections, gameStyles.status.Render(m.text("hidden")))
	}

	var messageView string
	switch {
	case m.ConfirmingReset:
		messageView = gameStyles.label.Render(m.text("confirm_reset"))
	case m.Message != "" && now.Before(m.MessageExpires):
		messageView = gameStyles.status.Render(m.Message)
	}

	sections = append(sections, messageView, gameStyles.help.Render(m.text("help")))
	view := m.fit(lipgloss.JoinVertical(lipgloss.Left, sections...))
	if m.ringing {
		// The bell has no width, so the layout is unchanged.
		view += "\a"
	}
	return view
}

// renderHeader draws exactly headerLines rows so the field below starts
// at a known row.
func (m Model) renderHeader() string {
	s := m.Engine.Stats()
	skin := pet.LookupSkin(m.Prefs.Skin)
	mood := pet.Baseline(s)
	if m.Pet.Mounted() {
		mood = m.Pet.EffectiveMood()
	}

	title := gameStyles.title.Render(fmt.Sprintf("%s %s  %s %d", skin.Emoji, skin.Name, m.text("level"), s.Level))
	exp := fmt.Sprintf("%-10s [%s] %.0f/%.0f", m.text("exp"), makeBar(s.Experience/s.MaxExp*100, 10), s.Experience, s.MaxExp)

	lines := []string{
		title,
		"",
		m.statLine("hunger", s.Hunger),
		m.statLine("happiness", s.Happiness),
		m.statLine("health", s.Health),
		gameStyles.status.Render(exp),
		gameStyles.status.Render(pet.GetStatusWithLabel(mood, s)),
		"",
	}
	return strings.Join(lines, "\n")
}

func (m Model) statLine(key string, value float64) string {
	return gameStyles.status.Render(fmt.Sprintf("%-10s [%s] %3.0f%%", m.text(key), makeBar(value, 10), value))
}

// renderField draws the bubble, the pet and the ground in fieldRows+1 rows.
func (m Model) renderField(now time.Time) string {
	rows := make([]string, fieldRows)
	r := m.petRect(now)
	top := r.y - headerLines
	indent := strings.Repeat(" ", r.x)

	for i, line := range m.sprite() {
		rows[top+i] = indent + gameStyles.pet.Render(line)
	}

	if b := m.Pet.Bubble(); b.Visible && top >= bubbleRows {
		rows[top-2] = indent + gameStyles.bubble.Render(b.Message)
		rows[top-1] = indent + "  \\"
	}

	width := m.width
	if width <= 0 {
		width = 40
	}
	rows = append(rows, gameStyles.ground.Render(strings.Repeat("_", width)))
	return strings.Join(rows, "\n")
}

// petRect returns the cells the pet covers at now.
func (m Model) petRect(now time.Time) rect {
	st := m.Pet.State()
	h := len(m.sprite())

	x := int(math.Round(st.DisplayX(now)))
	if m.width > 0 {
		x = min(x, m.width-petWidth)
	}
	x = max(x, 0)

	lift := min(max(int(math.Round(-st.Y)), 0), liftRows)
	rest := headerLines + bubbleRows + liftRows + maxSprite - h
	return rect{x: x, y: rest - lift, w: petWidth, h: h}
}

// fit cuts lines that would wrap in a narrow terminal.
func (m Model) fit(s string) string {
	if m.width <= 0 {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(s)
}
