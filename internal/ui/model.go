package ui

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"doodlepet/internal/audio"
	"doodlepet/internal/behavior"
	"doodlepet/internal/i18n"
	"doodlepet/internal/pet"
)

// MessageDuration is how long a host message stays on screen.
const MessageDuration = 3 * time.Second

// Deps holds what the model drives. Engine, Controller, Repo and Catalog
// are required. Bell, when set, should be the controller's player.
type Deps struct {
	Engine             *pet.Engine
	Controller         *behavior.Controller
	Repo               *pet.Repository
	Catalog            *i18n.Catalog
	Prefs              pet.Prefs
	Bell               *audio.Bell
	FrameInterval      time.Duration
	CheckpointInterval time.Duration
	Clock              func() time.Time
}

// Model represents the game state
type Model struct {
	Engine  *pet.Engine
	Pet     *behavior.Controller
	Repo    *pet.Repository
	Catalog *i18n.Catalog
	Prefs   pet.Prefs

	Quitting        bool
	ConfirmingReset bool
	Message         string
	MessageExpires  time.Time

	frameInterval      time.Duration
	checkpointInterval time.Duration
	clock              func() time.Time
	width              int
	height             int
	drag               dragState
	bell               *audio.Bell
	ringing            bool // Draw the bell until the next frame tick
}

// dragState tracks a mouse press that started on the pet.
type dragState struct {
	active bool
	moved  bool
}

type frameMsg time.Time
type checkpointMsg time.Time

// NewModel creates a new game model
func NewModel(d Deps) Model {
	if d.FrameInterval <= 0 {
		d.FrameInterval = 50 * time.Millisecond
	}
	if d.CheckpointInterval <= 0 {
		d.CheckpointInterval = time.Minute
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}
	return Model{
		Engine:             d.Engine,
		Pet:                d.Controller,
		Repo:               d.Repo,
		Catalog:            d.Catalog,
		Prefs:              d.Prefs,
		frameInterval:      d.FrameInterval,
		checkpointInterval: d.CheckpointInterval,
		clock:              d.Clock,
		bell:               d.Bell,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	m.Pet.SetLocale(m.Prefs.Language, m.Prefs.Skin)
	if m.Prefs.Visible {
		m.Pet.Mount(m.clock())
	}
	return tea.Batch(m.frame(), m.checkpoint())
}

func (m Model) frame() tea.Cmd {
	return tea.Tick(m.frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Model) checkpoint() tea.Cmd {
	return tea.Tick(m.checkpointInterval, func(t time.Time) tea.Msg {
		return checkpointMsg(t)
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	if model, ok := next.(Model); ok && model.bell != nil && model.bell.Ring() {
		model.ringing = true
		return model, cmd
	}
	return next, cmd
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.Pet.SetViewport(0, float64(max(0, m.width-petWidth)))
		return m, nil

	case frameMsg:
		m.ringing = false
		m.Pet.Advance(time.Time(msg))
		return m, m.frame()

	case checkpointMsg:
		m.Engine.Checkpoint()
		return m, m.checkpoint()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" || key == "q" {
		return m.quit()
	}

	if m.ConfirmingReset {
		switch key {
		case "y":
			m.Engine.Reset()
			m.setMessage(m.text("reset_done"))
			m.ConfirmingReset = false
		case "n", "esc":
			m.ConfirmingReset = false
		}
		return m, nil
	}

	switch key {
	case "f":
		m.Pet.Feed()
	case "p":
		m.Pet.Play()
	case "h":
		m.Pet.Heal()
	case "s":
		m.Prefs.Skin = pet.NextSkin(m.Prefs.Skin)
		m.Pet.SetLocale(m.Prefs.Language, m.Prefs.Skin)
		skin := pet.LookupSkin(m.Prefs.Skin)
		m.setMessage(skin.Emoji + " " + m.text("skin") + ": " + skin.Name)
		m.savePrefs()
	case "l":
		m.Prefs.Language = m.Catalog.Next(m.Prefs.Language)
		m.Pet.SetLocale(m.Prefs.Language, m.Prefs.Skin)
		m.setMessage(m.text("language") + ": " + m.Catalog.Name(m.Prefs.Language))
		m.savePrefs()
	case "+", "=":
		m.setScale(m.Prefs.Scale + pet.ScaleStep)
	case "-", "_":
		m.setScale(m.Prefs.Scale - pet.ScaleStep)
	case "v":
		m.Prefs.Visible = !m.Prefs.Visible
		if m.Prefs.Visible {
			m.Pet.Mount(m.clock())
		} else {
			m.drag = dragState{}
			m.Pet.Teardown()
		}
		m.savePrefs()
	case "r":
		m.ConfirmingReset = true
	}
	return m, nil
}

// handleMouse turns presses on the pet into drags. A press released
// without moving is a click.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if !m.Prefs.Visible {
		return
	}
	x, y := float64(msg.X), float64(msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.petRect(m.clock()).contains(msg.X, msg.Y) {
			return
		}
		m.drag = dragState{active: true}
		m.Pet.PointerDown(x, y)

	case tea.MouseActionMotion:
		if m.drag.active {
			m.drag.moved = true
			m.Pet.PointerMove(x, y)
			return
		}
		r := m.petRect(m.clock())
		m.Pet.Look(x, y, float64(r.x)+float64(r.w)/2, float64(r.y)+1)

	case tea.MouseActionRelease:
		if !m.drag.active {
			return
		}
		clicked := !m.drag.moved
		m.drag = dragState{}
		m.Pet.PointerUp()
		if clicked {
			m.Pet.Poke()
		}
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Engine.Checkpoint()
	m.Pet.Teardown()
	m.Quitting = true
	return m, tea.Quit
}

func (m *Model) setScale(v float64) {
	scale := pet.ClampScale(v)
	if scale == m.Prefs.Scale {
		return
	}
	m.Prefs.Scale = scale
	m.savePrefs()
}

func (m *Model) savePrefs() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := m.Repo.SavePrefs(ctx, m.Prefs); err != nil {
		log.Printf("Error saving preferences: %v", err)
	}
}

func (m *Model) setMessage(msg string) {
	m.Message = msg
	m.MessageExpires = m.clock().Add(MessageDuration)
}

func (m Model) text(key string) string {
	return m.Catalog.Text(m.Prefs.Language, key)
}
