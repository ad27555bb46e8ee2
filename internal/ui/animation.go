package ui

import (
	"strings"

	"doodlepet/internal/behavior"
	"doodlepet/internal/pet"
)

// look is the part of a sprite that depends on the skin.
type look struct {
	hair string
	body string
	feet string
}

// looks holds the sprite rows for each skin. Every row is petWidth
// ASCII columns wide.
var looks = map[string]look{
	pet.SkinGirlWhite: {hair: " ,~~~, ", body: " /| |\\ ", feet: "  / \\  "},
	pet.SkinGirlPink:  {hair: " .***. ", body: " /|*|\\ ", feet: "  / \\  "},
	pet.SkinGothBunny: {hair: " (\\_/) ", body: " /|#|\\ ", feet: "  d b  "},
	pet.SkinCatOrange: {hair: " /\\_/\\ ", body: " (\")(\")", feet: "   ~~  "},
}

// face is the eyes and mouth for a mood.
type face struct {
	left, mouth, right byte
}

var faces = map[pet.Mood]face{
	pet.MoodIdle:      {'o', '_', 'o'},
	pet.MoodHappy:     {'^', 'w', '^'},
	pet.MoodSleep:     {'-', '~', '-'},
	pet.MoodSurprised: {'O', 'o', 'O'},
	pet.MoodAngry:     {'>', '_', '<'},
	pet.MoodLove:      {'*', '3', '*'},
}

// Sway past this many degrees shifts the hair row by a column.
const swayThreshold = 15

// sprite draws the pet for the current frame. Smaller scales drop rows.
func (m Model) sprite() []string {
	mood := pet.Baseline(m.Engine.Stats())
	if m.Pet.Mounted() {
		mood = m.Pet.EffectiveMood()
	}
	return drawSprite(m.Prefs.Skin, mood, m.Prefs.Scale, m.Pet.State())
}

func drawSprite(skin string, mood pet.Mood, scale float64, st behavior.State) []string {
	l, ok := looks[skin]
	if !ok {
		l = looks[pet.DefaultSkin]
	}
	head := faceLine(faces[mood], st)

	switch {
	case scale < 0.8:
		return []string{head}
	case scale < 1.25:
		return []string{swayHair(l.hair, st.HairSway), head, l.body}
	default:
		return []string{swayHair(l.hair, st.HairSway), head, l.body, l.feet}
	}
}

// faceLine draws "( o_o )" with the eyes shifted toward the cursor.
func faceLine(f face, st behavior.State) string {
	if st.Blink {
		f.left, f.right = '-', '-'
	}
	shift := 0
	switch {
	case st.EyeX > 1:
		shift = 1
	case st.EyeX < -1:
		shift = -1
	}
	eyes := string([]byte{f.left, f.mouth, f.right})
	return "(" + strings.Repeat(" ", 1+shift) + eyes + strings.Repeat(" ", 1-shift) + ")"
}

// swayHair shifts the hair row against the drag.
func swayHair(hair string, sway float64) string {
	switch {
	case sway > swayThreshold:
		return " " + hair[:len(hair)-1]
	case sway < -swayThreshold:
		return hair[1:] + " "
	default:
		return hair
	}
}
