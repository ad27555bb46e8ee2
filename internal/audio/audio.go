// Package audio names the sounds the pet asks for and plays them when a
// backend is available. Playback never reports back to the caller.
package audio

import (
	"log"
	"sync/atomic"
)

// Cue names a sound effect.
type Cue string

const (
	CueNone         Cue = ""
	CueFeed         Cue = "feed"
	CuePlay         Cue = "play"
	CueHeal         Cue = "heal"
	CuePetHappy     Cue = "pet-happy"
	CuePetSurprised Cue = "pet-surprised"
	CueSuccess      Cue = "success"
)

// Player plays cues. Implementations must return promptly.
type Player interface {
	Play(Cue)
}

// PlayerFunc adapts a function to Player.
type PlayerFunc func(Cue)

// Play implements Player
func (f PlayerFunc) Play(c Cue) { f(c) }

// Muted drops every cue.
type Muted struct{}

// Play implements Player
func (Muted) Play(Cue) {}

// Bell notes cues that should ring the terminal bell. It never writes
// to the terminal itself: the UI takes pending rings with Ring and draws
// the bell as part of its next frame.
type Bell struct {
	pending atomic.Bool
}

// Play implements Player
func (b *Bell) Play(c Cue) {
	switch c {
	case CueSuccess, CuePetSurprised:
		b.pending.Store(true)
	}
}

// Ring reports whether a cue asked for the bell since the last call.
func (b *Bell) Ring() bool {
	return b.pending.Swap(false)
}

// safe shields the caller from a misbehaving player.
type safe struct {
	p Player
}

// Safe wraps p so that a panic or a nil player never reaches the caller.
func Safe(p Player) Player {
	if p == nil {
		return Muted{}
	}
	if _, ok := p.(safe); ok {
		return p
	}
	return safe{p: p}
}

// Play implements Player
func (s safe) Play(c Cue) {
	if c == CueNone {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Audio failed for %s: %v", c, r)
		}
	}()
	s.p.Play(c)
}
