// Package audio provides short synthesized feedback tones. Audio is
// strictly optional: initialization failure disables the player and the
// game runs silent.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const sampleRate = beep.SampleRate(44100)

// Player plays fire-and-forget sine tones for game events.
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker. On failure the returned player is
// disabled and a warning is logged.
func NewPlayer(logger zerolog.Logger) *Player {
	p := &Player{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		logger.Warn().Err(err).Msg("audio initialization failed, continuing without sound")
		return p
	}
	p.enabled = true
	return p
}

// Disabled returns a player that never plays. Used for --no-sound.
func Disabled() *Player {
	return &Player{}
}

// Close shuts the speaker down.
func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
	}
}

func (p *Player) tone(freq float64, d time.Duration) {
	if !p.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Eat plays the normal-food pickup tone.
func (p *Player) Eat() {
	p.tone(880, 50*time.Millisecond)
}

// Bonus plays the bonus-food pickup tone.
func (p *Player) Bonus() {
	p.tone(1320, 90*time.Millisecond)
}

// LevelUp plays the speed-level advance tone.
func (p *Player) LevelUp() {
	p.tone(660, 120*time.Millisecond)
}

// GameOver plays the death tone.
func (p *Player) GameOver() {
	p.tone(220, 300*time.Millisecond)
}
