// Package chime builds the short celebration arpeggio played with the confetti
// burst in terminal mode.
package chime

import (
	"fmt"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the output rate used for the speaker.
const SampleRate = beep.SampleRate(44100)

// NoteDuration is the length of each arpeggio note.
const NoteDuration = 90 * time.Millisecond

// CelebrationNotes is a C major arpeggio (C5 E5 G5 C6).
var CelebrationNotes = []float64{523.25, 659.25, 783.99, 1046.50}

// Tone returns a sine tone of the given frequency limited to d.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("failed to create %.2fHz tone: %w", freq, err)
	}
	return beep.Take(sr.N(d), sine), nil
}

// Celebration returns the arpeggio as a single finite streamer.
func Celebration(sr beep.SampleRate) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(CelebrationNotes))
	for _, freq := range CelebrationNotes {
		tone, err := Tone(sr, freq, NoteDuration)
		if err != nil {
			return nil, err
		}
		notes = append(notes, tone)
	}
	return beep.Seq(notes...), nil
}

// Player plays the celebration on the system speaker. A Player whose
// speaker failed to initialize stays silent.
type Player struct {
	ready bool
}

// NewPlayer initializes the speaker. The error is informational: the
// returned Player is always usable.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return &Player{}, fmt.Errorf("speaker init failed: %w", err)
	}
	return &Player{ready: true}, nil
}

// Ready reports whether sound output is available.
func (p *Player) Ready() bool {
	return p.ready
}

// Play starts the celebration without blocking.
func (p *Player) Play() {
	if !p.ready {
		return
	}
	stream, err := Celebration(SampleRate)
	if err != nil {
		log.Printf("[Chime] %v", err)
		return
	}
	speaker.Play(stream)
}

// Close releases the speaker.
func (p *Player) Close() {
	if p.ready {
		speaker.Close()
		p.ready = false
	}
}
