package term

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	clickFreq     = 660
	clickDuration = 40 * time.Millisecond
)

// Clicker plays feedback when the slide changes.
type Clicker interface {
	Click()
}

// Speaker plays a short sine click through the default audio device.
type Speaker struct {
	mu          sync.Mutex
	initialized bool
}

// NewSpeaker initializes the audio device. The preview runs fine without
// sound, so callers usually log the error and continue.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Speaker{initialized: true}, nil
}

// Click plays one click.
func (s *Speaker) Click() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	click, err := ClickStreamer(sampleRate)
	if err != nil {
		return
	}
	speaker.Play(click)
}

// Close releases the audio device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Close()
	s.initialized = false
}

// ClickStreamer returns the click sound: a quiet sine burst.
func ClickStreamer(sr beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, clickFreq)
	if err != nil {
		return nil, err
	}
	quiet := &effects.Volume{Streamer: sine, Base: 2, Volume: -2}
	return beep.Take(sr.N(clickDuration), quiet), nil
}
