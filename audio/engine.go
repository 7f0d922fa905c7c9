// Package audio plays reference tones for the tuning board through the
// system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(48000)
	toneDuration = 600 * time.Millisecond
)

// Engine owns the speaker and the shared mixer all tones play through. The
// zero value is unusable; call NewEngine, then Init once at startup. Play on
// an uninitialized engine is a silent no-op, so a machine without audio
// still runs the rest of the tool.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewEngine creates an engine with an empty mixer.
func NewEngine() *Engine {
	return &Engine{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer. Safe to call more than once.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init failed: %w", err)
	}
	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Close silences the mixer. The speaker itself stays open; beep has no
// counterpart to speaker.Init.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	e.initialized = false
}

// Play sounds one tone of fixed length at freq Hz. Tones overlap freely in
// the mixer.
func (e *Engine) Play(freq float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Add(NewTone(sampleRate, freq, toneDuration))
	speaker.Unlock()
}
