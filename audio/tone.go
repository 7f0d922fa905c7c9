package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Envelope lengths. The attack removes the click at tone start, the release
// the click at the end.
const (
	attack  = 5 * time.Millisecond
	release = 60 * time.Millisecond
)

// toneStreamer is a finite sine wave with a linear attack/release envelope,
// identical on both channels.
type toneStreamer struct {
	freq     float64
	sr       beep.SampleRate
	phase    float64
	pos      int
	total    int
	attackN  int
	releaseN int
}

// NewTone returns a streamer producing a sine tone at freq Hz for the given
// duration at the given sample rate.
func NewTone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	t := &toneStreamer{
		freq:     freq,
		sr:       sr,
		total:    total,
		attackN:  sr.N(attack),
		releaseN: sr.N(release),
	}
	if t.attackN+t.releaseN > total {
		t.attackN = total / 2
		t.releaseN = total - t.attackN
	}
	return t
}

func (t *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		v := math.Sin(2*math.Pi*t.phase) * t.gain()
		samples[i][0], samples[i][1] = v, v

		t.phase += t.freq / float64(t.sr)
		if t.phase >= 1 {
			t.phase--
		}
		t.pos++
		n++
	}
	return n, true
}

func (t *toneStreamer) Err() error { return nil }

// gain is the envelope value at the current sample position.
func (t *toneStreamer) gain() float64 {
	switch {
	case t.pos < t.attackN:
		return float64(t.pos) / float64(t.attackN)
	case t.pos >= t.total-t.releaseN:
		return float64(t.total-t.pos) / float64(t.releaseN)
	default:
		return 1
	}
}
