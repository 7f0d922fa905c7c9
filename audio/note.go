package audio

import "math"

// NoteFreq returns the equal-temperament frequency in Hz of MIDI note n with
// A4 (note 69) tuned to a4 Hz. Notes outside 0-127 return 0.
func NoteFreq(n int, a4 float64) float64 {
	if n < 0 || n > 127 {
		return 0
	}
	return a4 * math.Pow(2, (float64(n)-69)/12)
}
