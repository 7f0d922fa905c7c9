package audio

import "testing"

// Play and Close on an engine that never opened the speaker must be silent
// no-ops; the tool runs without audio hardware.
func TestUninitializedEngineIsInert(t *testing.T) {
	e := NewEngine()
	e.Play(440)
	e.Close()

	if got := e.mixer.Len(); got != 0 {
		t.Errorf("mixer has %d streamers; want 0", got)
	}
}
