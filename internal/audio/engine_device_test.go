//go:build test

package audio

import "testing"

func TestResumeWithoutDevice(t *testing.T) {
	e := NewEngine(testLogger)
	if err := e.Resume(); err == nil {
		t.Fatalf("expected error without a device")
	}
	// tones still work after a failed open
	src := e.NewTone(0)
	src.Start()
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
