package audio

import (
	"testing"

	vecmath "github.com/cwbudde/algo-vecmath"
)

func TestMixerSumsAndClips(t *testing.T) {
	m := &mixer{}
	for i := 0; i < 4; i++ {
		tone := newTone(i, testConfig())
		tone.Start()
		tone.SetFrequency(100)
		tone.SetAmplitude(1)
		m.Add(tone)
	}
	buf := make([]float64, DefaultSampleRate/5)
	m.Render(buf)
	if peak := vecmath.MaxAbs(buf); peak != 1 {
		t.Fatalf("four in-phase tones should clip at 1, peak %v", peak)
	}
}

func TestMixerReadEncodesInt16(t *testing.T) {
	m := &mixer{}
	tone := newTone(0, testConfig())
	tone.Start()
	tone.SetFrequency(440)
	tone.SetAmplitude(0.5)
	m.Add(tone)

	buf := make([]byte, DefaultSampleRate/5*2)
	n, err := m.Read(buf)
	if err != nil || n != len(buf) {
		t.Fatalf("Read = %d, %v", n, err)
	}
	nonZero := false
	for i := 0; i < n/2; i++ {
		v := int16(buf[2*i]) | int16(buf[2*i+1])<<8
		if v > 16384 || v < -16384 {
			t.Fatalf("sample %d = %d exceeds half scale", i, v)
		}
		if v != 0 {
			nonZero = true
		}
	}
	if !nonZero {
		t.Fatalf("expected non-zero audio output")
	}
}

func TestMixerSilentWithoutTones(t *testing.T) {
	m := &mixer{}
	buf := make([]byte, 64)
	for i := range buf {
		buf[i] = 0xff
	}
	m.Read(buf)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %x, want 0", i, b)
		}
	}
}
