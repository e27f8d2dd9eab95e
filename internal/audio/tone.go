package audio

import (
	"math"
	"sync"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// silence is the gain below which a muted tone stops rendering.
const silence = 1e-5

// Tone is a sine oscillator whose frequency and amplitude can be changed
// from the game loop while the audio device pulls samples from it.
// Amplitude changes glide over a few milliseconds so mute/unmute don't click.
type Tone struct {
	ID int

	mu      sync.Mutex
	started bool
	freq    float64
	target  float64

	sampleRate float64
	glide      float64 // one-pole coefficient per sample
	gain       float64
	phase      float64
	gains      []float64
}

func newTone(id int, cfg Config) *Tone {
	return &Tone{
		ID:         id,
		sampleRate: float64(cfg.SampleRate),
		glide:      1 - math.Exp(-1/(cfg.Glide.Seconds()*float64(cfg.SampleRate))),
	}
}

func (t *Tone) Start() {
	t.mu.Lock()
	t.started = true
	t.mu.Unlock()
}

func (t *Tone) SetFrequency(hz float64) {
	t.mu.Lock()
	t.freq = hz
	t.mu.Unlock()
}

func (t *Tone) SetAmplitude(level float64) {
	if level < 0 {
		level = 0
	} else if level > 1 {
		level = 1
	}
	t.mu.Lock()
	t.target = level
	t.mu.Unlock()
}

// State returns the started flag, frequency and target amplitude.
func (t *Tone) State() (started bool, freq, amp float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.started, t.freq, t.target
}

// Render writes len(dst) samples into dst and reports whether any of them
// is audible.
func (t *Tone) Render(dst []float64) bool {
	t.mu.Lock()
	started, freq, target := t.started, t.freq, t.target
	t.mu.Unlock()

	if !started || (target == 0 && t.gain < silence) {
		t.gain = 0
		for i := range dst {
			dst[i] = 0
		}
		return false
	}

	if cap(t.gains) < len(dst) {
		t.gains = make([]float64, len(dst))
	}
	gains := t.gains[:len(dst)]
	step := freq / t.sampleRate
	for i := range dst {
		_, t.phase = math.Modf(t.phase + step)
		dst[i] = math.Sin(2 * math.Pi * t.phase)
		t.gain += (target - t.gain) * t.glide
		gains[i] = t.gain
	}
	vecmath.MulBlockInPlace(dst, gains)
	return true
}
