package audio

import (
	"sync"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// mixer sums every tone into a single 16-bit mono PCM stream.
type mixer struct {
	mu    sync.Mutex
	tones []*Tone
	mix   []float64
	buf   []float64
	pos   int
}

func (m *mixer) Add(t *Tone) {
	m.mu.Lock()
	m.tones = append(m.tones, t)
	m.mu.Unlock()
}

// Reset drops every tone.
func (m *mixer) Reset() {
	m.mu.Lock()
	m.tones = nil
	m.mu.Unlock()
}

func (m *mixer) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tones)
}

// Render fills dst with the sum of all tones, clipped to [-1, 1].
func (m *mixer) Render(dst []float64) {
	for i := range dst {
		dst[i] = 0
	}
	m.mu.Lock()
	tones := append([]*Tone(nil), m.tones...)
	m.mu.Unlock()

	if cap(m.buf) < len(dst) {
		m.buf = make([]float64, len(dst))
	}
	buf := m.buf[:len(dst)]
	for _, t := range tones {
		if t.Render(buf) {
			vecmath.AddBlockInPlace(dst, buf)
		}
	}
	if vecmath.MaxAbs(dst) <= 1 {
		m.pos += len(dst)
		return
	}
	for i, v := range dst {
		if v > 1 {
			dst[i] = 1
		} else if v < -1 {
			dst[i] = -1
		}
	}
	m.pos += len(dst)
}

// Read implements io.Reader for oto.Player.
func (m *mixer) Read(p []byte) (int, error) {
	samples := len(p) / 2
	if cap(m.mix) < samples {
		m.mix = make([]float64, samples)
	}
	mix := m.mix[:samples]
	m.Render(mix)
	for i, s := range mix {
		v := int16(s * 32767)
		p[2*i] = byte(v)
		p[2*i+1] = byte(v >> 8)
	}
	return samples * 2, nil
}
