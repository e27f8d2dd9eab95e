package model

const (
	DefaultJitterAmplitude = 40
	DefaultJitterStep      = 0.01
)

// Jitter produces the vertical wobble of one finished shape. It stays at
// zero until activated and only moves while the engine is not drawing.
type Jitter struct {
	noise     Noise
	amplitude float64
	step      float64

	position float64
	offset   float64
	active   bool
}

type JitterOption func(*Jitter)

// WithAmplitude sets the peak-to-peak size of the offset.
func WithAmplitude(a float64) JitterOption {
	return func(j *Jitter) {
		if a >= 0 {
			j.amplitude = a
		}
	}
}

// WithStep sets how far the noise position moves per frame.
func WithStep(s float64) JitterOption {
	return func(j *Jitter) {
		if s > 0 {
			j.step = s
		}
	}
}

func NewJitter(n Noise, opts ...JitterOption) *Jitter {
	j := &Jitter{
		noise:     n,
		amplitude: DefaultJitterAmplitude,
		step:      DefaultJitterStep,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(j)
		}
	}
	return j
}

// Advance moves the noise position by one step and resamples the offset.
// It does nothing before activation or while frozen.
func (j *Jitter) Advance(frozen bool) {
	if !j.active || frozen {
		return
	}
	j.position += j.step
	j.resample()
}

// Activate switches the jitter on. It reports false if it was already active.
func (j *Jitter) Activate() bool {
	if j.active {
		return false
	}
	j.active = true
	j.resample()
	return true
}

func (j *Jitter) resample() {
	if j.noise == nil {
		j.offset = 0
		return
	}
	j.offset = j.noise.At(j.position)*j.amplitude - j.amplitude/2
}

// Sample returns the current offset, or 0 while inactive.
func (j *Jitter) Sample() float64 {
	if j == nil || !j.active {
		return 0
	}
	return j.offset
}

func (j *Jitter) Active() bool { return j.active }

func (j *Jitter) Position() float64 { return j.position }
