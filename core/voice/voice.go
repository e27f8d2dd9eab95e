package voice

import (
	"github.com/ingyamilmolinar/sketchtone/core/model"
	"github.com/ingyamilmolinar/sketchtone/internal/utils"
)

const (
	DefaultMinFreq   = 120
	DefaultMaxFreq   = 500
	DefaultAmplitude = 0.5
)

// Marker style for the scrubber/segment crossing.
var (
	MarkerColor = model.HSL(0, 100, 0)
	MarkerWidth = 2.0
)

// ToneSource is a single continuous oscillator.
type ToneSource interface {
	Start()
	SetFrequency(hz float64)
	SetAmplitude(level float64)
}

// Config controls the y → frequency mapping and the audible level.
type Config struct {
	MinFreq   float64
	MaxFreq   float64
	Amplitude float64
	// Clamp keeps out-of-canvas pointer positions inside [MinFreq, MaxFreq].
	Clamp bool
}

func DefaultConfig() Config {
	return Config{
		MinFreq:   DefaultMinFreq,
		MaxFreq:   DefaultMaxFreq,
		Amplitude: DefaultAmplitude,
		Clamp:     true,
	}
}

// MapFrequency converts a canvas y to Hz. The flipped height is squared, so
// resolution is finer near the bottom of the canvas.
func MapFrequency(y, height float64, cfg Config) float64 {
	flipped := height - y
	if cfg.Clamp {
		// squaring would fold points below the canvas back up
		flipped = utils.Clamp(flipped, 0, height)
	}
	return utils.Map(flipped*flipped, 0, height*height, cfg.MinFreq, cfg.MaxFreq)
}

// Voice owns the segments of one shape and the oscillator that sounds them.
// A new voice is silent and its source is not started until the first Unmute.
type Voice struct {
	ID int

	cfg      Config
	canvas   *model.Canvas
	src      ToneSource
	segments []*model.Segment

	started bool
	muted   bool
}

func New(id int, src ToneSource, canvas *model.Canvas, cfg Config) *Voice {
	return &Voice{
		ID:     id,
		cfg:    cfg,
		canvas: canvas,
		src:    src,
		muted:  true,
	}
}

func (v *Voice) Append(seg *model.Segment) {
	v.segments = append(v.segments, seg)
}

func (v *Voice) Len() int { return len(v.segments) }

func (v *Voice) Segments() []*model.Segment {
	out := make([]*model.Segment, len(v.segments))
	copy(out, v.segments)
	return out
}

func (v *Voice) Muted() bool   { return v.muted }
func (v *Voice) Started() bool { return v.started }

// EvaluateAt returns the y where the earliest-drawn segment spanning x
// crosses it. Later overlapping segments are ignored.
func (v *Voice) EvaluateAt(x float64) (float64, bool) {
	for _, seg := range v.segments {
		if y, ok := seg.YAt(x); ok {
			return y, true
		}
	}
	return 0, false
}

func (v *Voice) MapFrequency(y float64) float64 {
	return MapFrequency(y, v.canvas.Height, v.cfg)
}

// PlayFrequency makes the voice audible at the pitch for y.
func (v *Voice) PlayFrequency(y float64) {
	v.Unmute()
	v.src.SetFrequency(v.MapFrequency(y))
}

func (v *Voice) Mute() {
	if v.muted {
		return
	}
	v.src.SetAmplitude(0)
	v.muted = true
}

func (v *Voice) Unmute() {
	if !v.started {
		v.src.Start()
		v.started = true
	}
	v.src.SetAmplitude(v.cfg.Amplitude)
	v.muted = false
}

// Play sounds the voice at the scrubber position x, marking the crossing on
// dst, or mutes it when nothing is under the scrubber.
func (v *Voice) Play(x float64, dst model.Surface) {
	y, ok := v.EvaluateAt(x)
	if !ok {
		v.Mute()
		return
	}
	p := model.Point{X: x, Y: y}
	dst.StrokeLine(p, p, MarkerColor, MarkerWidth)
	v.PlayFrequency(y)
}
