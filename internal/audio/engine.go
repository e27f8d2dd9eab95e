package audio

import (
	"errors"
	"sync"
	"time"

	"github.com/ingyamilmolinar/sketchtone/core/voice"
	game_log "github.com/ingyamilmolinar/sketchtone/internal/log"
)

const (
	DefaultSampleRate = 44100
	DefaultGlide      = 5 * time.Millisecond

	bufferSizeBytes10ms = DefaultSampleRate / 100 * 2 // 10ms of 16-bit mono audio
)

var errNoDevice = errors.New("audio device unavailable")

// Config describes the output stream.
type Config struct {
	SampleRate int
	Glide      time.Duration
	// Offline engines never open a device; the mix is pulled with Render.
	Offline bool
}

type Option func(*Config)

func WithSampleRate(sr int) Option {
	return func(c *Config) {
		if sr > 0 {
			c.SampleRate = sr
		}
	}
}

func WithOffline() Option {
	return func(c *Config) { c.Offline = true }
}

// WithGlide sets the amplitude smoothing time constant.
func WithGlide(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.Glide = d
		}
	}
}

// Engine hands out tones and plays their mix on the default output device.
// The device is opened lazily on the first Resume; if it cannot be opened
// the tones keep working silently.
type Engine struct {
	cfg    Config
	logger *game_log.Logger
	mix    *mixer

	once   sync.Once
	mu     sync.Mutex
	dev    device
	devErr error
}

// device is the platform output, see context_*.go.
type device interface {
	Resume() error
	Close() error
}

func NewEngine(logger *game_log.Logger, opts ...Option) *Engine {
	cfg := Config{SampleRate: DefaultSampleRate, Glide: DefaultGlide}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Engine{cfg: cfg, logger: logger.With("audio"), mix: &mixer{}}
}

func (e *Engine) Config() Config { return e.cfg }

// NewTone registers a new oscillator with the mixer.
func (e *Engine) NewTone(id int) voice.ToneSource {
	t := newTone(id, e.cfg)
	e.mix.Add(t)
	return t
}

// Tones returns how many tones the mixer is currently summing.
func (e *Engine) Tones() int { return e.mix.Len() }

// Reset drops every tone, e.g. when a new session starts.
func (e *Engine) Reset() { e.mix.Reset() }

// Resume opens the device on first use and resumes it afterwards.
func (e *Engine) Resume() error {
	if e.cfg.Offline {
		return nil
	}
	e.once.Do(func() {
		dev, err := platformOpen(e.cfg.SampleRate, e.mix)
		e.mu.Lock()
		e.dev, e.devErr = dev, err
		e.mu.Unlock()
		if err != nil {
			e.logger.Errorf("open output: %v", err)
			return
		}
		e.logger.Infof("output open at %d Hz", e.cfg.SampleRate)
	})
	e.mu.Lock()
	dev, err := e.dev, e.devErr
	e.mu.Unlock()
	if err != nil {
		return err
	}
	return dev.Resume()
}

func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.dev == nil {
		return nil
	}
	err := e.dev.Close()
	e.dev = nil
	e.devErr = errNoDevice
	return err
}

// Render pulls len(dst) samples from the mix, exactly as the device would.
// Used for offline rendering when no device is open.
func (e *Engine) Render(dst []float64) { e.mix.Render(dst) }
