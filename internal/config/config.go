package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/ingyamilmolinar/sketchtone/core/beat"
	"github.com/ingyamilmolinar/sketchtone/core/engine"
	"github.com/ingyamilmolinar/sketchtone/core/model"
	"github.com/ingyamilmolinar/sketchtone/core/voice"
	game_log "github.com/ingyamilmolinar/sketchtone/internal/log"
)

// Environment overrides, applied after flags that were not set explicitly.
const (
	EnvSeed     = "SKETCHTONE_SEED"
	EnvHeadless = "SKETCHTONE_HEADLESS"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Width, Height int

	MinFreq, MaxFreq float64
	Amplitude        float64
	Unclamped        bool

	ScrubStep       float64
	JitterAmplitude float64
	JitterStep      float64
	Seed            uint64

	LogLevel string

	// Headless runs the scripted demo instead of opening a window.
	Headless     bool
	DemoFrames   int
	SnapshotPath string
	WAVPath      string

	Fyne bool
}

func Default() Config {
	return Config{
		Width:           800,
		Height:          600,
		MinFreq:         voice.DefaultMinFreq,
		MaxFreq:         voice.DefaultMaxFreq,
		Amplitude:       voice.DefaultAmplitude,
		ScrubStep:       beat.DefaultStep,
		JitterAmplitude: model.DefaultJitterAmplitude,
		JitterStep:      model.DefaultJitterStep,
		Seed:            1,
		LogLevel:        "info",
		DemoFrames:      300,
		SnapshotPath:    "sketchtone.png",
		WAVPath:         "sketchtone.wav",
	}
}

// Parse fills a Config from args (without the program name) and the
// environment. The result is validated.
func Parse(name string, args []string, lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.IntVar(&c.Width, "width", c.Width, "canvas width in px")
	fs.IntVar(&c.Height, "height", c.Height, "canvas height in px")
	fs.Float64Var(&c.MinFreq, "min-freq", c.MinFreq, "frequency at the bottom edge (Hz)")
	fs.Float64Var(&c.MaxFreq, "max-freq", c.MaxFreq, "frequency at the top edge (Hz)")
	fs.Float64Var(&c.Amplitude, "amplitude", c.Amplitude, "voice amplitude in [0,1]")
	fs.BoolVar(&c.Unclamped, "unclamped", c.Unclamped, "let frequencies leave [min-freq,max-freq] when jitter pushes a point off-canvas")
	fs.Float64Var(&c.ScrubStep, "scrub-step", c.ScrubStep, "scrubber advance per frame (px)")
	fs.Float64Var(&c.JitterAmplitude, "jitter", c.JitterAmplitude, "jitter amplitude (px)")
	fs.Float64Var(&c.JitterStep, "jitter-step", c.JitterStep, "noise position advance per frame")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "base noise seed")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn, error or none")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "run the scripted demo and write a snapshot and a WAV")
	fs.IntVar(&c.DemoFrames, "demo-frames", c.DemoFrames, "playback frames rendered by the headless demo, at 60 per second of audio")
	fs.StringVar(&c.SnapshotPath, "snapshot", c.SnapshotPath, "PNG path for the headless demo")
	fs.StringVar(&c.WAVPath, "wav", c.WAVPath, "WAV path for the headless demo, empty to skip")
	fs.BoolVar(&c.Fyne, "fyne", c.Fyne, "open the control panel window (fyne builds only)")
	if err := fs.Parse(args); err != nil {
		return c, fmt.Errorf("parse flags: %w", err)
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(game_log.EnvLevel); ok && !set["log-level"] {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvSeed); ok && !set["seed"] {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v, ok := lookup(EnvHeadless); ok && !set["headless"] {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvHeadless, err)
		}
		c.Headless = b
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalid, c.Width, c.Height)
	case c.MinFreq <= 0 || c.MaxFreq <= c.MinFreq:
		return fmt.Errorf("%w: frequency range [%v,%v]", ErrInvalid, c.MinFreq, c.MaxFreq)
	case c.Amplitude < 0 || c.Amplitude > 1:
		return fmt.Errorf("%w: amplitude %v", ErrInvalid, c.Amplitude)
	case c.ScrubStep <= 0:
		return fmt.Errorf("%w: scrub step %v", ErrInvalid, c.ScrubStep)
	case c.JitterAmplitude < 0:
		return fmt.Errorf("%w: jitter amplitude %v", ErrInvalid, c.JitterAmplitude)
	case c.JitterStep <= 0:
		return fmt.Errorf("%w: jitter step %v", ErrInvalid, c.JitterStep)
	case c.DemoFrames < 0:
		return fmt.Errorf("%w: demo frames %d", ErrInvalid, c.DemoFrames)
	case c.Headless && c.SnapshotPath == "":
		return fmt.Errorf("%w: headless run needs a snapshot path", ErrInvalid)
	}
	return nil
}

func (c Config) Level() game_log.Level { return game_log.LevelFromString(c.LogLevel) }

func (c Config) VoiceConfig() voice.Config {
	return voice.Config{
		MinFreq:   c.MinFreq,
		MaxFreq:   c.MaxFreq,
		Amplitude: c.Amplitude,
		Clamp:     !c.Unclamped,
	}
}

func (c Config) EngineOptions() engine.Options {
	return engine.Options{
		Width:           float64(c.Width),
		Height:          float64(c.Height),
		Voice:           c.VoiceConfig(),
		ScrubStep:       c.ScrubStep,
		JitterAmplitude: c.JitterAmplitude,
		JitterStep:      c.JitterStep,
		NoiseSeed:       c.Seed,
	}
}
