package engine

import (
	"github.com/ingyamilmolinar/sketchtone/core/beat"
	"github.com/ingyamilmolinar/sketchtone/core/model"
	"github.com/ingyamilmolinar/sketchtone/core/voice"
	game_log "github.com/ingyamilmolinar/sketchtone/internal/log"
)

// Background is the colour the canvas is cleared to every frame.
var Background = model.HSL(45, 100, 75)

// ToneFactory creates the oscillator for a new voice.
type ToneFactory func(id int) voice.ToneSource

type Options struct {
	Width, Height   float64
	Voice           voice.Config
	ScrubStep       float64
	JitterAmplitude float64
	JitterStep      float64
	NoiseSeed       uint64
}

func DefaultOptions() Options {
	return Options{
		Width:           800,
		Height:          600,
		Voice:           voice.DefaultConfig(),
		ScrubStep:       beat.DefaultStep,
		JitterAmplitude: model.DefaultJitterAmplitude,
		JitterStep:      model.DefaultJitterStep,
		NoiseSeed:       1,
	}
}

// Engine is the whole drawing session: the segments, one voice and jitter per
// shape, the scrubber and the current mode. It is driven by one Tick per
// frame from a single goroutine.
type Engine struct {
	logger *game_log.Logger
	opts   Options
	tones  ToneFactory

	canvas *model.Canvas
	store  *model.Store
	scrub  *beat.Scrubber
	seg    Segmenter

	voices  []*voice.Voice
	jitters []*model.Jitter
	current *voice.Voice
	jitter  *model.Jitter

	mode   Mode
	prev   model.Point
	primed bool
	frame  int64
}

func New(logger *game_log.Logger, opts Options, tones ToneFactory) *Engine {
	canvas := model.NewCanvas(opts.Width, opts.Height)
	e := &Engine{
		logger: logger.With("engine"),
		opts:   opts,
		tones:  tones,
		canvas: canvas,
		store:  model.NewStore(canvas),
		scrub:  beat.NewScrubber(canvas),
		mode:   ModePlayback,
	}
	if opts.ScrubStep > 0 {
		e.scrub.Step = opts.ScrubStep
	}
	e.scrub.OnSweep = e.playAt
	e.newShape()
	return e
}

/* ───────────────────────── events ───────────────────────── */

// Dispatch applies ev to the mode state machine, running the exit hook of
// the old mode and the enter hook of the new one. It reports whether the
// event caused a transition.
func (e *Engine) Dispatch(ev Event) bool {
	next, ok := transitions[e.mode][ev]
	if !ok {
		e.logger.Debugf("ignored %s in %s", ev, e.mode)
		return false
	}
	prev := e.mode
	prev.hooks().exit(e)
	e.mode = next
	next.hooks().enter(e)
	e.logger.Debugf("%s: %s -> %s", ev, prev, next)
	return true
}

func (e *Engine) Press() bool   { return e.Dispatch(EventPress) }
func (e *Engine) Release() bool { return e.Dispatch(EventRelease) }

// Resize only changes the canvas; stored geometry is untouched.
func (e *Engine) Resize(w, h float64) {
	e.canvas.Resize(w, h)
	e.logger.Debugf("canvas resized to %vx%v", w, h)
}

// Reset starts a new session: every voice is silenced and dropped, the
// store is emptied and the engine returns to playback.
func (e *Engine) Reset() {
	e.MuteAll()
	e.store.Clear()
	e.voices, e.jitters = nil, nil
	e.current, e.jitter = nil, nil
	e.scrub.Reset()
	e.seg.Reset()
	e.mode = ModePlayback
	e.newShape()
	e.logger.Infof("session reset")
}

/* ───────────────────────── frame ───────────────────────── */

// Tick runs one frame with the pointer at p, drawing onto dst.
func (e *Engine) Tick(p model.Point, dst model.Surface) {
	if !e.primed {
		e.prev, e.primed = p, true
	}
	e.frame++

	dst.Clear(Background)
	frozen := e.mode == ModeDrawing
	for _, j := range e.jitters {
		j.Advance(frozen)
	}
	e.store.Resort()
	e.store.Render(dst)

	e.mode.hooks().tick(e, p, dst)
	e.prev = p
}

func (e *Engine) enterDrawing() {
	e.seg.Reset()
}

func (e *Engine) exitDrawing() {
	e.finalizeShape()
	e.newShape()
}

func (e *Engine) tickDrawing(p model.Point, _ model.Surface) {
	if e.seg.Observe(e.prev.X, p.X) {
		e.logger.Debugf("direction reversal at x=%v, now %s", p.X, e.seg.Direction())
		e.finalizeShape()
		e.newShape()
	}
	s := model.NewSegment(e.prev.X, e.prev.Y, p.X, p.Y, e.jitter)
	e.store.Record(s)
	e.current.Append(s)
	e.current.PlayFrequency(p.Y)
}

func (e *Engine) tickPlayback(_ model.Point, dst model.Surface) {
	e.scrub.Tick(dst)
}

// playAt lets every voice react to the scrubber at x.
func (e *Engine) playAt(x float64, dst model.Surface) {
	for _, v := range e.voices {
		v.Play(x, dst)
	}
}

/* ───────────────────────── shapes ───────────────────────── */

// newShape silences the current voice and starts a fresh voice/jitter pair.
func (e *Engine) newShape() {
	if e.current != nil {
		e.current.Mute()
	}
	id := len(e.voices)
	v := voice.New(id, e.tones(id), e.canvas, e.opts.Voice)
	j := model.NewJitter(
		model.NewValueNoise(e.opts.NoiseSeed+uint64(id)),
		model.WithAmplitude(e.opts.JitterAmplitude),
		model.WithStep(e.opts.JitterStep),
	)
	e.voices = append(e.voices, v)
	e.jitters = append(e.jitters, j)
	e.current, e.jitter = v, j
	e.logger.Debugf("new shape %d", id)
}

func (e *Engine) finalizeShape() {
	if e.jitter.Activate() {
		// the fresh offset can move this shape's segments in depth
		e.store.Resort()
		e.logger.Debugf("shape %d finalized with %d segments", e.current.ID, e.current.Len())
	}
}

// MuteAll silences every voice.
func (e *Engine) MuteAll() {
	for _, v := range e.voices {
		v.Mute()
	}
}

/* ───────────────────────── accessors ───────────────────────── */

func (e *Engine) Mode() Mode                   { return e.mode }
func (e *Engine) Canvas() *model.Canvas        { return e.canvas }
func (e *Engine) Store() *model.Store          { return e.store }
func (e *Engine) Scrubber() *beat.Scrubber     { return e.scrub }
func (e *Engine) Current() *voice.Voice        { return e.current }
func (e *Engine) CurrentJitter() *model.Jitter { return e.jitter }
func (e *Engine) Frame() int64                 { return e.frame }

func (e *Engine) Voices() []*voice.Voice {
	out := make([]*voice.Voice, len(e.voices))
	copy(out, e.voices)
	return out
}

func (e *Engine) Jitters() []*model.Jitter {
	out := make([]*model.Jitter, len(e.jitters))
	copy(out, e.jitters)
	return out
}
