package engine

import (
	"io"
	"testing"

	"github.com/ingyamilmolinar/sketchtone/core/model"
	"github.com/ingyamilmolinar/sketchtone/core/voice"
	game_log "github.com/ingyamilmolinar/sketchtone/internal/log"
)

var testLogger *game_log.Logger

func init() {
	testLogger = game_log.New(io.Discard, game_log.LevelError)
}

type toneLog struct {
	starts int
	amps   []float64
	freqs  []float64
	order  []string
}

func (t *toneLog) Start() { t.starts++; t.order = append(t.order, "start") }
func (t *toneLog) SetFrequency(hz float64) {
	t.freqs = append(t.freqs, hz)
	t.order = append(t.order, "freq")
}
func (t *toneLog) SetAmplitude(a float64) {
	t.amps = append(t.amps, a)
	t.order = append(t.order, "amp")
}

type nullSurface struct{ lines int }

func (*nullSurface) Clear(model.Color)                                       {}
func (*nullSurface) FillQuad(_, _, _, _ model.Point, _ model.Color)          {}
func (s *nullSurface) StrokeLine(_, _ model.Point, _ model.Color, _ float64) { s.lines++ }

func newTestEngine() (*Engine, *[]*toneLog) {
	tones := &[]*toneLog{}
	e := New(testLogger, DefaultOptions(), func(int) voice.ToneSource {
		t := &toneLog{}
		*tones = append(*tones, t)
		return t
	})
	return e, tones
}

func drag(e *Engine, s model.Surface, pts ...model.Point) {
	for _, p := range pts {
		e.Tick(p, s)
	}
}

func TestEngineStartsInPlaybackWithOneShape(t *testing.T) {
	e, tones := newTestEngine()
	if e.Mode() != ModePlayback {
		t.Fatalf("mode = %v", e.Mode())
	}
	if len(e.Voices()) != 1 || len(*tones) != 1 || e.Current() == nil {
		t.Fatal("expected one pre-allocated voice")
	}
}

func TestTransitionTable(t *testing.T) {
	e, _ := newTestEngine()
	if e.Release() {
		t.Fatal("release in playback should be ignored")
	}
	if !e.Press() || e.Mode() != ModeDrawing {
		t.Fatal("press should enter drawing")
	}
	before := len(e.Voices())
	if e.Press() {
		t.Fatal("press while drawing should be ignored")
	}
	if len(e.Voices()) != before {
		t.Fatal("ignored press must not run hooks")
	}
	if !e.Release() || e.Mode() != ModePlayback {
		t.Fatal("release should enter playback")
	}
}

func TestSingleReversalMakesTwoShapes(t *testing.T) {
	e, _ := newTestEngine()
	var s nullSurface
	e.Tick(model.Point{X: 0, Y: 300}, &s)
	e.Press()
	drag(e, &s,
		model.Point{X: 10, Y: 300},
		model.Point{X: 20, Y: 290},
		model.Point{X: 30, Y: 280},
		model.Point{X: 20, Y: 270}, // reversal
		model.Point{X: 10, Y: 260},
	)
	e.Release()

	var filled []*voice.Voice
	for _, v := range e.Voices() {
		if v.Len() > 0 {
			filled = append(filled, v)
		}
	}
	if len(filled) != 2 {
		t.Fatalf("got %d voices with segments, want 2", len(filled))
	}
	if filled[0].Len() != 3 || filled[1].Len() != 2 {
		t.Fatalf("segment split = %d/%d, want 3/2", filled[0].Len(), filled[1].Len())
	}
	for _, seg := range filled[1].Segments() {
		a, b := seg.Raw()
		if a.X < 10 || b.X > 30 {
			t.Fatalf("post-reversal segment %v %v", a, b)
		}
	}
	if e.Store().Len() != 5 {
		t.Fatalf("store holds %d segments", e.Store().Len())
	}
	if len(e.Voices()) != 3 || e.Current().Len() != 0 {
		t.Fatal("release should leave a fresh empty current voice")
	}
}

func TestReleaseMutesAndActivatesOnce(t *testing.T) {
	e, tones := newTestEngine()
	var s nullSurface
	e.Tick(model.Point{X: 0, Y: 300}, &s)
	e.Press()
	drag(e, &s, model.Point{X: 5, Y: 300}, model.Point{X: 10, Y: 310})

	shape := e.Current()
	jit := e.CurrentJitter()
	tl := (*tones)[shape.ID]
	ampsBefore := len(tl.amps)
	if jit.Active() {
		t.Fatal("jitter active while drawing")
	}

	e.Release()
	if got := len(tl.amps) - ampsBefore; got != 1 || tl.amps[len(tl.amps)-1] != 0 {
		t.Fatalf("release issued %d amplitude calls (%v)", got, tl.amps)
	}
	if !jit.Active() {
		t.Fatal("release should activate the finalized jitter")
	}
	if jit.Activate() {
		t.Fatal("jitter activated twice")
	}
	if tl.order[0] != "start" {
		t.Fatalf("source not started before amplitude change: %v", tl.order)
	}
}

func TestJitterFrozenWhileDrawing(t *testing.T) {
	e, _ := newTestEngine()
	var s nullSurface
	e.Tick(model.Point{X: 0, Y: 300}, &s)
	e.Press()
	drag(e, &s, model.Point{X: 5, Y: 300})
	e.Release()
	first := e.Jitters()[0]
	pos := first.Position()

	e.Press()
	drag(e, &s, model.Point{X: 50, Y: 100}, model.Point{X: 60, Y: 100})
	if first.Position() != pos {
		t.Fatal("finalized jitter advanced during drawing")
	}
	e.Release()
	e.Tick(model.Point{X: 60, Y: 100}, &s)
	if first.Position() == pos {
		t.Fatal("jitter should advance in playback")
	}
	if !e.Store().Sorted() {
		t.Fatal("store not sorted after jitter advance")
	}
}

func TestPlaybackSweepsAndSounds(t *testing.T) {
	opts := DefaultOptions()
	opts.JitterAmplitude = 0
	tones := []*toneLog{}
	e := New(testLogger, opts, func(int) voice.ToneSource {
		tl := &toneLog{}
		tones = append(tones, tl)
		return tl
	})
	var s nullSurface
	e.Tick(model.Point{X: 0, Y: 500}, &s)
	e.Press()
	e.Tick(model.Point{X: 100, Y: 300}, &s)
	e.Release()

	shape := tones[0]
	freqsBefore := len(shape.freqs)
	e.Scrubber().X = 50
	s.lines = 0
	e.Tick(model.Point{X: 100, Y: 300}, &s)

	if e.Scrubber().X != 53 {
		t.Fatalf("scrubber at %v, want 53", e.Scrubber().X)
	}
	if len(shape.freqs) != freqsBefore+1 {
		t.Fatal("voice under the scrubber did not sound")
	}
	got := shape.freqs[len(shape.freqs)-1]
	if got < 162.1 || got > 162.3 {
		t.Fatalf("frequency %v, want ≈162.2", got)
	}
	// store outline + sweep + marker
	if s.lines != 3 {
		t.Fatalf("drew %d lines, want 3", s.lines)
	}
	if !e.Voices()[1].Muted() {
		t.Fatal("empty voice should stay muted")
	}
}

func TestPressMutesAllVoices(t *testing.T) {
	e, _ := newTestEngine()
	var s nullSurface
	e.Tick(model.Point{X: 0, Y: 500}, &s)
	e.Press()
	e.Tick(model.Point{X: 100, Y: 300}, &s)
	e.Release()
	e.Scrubber().X = 50
	e.Tick(model.Point{X: 100, Y: 300}, &s)
	if e.Voices()[0].Muted() {
		t.Fatal("voice should be sounding in playback")
	}
	e.Press()
	for _, v := range e.Voices() {
		if !v.Muted() {
			t.Fatalf("voice %d still sounding after leaving playback", v.ID)
		}
	}
}

func TestResizeAndReset(t *testing.T) {
	e, _ := newTestEngine()
	var s nullSurface
	e.Tick(model.Point{X: 0, Y: 500}, &s)
	e.Press()
	e.Tick(model.Point{X: 10, Y: 400}, &s)

	e.Resize(1024, 768)
	if e.Canvas().Width != 1024 || e.Canvas().Height != 768 {
		t.Fatal("resize not applied")
	}
	if e.Store().Len() != 1 {
		t.Fatal("resize must not touch geometry")
	}

	e.Reset()
	if e.Store().Len() != 0 || len(e.Voices()) != 1 || e.Mode() != ModePlayback {
		t.Fatal("reset should start an empty session in playback")
	}
}

func TestStoreSortedAfterFinalize(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		opts := DefaultOptions()
		opts.NoiseSeed = seed
		e := New(testLogger, opts, func(int) voice.ToneSource { return &toneLog{} })
		var s nullSurface

		e.Tick(model.Point{X: 100, Y: 300}, &s)
		e.Press()
		e.Tick(model.Point{X: 110, Y: 310}, &s)
		e.Tick(model.Point{X: 105, Y: 290}, &s)
		if !e.Store().Sorted() {
			t.Fatalf("seed %d: store unsorted after reversal", seed)
		}
		e.Release()
		if !e.Store().Sorted() {
			t.Fatalf("seed %d: store unsorted after release", seed)
		}
	}
}
