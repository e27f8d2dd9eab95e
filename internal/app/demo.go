package app

import (
	"fmt"
	"os"

	"github.com/ingyamilmolinar/sketchtone/core/model"
	"github.com/ingyamilmolinar/sketchtone/internal/audio"
)

// TPS is the frame rate the demo assumes when turning frames into audio.
const TPS = 60

type DemoOptions struct {
	Frames       int
	SnapshotPath string
	WAVPath      string
}

// ZigZag returns a stroke that goes right, back left and right again across
// the middle of the canvas, one point per frame.
func ZigZag(width, height float64, steps int) []model.Point {
	if steps < 2 {
		steps = 2
	}
	legs := [][2]model.Point{
		{{X: width * 0.1, Y: height * 0.7}, {X: width * 0.6, Y: height * 0.3}},
		{{X: width * 0.6, Y: height * 0.3}, {X: width * 0.3, Y: height * 0.5}},
		{{X: width * 0.3, Y: height * 0.5}, {X: width * 0.9, Y: height * 0.2}},
	}
	var pts []model.Point
	for _, leg := range legs {
		a, b := leg[0], leg[1]
		for i := 1; i <= steps; i++ {
			t := float64(i) / float64(steps)
			pts = append(pts, model.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t})
		}
	}
	return pts
}

// RunDemo draws stroke, lets the scrubber play for opts.Frames frames while
// rendering the mix offline, then writes the last frame as PNG and the audio
// as WAV.
func RunDemo(c *Controller, snd *audio.Engine, stroke []model.Point, opts DemoOptions) error {
	if len(stroke) == 0 {
		return fmt.Errorf("demo: empty stroke")
	}
	perFrame := snd.Config().SampleRate / TPS
	var pcm []float64
	frame := func(in Input) {
		c.Update(in)
		if opts.WAVPath == "" {
			return
		}
		block := make([]float64, perFrame)
		snd.Render(block)
		pcm = append(pcm, block...)
	}

	first := stroke[0]
	frame(Input{X: first.X, Y: first.Y})
	for _, p := range stroke {
		frame(Input{X: p.X, Y: p.Y, Down: true})
	}
	last := stroke[len(stroke)-1]
	for i := 0; i < opts.Frames; i++ {
		frame(Input{X: last.X, Y: last.Y})
	}
	c.logger.Infof("demo: %d shapes, %d segments, %d frames",
		len(c.Engine().Voices())-1, c.Engine().Store().Len(), c.Engine().Frame())

	if err := c.SaveSnapshot(opts.SnapshotPath); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	if opts.WAVPath == "" {
		return nil
	}
	f, err := os.Create(opts.WAVPath)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	if err := audio.WriteWAV(f, pcm, snd.Config().SampleRate); err != nil {
		f.Close()
		return fmt.Errorf("demo: write %s: %w", opts.WAVPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	c.logger.Infof("demo: wrote %.1fs of audio to %s", float64(len(pcm))/float64(snd.Config().SampleRate), opts.WAVPath)
	return nil
}
