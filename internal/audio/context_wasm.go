//go:build js && wasm && !test

package audio

import (
	"io"

	"github.com/ebitengine/oto/v3"
)

type otoDevice struct {
	ctx    *oto.Context
	player *oto.Player
}

// platformOpen does not wait for the context: browsers only unlock audio
// after a user gesture, which is also what triggers the first Resume.
func platformOpen(sampleRate int, r io.Reader) (device, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, err
	}
	go func() { <-ready }()
	p := ctx.NewPlayer(r)
	p.SetBufferSize(bufferSizeBytes10ms)
	p.Play()
	return &otoDevice{ctx: ctx, player: p}, nil
}

func (d *otoDevice) Resume() error { return d.ctx.Resume() }

func (d *otoDevice) Close() error { return d.player.Close() }
