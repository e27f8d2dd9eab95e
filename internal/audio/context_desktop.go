//go:build !js && !test

package audio

import (
	"io"

	"github.com/ebitengine/oto/v3"
)

type otoDevice struct {
	ctx    *oto.Context
	player *oto.Player
}

func platformOpen(sampleRate int, r io.Reader) (device, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, err
	}
	<-ready
	p := ctx.NewPlayer(r)
	p.SetBufferSize(bufferSizeBytes10ms)
	p.Play()
	return &otoDevice{ctx: ctx, player: p}, nil
}

func (d *otoDevice) Resume() error { return d.ctx.Resume() }

func (d *otoDevice) Close() error {
	if err := d.player.Close(); err != nil {
		return err
	}
	return d.ctx.Suspend()
}
