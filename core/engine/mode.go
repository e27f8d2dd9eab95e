package engine

import "github.com/ingyamilmolinar/sketchtone/core/model"

type Mode int

const (
	ModePlayback Mode = iota
	ModeDrawing
)

func (m Mode) String() string {
	switch m {
	case ModePlayback:
		return "playback"
	case ModeDrawing:
		return "drawing"
	default:
		return "unknown"
	}
}

type Event int

const (
	EventPress Event = iota
	EventRelease
)

func (ev Event) String() string {
	if ev == EventPress {
		return "press"
	}
	return "release"
}

// transitions lists the only legal mode changes. Anything else is ignored.
var transitions = map[Mode]map[Event]Mode{
	ModePlayback: {EventPress: ModeDrawing},
	ModeDrawing:  {EventRelease: ModePlayback},
}

type modeHooks struct {
	enter func(*Engine)
	exit  func(*Engine)
	tick  func(*Engine, model.Point, model.Surface)
}

func (m Mode) hooks() modeHooks {
	switch m {
	case ModeDrawing:
		return modeHooks{
			enter: (*Engine).enterDrawing,
			exit:  (*Engine).exitDrawing,
			tick:  (*Engine).tickDrawing,
		}
	default:
		return modeHooks{
			enter: func(*Engine) {},
			exit:  (*Engine).MuteAll,
			tick:  (*Engine).tickPlayback,
		}
	}
}
