package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Cue is a presentation effect triggered by a move.
type Cue int

const (
	CueNone Cue = iota
	CueMove
	CueWin
	CueLoss
	CueRejected
)

func (c Cue) String() string {
	switch c {
	case CueMove:
		return "move"
	case CueWin:
		return "win"
	case CueLoss:
		return "loss"
	case CueRejected:
		return "rejected"
	default:
		return "none"
	}
}

const bell = "\a"

// CueObserver turns transition facts into cues. Win and loss ring the
// terminal bell on out; every cue is logged at debug level.
type CueObserver struct {
	out    io.Writer
	logger *log.Logger
}

// NewCueObserver creates an observer. Either argument may be nil.
func NewCueObserver(out io.Writer, logger *log.Logger) *CueObserver {
	return &CueObserver{out: out, logger: logger}
}

// Cues lists the cues for a transition, most significant last.
func Cues(tr t2048.Transition) []Cue {
	if tr.Rejected {
		return []Cue{CueRejected}
	}
	if !tr.Changed {
		return nil
	}

	cues := []Cue{CueMove}
	if tr.WonNow {
		cues = append(cues, CueWin)
	}
	if tr.OverNow {
		cues = append(cues, CueLoss)
	}
	return cues
}

// Observe emits the cues for a transition and returns them.
func (o *CueObserver) Observe(tr t2048.Transition) []Cue {
	cues := Cues(tr)
	for _, c := range cues {
		if o.logger != nil {
			o.logger.Debug("cue", "cue", c, "direction", tr.Direction, "delta", tr.ScoreDelta)
		}
		if (c == CueWin || c == CueLoss) && o.out != nil {
			io.WriteString(o.out, bell) //nolint:errcheck
		}
	}
	return cues
}
