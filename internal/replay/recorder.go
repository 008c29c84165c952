package replay

import (
	"time"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/games/bricks"
)

// Recorder captures the ticks of a game. Attach it with Game.SetRecorder;
// every Reset starts a new recording. It is not safe for concurrent use.
type Recorder struct {
	rec *Recording
	now func() time.Time
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{now: time.Now}
}

// Begin starts a new recording, dropping the previous one.
func (r *Recorder) Begin(gameID string, seed int64, cfg config.BricksConfig) {
	r.rec = &Recording{
		Version:   Version,
		GameID:    gameID,
		Seed:      seed,
		Config:    cfg,
		Frames:    make([]Frame, 0, 1024),
		CreatedAt: r.now().UTC(),
	}
}

// Record appends one simulated tick.
func (r *Recorder) Record(cmd bricks.Command, dt float64) {
	if r.rec == nil {
		return
	}
	r.rec.Frames = append(r.rec.Frames, Frame{Command: cmd, DT: dt})
}

// Recording returns the current recording, or nil before the first Begin.
func (r *Recorder) Recording() *Recording {
	return r.rec
}

var _ bricks.TickRecorder = (*Recorder)(nil)
