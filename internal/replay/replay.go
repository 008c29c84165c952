// Package replay records the command stream of a Bricks run and plays it back.
// A recording holds the seed, the exact tunables and every simulated
// (command, dt) pair, so a replay reproduces the run tick for tick.
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/games/bricks"
)

// Version is the recording format version written by this package.
const Version = 1

// ErrVersion is returned when a recording was written by another format version.
var ErrVersion = errors.New("replay: unsupported recording version")

// Frame is one simulated tick.
type Frame struct {
	Command bricks.Command `msgpack:"c"`
	DT      float64        `msgpack:"dt"`
}

// Recording is a complete run.
type Recording struct {
	Version   int                 `msgpack:"v"`
	GameID    string              `msgpack:"game"`
	Seed      int64               `msgpack:"seed"`
	Config    config.BricksConfig `msgpack:"config"`
	Frames    []Frame             `msgpack:"frames"`
	CreatedAt time.Time           `msgpack:"created_at"`
}

// Duration returns the simulated time covered by the recording.
func (r *Recording) Duration() time.Duration {
	var total float64
	for _, f := range r.Frames {
		total += f.DT
	}
	return time.Duration(total * float64(time.Second))
}

// Encode writes rec to w as msgpack. Config fields use their yaml names.
func Encode(w io.Writer, rec *Recording) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("yaml")
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	return nil
}

// Decode reads a recording written by Encode.
func Decode(r io.Reader) (*Recording, error) {
	dec := msgpack.NewDecoder(r)
	dec.SetCustomStructTag("yaml")

	var rec Recording
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("replay: decode: %w", err)
	}
	if rec.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, rec.Version)
	}
	return &rec, nil
}

// Save writes rec to path, creating parent directories.
func Save(path string, rec *Recording) error {
	var buf bytes.Buffer
	if err := Encode(&buf, rec); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("replay: create directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("replay: write %s: %w", path, err)
	}
	return nil
}

// Load reads a recording from path.
func Load(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Result is the outcome of playing a recording back.
type Result struct {
	Score    int
	Height   float64
	Ticks    int
	GameOver bool
	Sim      *bricks.Sim // Final simulation state
}

// Play runs rec through a fresh simulation. Frames after game over are ignored.
func Play(rec *Recording) (Result, error) {
	if rec.Version != Version {
		return Result{}, fmt.Errorf("%w: %d", ErrVersion, rec.Version)
	}
	if err := rec.Config.Validate(); err != nil {
		return Result{}, fmt.Errorf("replay: recorded config: %w", err)
	}

	sim := bricks.NewSim(rec.Config, rec.Seed)
	for _, f := range rec.Frames {
		if sim.Tick(f.Command, f.DT) {
			break
		}
	}

	return Result{
		Score:    sim.Score(),
		Height:   sim.Height(),
		Ticks:    sim.Ticks(),
		GameOver: sim.Over(),
		Sim:      sim,
	}, nil
}
