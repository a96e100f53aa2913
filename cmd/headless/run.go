package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/younwookim/hollow/internal/application/autopilot"
	"github.com/younwookim/hollow/internal/application/replay"
	"github.com/younwookim/hollow/internal/application/session"
	"github.com/younwookim/hollow/internal/application/system"
	"github.com/younwookim/hollow/internal/domain/entity"
	"github.com/younwookim/hollow/internal/domain/sound"
	"github.com/younwookim/hollow/internal/infrastructure/config"
)

// soundWindow is how many recent sound events a run keeps
const soundWindow = 256

// runOptions describes one windowless session
type runOptions struct {
	Config  *config.GameConfig
	Seed    int64
	Seconds float64
	// Replay drives the session when set; otherwise the autopilot walks to the exit
	Replay *replay.ReplayData
	Dark   bool
	// Recorder, when set, captures every frame's input
	Recorder *replay.Recorder
	Logger   *log.Logger
}

// run simulates a session at the configured framerate until it ends, the
// input runs out, or the time limit passes
func run(opts runOptions) (session.Snapshot, *entity.Grid, error) {
	g, err := opts.Config.Layout.Grid()
	if err != nil {
		return session.Snapshot{}, nil, fmt.Errorf("failed to build map %q: %w", opts.Config.Layout.Name, err)
	}

	seed := opts.Seed
	var next func(*entity.Player) (system.InputState, bool)
	if opts.Replay != nil {
		replayer := replay.NewReplayer(*opts.Replay)
		if replayer.Map() != opts.Config.Layout.Name {
			return session.Snapshot{}, nil, fmt.Errorf("replay was recorded on map %q, not %q", replayer.Map(), opts.Config.Layout.Name)
		}
		seed = replayer.Seed()
		next = func(*entity.Player) (system.InputState, bool) { return replayer.GetInput() }
	} else {
		pilot, ok := autopilot.New(g, g.PlayerStart, opts.Dark)
		if !ok {
			return session.Snapshot{}, nil, fmt.Errorf("no route to the exit on map %q", opts.Config.Layout.Name)
		}
		next = func(p *entity.Player) (system.InputState, bool) { return pilot.Input(p), true }
	}

	sink := &sound.Log{Logger: opts.Logger, Limit: soundWindow}
	s := session.New(opts.Config.Tuning, g, sink, rand.New(rand.NewSource(seed)))
	s.SetLogger(opts.Logger)
	s.Start()
	defer s.Stop()

	dt := 1.0 / float64(opts.Config.Tuning.Display.Framerate)
	limit := int(math.Round(opts.Seconds / dt))
	for frame := 0; frame < limit; frame++ {
		in, ok := next(s.Player())
		if !ok {
			break
		}
		if opts.Recorder != nil {
			opts.Recorder.RecordFrame(in)
		}
		if s.Step(in, dt) != session.OutcomeContinue {
			break
		}
	}

	return s.Snapshot(), g, nil
}
