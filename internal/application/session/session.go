// Package session runs one attempt at the maze: the per-frame order of the
// player and enemy updates, the end conditions and the jump-scare timer.
// It has no ebiten dependency so the windowed and headless runners share it.
package session

import (
	"log"
	"math/rand"

	"github.com/younwookim/hollow/internal/application/state"
	"github.com/younwookim/hollow/internal/application/system"
	"github.com/younwookim/hollow/internal/domain/entity"
	"github.com/younwookim/hollow/internal/domain/sound"
	"github.com/younwookim/hollow/internal/infrastructure/config"
)

// Outcome is the result of a Step
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeVictory
	OutcomeCaught
	OutcomeAbort
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "Continue"
	case OutcomeVictory:
		return "Victory"
	case OutcomeCaught:
		return "Caught"
	case OutcomeAbort:
		return "Abort"
	default:
		return "Unknown"
	}
}

// Session owns the simulation of a single run
type Session struct {
	tuning *config.Tuning
	grid   *entity.Grid
	sink   sound.Sink
	logger *log.Logger

	players *system.PlayerSystem
	ai      *system.AISystem
	radio   *system.RadioSystem

	clock   float64
	frame   int
	outcome Outcome

	screamer   bool
	screamerAt float64
}

// New creates a session on grid. Call Start before the first Step.
func New(tuning *config.Tuning, grid *entity.Grid, sink sound.Sink, rng *rand.Rand) *Session {
	if sink == nil {
		sink = sound.Nop{}
	}
	radio := system.NewRadioSystem(&tuning.Radio, sink, rng)
	return &Session{
		tuning:  tuning,
		grid:    grid,
		sink:    sink,
		players: system.NewPlayerSystem(&tuning.Player, grid, radio, sink, rng),
		ai:      system.NewAISystem(&tuning.Enemy, grid, sink, rng),
		radio:   radio,
	}
}

// SetLogger enables transition logging. A nil logger silences it.
func (s *Session) SetLogger(l *log.Logger) {
	s.logger = l
}

func (s *Session) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

// Start resets every participant and starts the ambiance loop
func (s *Session) Start() {
	s.clock = 0
	s.frame = 0
	s.outcome = OutcomeContinue
	s.screamer = false
	s.screamerAt = 0

	s.radio.Reset()
	s.players.Reset()
	s.ai.Init()
	s.sink.Loop(sound.CueAmbiance)

	s.logf("session: started, %d walkable tiles, radio limit %d", s.grid.WalkableCount(), s.radio.Radio().MaxActivations)
}

// Stop silences every cue
func (s *Session) Stop() {
	s.sink.StopAll()
}

// Step advances the run by dt: input (ignored during the jump scare), player,
// enemy, then the end conditions. Once an outcome other than Continue is
// reached, Step keeps returning it without simulating.
func (s *Session) Step(in system.InputState, dt float64) Outcome {
	if s.outcome != OutcomeContinue {
		return s.outcome
	}
	s.clock += dt
	s.frame++

	if !s.screamer {
		s.players.HandleInput(in, dt)
	}
	s.players.Update(dt)
	s.ai.Update(dt)

	s.outcome = s.endConditions()
	return s.outcome
}

// Abort ends the run on player request
func (s *Session) Abort() Outcome {
	if s.outcome == OutcomeContinue {
		s.outcome = OutcomeAbort
		s.logf("session: aborted at %.2fs", s.clock)
	}
	return s.outcome
}

func (s *Session) endConditions() Outcome {
	p := s.players.Player()
	e := s.ai.Enemy()

	if p.Victory {
		s.radio.GameOver()
		s.logf("session: goal reached at %.2fs", s.clock)
		return OutcomeVictory
	}

	if s.tuning.Enemy.LethalSighting && e.SeePlayer && p.TorchOn && !p.Dead {
		s.radio.GameOver()
		p.Dead = true
		s.logf("session: spotted with the torch on at %.2fs", s.clock)
	}

	if p.Dead {
		if !s.screamer {
			s.screamer = true
			s.screamerAt = s.clock
			p.Velocity = 0
			s.ai.Screamer(p)
			s.sink.Play(sound.CueScream, 0)
			s.logf("session: screamer at %.2fs", s.clock)
		}
		if s.clock-s.screamerAt >= s.tuning.Scene.ScreamerDuration {
			s.sink.Stop(sound.CueScream)
			s.logf("session: caught at %.2fs", s.clock)
			return OutcomeCaught
		}
	}
	return OutcomeContinue
}

// Distortion returns the screen static intensity: zero unless the enemy is near
func (s *Session) Distortion() float64 {
	if !s.ai.Enemy().NearPlayer {
		return 0
	}
	d := s.grid.PlayerPosition.Distance(s.grid.EnemyPosition)
	c := s.tuning.Scene.Distortion
	return entity.ProximityLevel(d, c.MinDistance, c.MaxDistance, c.Max)
}

// State maps the run onto the game state machine
func (s *Session) State() state.GameState {
	switch s.outcome {
	case OutcomeVictory:
		return state.StateVictory
	case OutcomeCaught, OutcomeAbort:
		return state.StateMenu
	}
	if s.screamer {
		return state.StateScreamer
	}
	return state.StatePlaying
}

// ScreamerActive reports whether the jump scare is playing
func (s *Session) ScreamerActive() bool {
	return s.screamer
}

// Grid returns the map being played
func (s *Session) Grid() *entity.Grid {
	return s.grid
}

// Player returns the player state
func (s *Session) Player() *entity.Player {
	return s.players.Player()
}

// Enemy returns the enemy state
func (s *Session) Enemy() *entity.Enemy {
	return s.ai.Enemy()
}

// Radio returns the radio state
func (s *Session) Radio() *entity.Radio {
	return s.radio.Radio()
}
