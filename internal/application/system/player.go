package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/hollow/internal/domain/entity"
	"github.com/younwookim/hollow/internal/domain/sound"
	"github.com/younwookim/hollow/internal/infrastructure/config"
)

// PlayerSystem moves the player through the maze and tracks victory and death
type PlayerSystem struct {
	config *config.PlayerConfig
	grid   *entity.Grid
	sink   sound.Sink
	rng    *rand.Rand
	radio  *RadioSystem
	player *entity.Player

	clock float64
}

// NewPlayerSystem creates a player system standing on the grid's start tile
func NewPlayerSystem(cfg *config.PlayerConfig, grid *entity.Grid, radio *RadioSystem, sink sound.Sink, rng *rand.Rand) *PlayerSystem {
	if sink == nil {
		sink = sound.Nop{}
	}
	return &PlayerSystem{
		config: cfg,
		grid:   grid,
		sink:   sink,
		rng:    rng,
		radio:  radio,
		player: entity.NewPlayer(grid.PlayerStart),
	}
}

// Player returns the player state
func (s *PlayerSystem) Player() *entity.Player {
	return s.player
}

// Reset puts the player back on the start tile
func (s *PlayerSystem) Reset() {
	s.player.Reset(s.grid.PlayerStart)
	s.grid.PlayerPosition = s.player.Position
	s.clock = 0
}

// HandleInput applies look, movement and the torch and radio toggles
func (s *PlayerSystem) HandleInput(in InputState, dt float64) {
	p := s.player
	p.Look(in.LookX, in.LookY)

	step := s.config.MovementSpeed * dt
	moved := false
	for _, m := range []struct {
		held bool
		dir  entity.Direction
	}{
		{in.Forward, entity.DirForward},
		{in.Backward, entity.DirBackward},
		{in.Left, entity.DirLeft},
		{in.Right, entity.DirRight},
	} {
		if !m.held {
			continue
		}
		moved = true
		if s.Collide(m.dir, step) {
			continue
		}
		p.Position = p.Position.Add(p.Offset(m.dir, step))
		// FPS lock: the eye never leaves its height
		p.Position.Y = p.EyeHeight
	}

	if moved {
		p.Velocity = step
	} else {
		p.Velocity = 0
	}
	s.grid.PlayerPosition = p.Position

	if in.ToggleTorch {
		s.sink.Play(sound.CueTorchClick, 0)
		p.ToggleTorch()
	}
	if in.ToggleRadio {
		s.radio.Toggle(s.DistanceToWin())
	}
}

// Update runs the radio clock, the head bob, and the victory and death checks
func (s *PlayerSystem) Update(dt float64) {
	s.clock += dt
	s.radio.Update(dt)

	p := s.player
	if p.Velocity > 0 {
		p.Position.Y = p.EyeHeight + s.headbob()
	} else {
		p.Position.Y = p.EyeHeight
	}
	s.grid.PlayerPosition = p.Position

	if s.IsVictory() {
		p.Victory = true
	}
	p.Dead = s.radio.Radio().PlayerDead
}

// headbob returns the eye offset for the current time and plays one footstep
// each time the bob dips to the step threshold
func (s *PlayerSystem) headbob() float64 {
	hb := s.config.Headbob
	bob := math.Abs(math.Sin(math.Pi*s.clock/hb.Frequency)) * hb.Amount

	p := s.player
	if bob >= hb.StepThreshold && p.Step {
		p.Step = false
	}
	if bob <= hb.StepThreshold && !p.Step {
		p.Step = true
		s.sink.Play(sound.CueFootstep, s.rng.Intn(sound.FootstepVariants))
	}
	return bob
}

// Collide reports whether a step of length step in dir would touch a wall.
// Each wall blocks a square of half extent WallHalfExtent+CollisionOffset, bounds inclusive.
func (s *PlayerSystem) Collide(dir entity.Direction, step float64) bool {
	future := s.player.Position.Add(s.player.Offset(dir, step))
	half := s.config.WallHalfExtent + s.config.CollisionOffset
	for _, w := range s.grid.Walls {
		if entity.BoxAround(w, half).Contains(future) {
			return true
		}
	}
	return false
}

// IsVictory reports whether the player stands in the win box
func (s *PlayerSystem) IsVictory() bool {
	half := s.config.WinHalfExtent + s.config.CollisionOffset
	return entity.BoxAround(s.grid.Win, half).Contains(s.player.Position)
}

// DistanceToWin returns the straight-line distance from the player to the goal
func (s *PlayerSystem) DistanceToWin() float64 {
	return s.player.Position.Distance(s.grid.Win)
}
