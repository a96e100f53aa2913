package system

import (
	"math/rand"

	"github.com/younwookim/hollow/internal/domain/entity"
	"github.com/younwookim/hollow/internal/domain/nav"
	"github.com/younwookim/hollow/internal/domain/sound"
	"github.com/younwookim/hollow/internal/infrastructure/config"
)

// AISystem drives the enemy: patrol along BFS paths, player detection and
// the scripted scream rush.
type AISystem struct {
	config *config.EnemyConfig
	grid   *entity.Grid
	sink   sound.Sink
	rng    *rand.Rand
	enemy  *entity.Enemy

	// walkable is what path searches run over; the grid unless a test wraps it
	walkable nav.Walkable
}

// NewAISystem creates an AI system. Call Init before the first Update.
func NewAISystem(cfg *config.EnemyConfig, grid *entity.Grid, sink sound.Sink, rng *rand.Rand) *AISystem {
	if sink == nil {
		sink = sound.Nop{}
	}
	return &AISystem{
		config: cfg,
		grid:   grid,
		sink:   sink,
		rng:    rng,
		enemy:  entity.NewEnemy(grid.EnemyStart, cfg.BaseSpeed),

		walkable: grid,
	}
}

// Enemy returns the enemy state
func (s *AISystem) Enemy() *entity.Enemy {
	return s.enemy
}

// Init puts the enemy back on its spawn tile and plans its first patrol leg
func (s *AISystem) Init() {
	s.enemy.Reset(s.grid.EnemyStart, s.config.BaseSpeed)
	s.grid.EnemyPosition = s.enemy.Position
	s.repath()
	s.sink.Loop(sound.CueEnemyNoise)
}

// Update advances the enemy by dt
func (s *AISystem) Update(dt float64) {
	e := s.enemy
	s.placeNoise()

	if e.Behavior == entity.BehaviorScream {
		if e.Position.Distance(s.grid.PlayerPosition) >= s.config.ScreamStopDistance {
			e.MoveForward(dt)
		}
		s.grid.EnemyPosition = e.Position
		return
	}

	if !e.AtPathEnd() {
		s.computeDirection(dt)
	} else {
		s.repath()
	}

	s.grid.EnemyPosition = e.Position
	s.DetectPlayer()
}

// repath plans a path from the cached tile to a random walkable tile,
// retrying once. Two failures leave the enemy idle with an empty path.
func (s *AISystem) repath() {
	e := s.enemy
	for attempt := 0; attempt < 2; attempt++ {
		goal, ok := s.grid.RandomWalkableTile(s.rng)
		if !ok {
			break
		}
		if path := nav.BreadthFirst(s.walkable, e.GridPos, goal); len(path) > 0 {
			e.SetPath(path)
			return
		}
	}
	e.SetPath(nil)
}

// computeDirection walks toward the current waypoint and takes at most one
// turn decision per waypoint.
func (s *AISystem) computeDirection(dt float64) {
	e := s.enemy

	e.GridPos = entity.TileOf(e.Position)
	if wp := e.Waypoint(); e.OnTile(wp, s.config.ArrivalTolerance) {
		e.GridPos = wp
		e.Position.X, e.Position.Z = float64(wp.Col), float64(wp.Row)
		e.PathIdx++
		e.Leg = entity.LegArrived
	}

	if e.Leg == entity.LegArrived {
		d := e.Waypoint().Sub(e.GridPos)
		e.Rotate(entity.DecideTurn([2]float64{float64(d.Row), float64(d.Col)}, e.HeadingZX()))
		e.Leg = entity.LegEnRoute
	}

	s.advance(dt)
}

// advance moves forward, stopping on the waypoint center instead of overshooting it
func (s *AISystem) advance(dt float64) {
	e := s.enemy
	target := entity.Center(e.Waypoint())
	target.Y = e.Position.Y

	step := e.Speed * dt
	toTarget := target.Sub(e.Position)
	if remaining := toTarget.Len(); remaining > 0 && step >= remaining && toTarget.Dot(e.Front) > 0 {
		e.Position = target
		return
	}
	e.MoveForward(dt)
}

// DetectPlayer refreshes NearPlayer and SeePlayer from the shared grid positions.
// Beyond the detection radius both flags clear without a search. Inside it the
// path to the player sets NearPlayer when it reaches the player's tile, and
// SeePlayer keeps only the result of the path's final index (true when the
// player is within SightSteps tiles). An empty path leaves both flags as they were.
func (s *AISystem) DetectPlayer() {
	e := s.enemy
	if s.grid.PlayerPosition.Distance(s.grid.EnemyPosition) > s.config.DetectionRadius {
		e.NearPlayer = false
		e.SeePlayer = false
		return
	}

	target := entity.TileOf(s.grid.PlayerPosition)
	path := nav.BreadthFirst(s.walkable, e.GridPos, target)
	for i, tile := range path {
		if tile == target {
			e.NearPlayer = true
		}
		e.SeePlayer = i < s.config.SightSteps && tile == target
	}
}

// Screamer stages the jump scare: the enemy appears in front of the camera,
// facing it, and rushes until it is within ScreamStopDistance.
func (s *AISystem) Screamer(p *entity.Player) {
	e := s.enemy
	p.TorchOn = true

	front := p.Front()
	pos := p.Position.Add(front.Scale(s.config.ScreamDistance))
	pos.Y -= s.config.ScreamDrop

	e.Position = pos
	e.FaceTowards(p.Position)
	e.Front = front.Neg()
	e.Speed = s.config.ScreamSpeed
	e.Behavior = entity.BehaviorScream
	s.grid.EnemyPosition = e.Position
}

// NoiseVolume returns the enemy noise volume for a distance to the player
func (s *AISystem) NoiseVolume(distance float64) float64 {
	n := s.config.Noise
	return entity.ProximityLevel(distance, n.MinDistance, n.MaxDistance, n.Max)
}

func (s *AISystem) placeNoise() {
	d := s.enemy.Position.Distance(s.grid.PlayerPosition)
	s.sink.Place(sound.CueEnemyNoise, s.enemy.Position, s.NoiseVolume(d))
}

// Stop silences the enemy
func (s *AISystem) Stop() {
	s.sink.Stop(sound.CueEnemyNoise)
}
