package session

import (
	"github.com/younwookim/hollow/internal/application/state"
	"github.com/younwookim/hollow/internal/domain/entity"
)

// Snapshot is a read-only copy of a session's observable state
type Snapshot struct {
	Frame   int
	Clock   float64
	State   state.GameState
	Outcome Outcome

	PlayerPos  entity.Vec3
	PlayerTile entity.Coord
	PlayerYaw  float64
	TorchOn    bool
	Dead       bool
	Victory    bool

	EnemyPos   entity.Vec3
	EnemyTile  entity.Coord
	Behavior   entity.Behavior
	SeePlayer  bool
	NearPlayer bool
	Path       []entity.Coord
	PathIdx    int

	Distance      float64
	DistanceToWin float64
	Distortion    float64

	RadioOn        bool
	RadioBand      entity.RadioBand
	Activations    int
	MaxActivations int
	ListeningTime  float64
}

// Snapshot captures the current state
func (s *Session) Snapshot() Snapshot {
	p := s.players.Player()
	e := s.ai.Enemy()
	r := s.radio.Radio()

	path := make([]entity.Coord, len(e.Path))
	copy(path, e.Path)

	return Snapshot{
		Frame:   s.frame,
		Clock:   s.clock,
		State:   s.State(),
		Outcome: s.outcome,

		PlayerPos:  p.Position,
		PlayerTile: entity.TileOf(p.Position),
		PlayerYaw:  p.Yaw,
		TorchOn:    p.TorchOn,
		Dead:       p.Dead,
		Victory:    p.Victory,

		EnemyPos:   e.Position,
		EnemyTile:  entity.TileOf(e.Position),
		Behavior:   e.Behavior,
		SeePlayer:  e.SeePlayer,
		NearPlayer: e.NearPlayer,
		Path:       path,
		PathIdx:    e.PathIdx,

		Distance:      s.grid.PlayerPosition.Distance(s.grid.EnemyPosition),
		DistanceToWin: s.players.DistanceToWin(),
		Distortion:    s.Distortion(),

		RadioOn:        r.On,
		RadioBand:      r.Band,
		Activations:    r.Activations,
		MaxActivations: r.MaxActivations,
		ListeningTime:  r.ListeningTime,
	}
}
