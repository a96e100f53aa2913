package system

import (
	"math/rand"

	"github.com/younwookim/hollow/internal/domain/entity"
	"github.com/younwookim/hollow/internal/domain/sound"
	"github.com/younwookim/hollow/internal/infrastructure/config"
)

var bandCues = map[entity.RadioBand]sound.Cue{
	entity.BandUltraNear: sound.CueRadioNear,
	entity.BandBetween:   sound.CueRadioBetween,
	entity.BandFar:       sound.CueRadioFar,
}

// RadioSystem runs the radio mini-game and its static cues
type RadioSystem struct {
	config *config.RadioConfig
	sink   sound.Sink
	rng    *rand.Rand
	radio  *entity.Radio
}

// NewRadioSystem creates a radio system with a fresh activation limit
func NewRadioSystem(cfg *config.RadioConfig, sink sound.Sink, rng *rand.Rand) *RadioSystem {
	if sink == nil {
		sink = sound.Nop{}
	}
	s := &RadioSystem{
		config: cfg,
		sink:   sink,
		rng:    rng,
		radio:  entity.NewRadio(cfg.MaxListeningTime, cfg.MaxActivations),
	}
	s.Reset()
	return s
}

// Radio returns the radio state
func (s *RadioSystem) Radio() *entity.Radio {
	return s.radio
}

// Reset starts a new session: alive, off, and a limit drawn from [MinActivations, MaxActivations]
func (s *RadioSystem) Reset() {
	limit := s.config.MinActivations + s.rng.Intn(s.config.MaxActivations-s.config.MinActivations+1)
	s.radio.MaxListeningTime = s.config.MaxListeningTime
	s.radio.Reset(limit)
	s.stopCues()
}

// Update advances the listening clock. Over-use ends the game.
func (s *RadioSystem) Update(dt float64) {
	if s.radio.Tick(dt) {
		s.stopCues()
	}
}

// TurnOn switches the radio on, tuned by the player's distance to the goal
func (s *RadioSystem) TurnOn(distanceToWin float64) {
	band := entity.BandFor(distanceToWin, s.config.NearRange, s.config.MidRange)
	s.radio.TurnOn(band)
	s.sink.Play(bandCues[band], 0)
}

// TurnOff switches the radio off
func (s *RadioSystem) TurnOff() {
	s.radio.TurnOff()
	s.stopCues()
}

// Toggle flips the radio
func (s *RadioSystem) Toggle(distanceToWin float64) {
	if s.radio.On {
		s.TurnOff()
		return
	}
	s.TurnOn(distanceToWin)
}

// GameOver kills the player and silences the radio
func (s *RadioSystem) GameOver() {
	s.radio.GameOver()
	s.stopCues()
}

func (s *RadioSystem) stopCues() {
	s.sink.Stop(sound.CueRadioNear)
	s.sink.Stop(sound.CueRadioBetween)
	s.sink.Stop(sound.CueRadioFar)
}
