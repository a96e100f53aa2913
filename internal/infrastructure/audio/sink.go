package audio

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/younwookim/hollow/internal/domain/entity"
	"github.com/younwookim/hollow/internal/domain/sound"
)

// maxVolume is the top of the volume scale the game core uses
const maxVolume = 12.0

var allCues = []sound.Cue{
	sound.CueEnemyNoise,
	sound.CueScream,
	sound.CueAmbiance,
	sound.CueTorchClick,
	sound.CueRadioNear,
	sound.CueRadioBetween,
	sound.CueRadioFar,
	sound.CueFootstep,
}

// Sink implements sound.Sink with ebiten audio players
type Sink struct {
	ctx     *audio.Context
	players map[sound.Cue][]*audio.Player
}

// NewSink renders every cue and prepares a player for it. It reuses the
// process-wide audio context when one already exists.
func NewSink() (*Sink, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}

	s := &Sink{
		ctx:     ctx,
		players: make(map[sound.Cue][]*audio.Player, len(allCues)),
	}

	for _, cue := range allCues {
		variants := 1
		if cue == sound.CueFootstep {
			variants = sound.FootstepVariants
		}
		for v := 0; v < variants; v++ {
			p, err := s.newPlayer(cue, v)
			if err != nil {
				s.Close()
				return nil, fmt.Errorf("failed to prepare %s: %w", cue, err)
			}
			s.players[cue] = append(s.players[cue], p)
		}
	}

	log.Printf("Audio ready: %d cues at %d Hz", len(allCues), SampleRate)
	return s, nil
}

func (s *Sink) newPlayer(cue sound.Cue, variant int) (*audio.Player, error) {
	pcm := EncodePCM(Render(cue, variant, SampleRate))
	if !Loops(cue) {
		return s.ctx.NewPlayerFromBytes(pcm), nil
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	return s.ctx.NewPlayer(loop)
}

func (s *Sink) player(cue sound.Cue, variant int) *audio.Player {
	ps := s.players[cue]
	if len(ps) == 0 {
		return nil
	}
	if variant < 0 || variant >= len(ps) {
		variant = 0
	}
	return ps[variant]
}

// Play restarts a cue
func (s *Sink) Play(cue sound.Cue, variant int) {
	p := s.player(cue, variant)
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("Failed to rewind %s: %v", cue, err)
	}
	p.Play()
}

// Loop starts a cue unless it is already playing
func (s *Sink) Loop(cue sound.Cue) {
	p := s.player(cue, 0)
	if p == nil || p.IsPlaying() {
		return
	}
	p.Play()
}

// Stop halts every variant of a cue and rewinds it
func (s *Sink) Stop(cue sound.Cue) {
	for _, p := range s.players[cue] {
		p.Pause()
		_ = p.Rewind()
	}
}

// Place sets a cue's volume. ebiten has no spatial audio; distance
// attenuation is already folded into volume by the caller.
func (s *Sink) Place(cue sound.Cue, _ entity.Vec3, volume float64) {
	for _, p := range s.players[cue] {
		p.SetVolume(entity.Clamp(volume/maxVolume, 0, 1))
	}
}

// StopAll halts every cue
func (s *Sink) StopAll() {
	for _, cue := range allCues {
		s.Stop(cue)
	}
}

// Close releases the players
func (s *Sink) Close() {
	for _, ps := range s.players {
		for _, p := range ps {
			_ = p.Close()
		}
	}
	s.players = map[sound.Cue][]*audio.Player{}
}
