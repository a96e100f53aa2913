// Package sound defines the audio cues the game core emits and the sink
// interface an audio backend implements.
package sound

import (
	"fmt"
	"log"

	"github.com/younwookim/hollow/internal/domain/entity"
)

// Cue identifies a sound the core can trigger
type Cue int

const (
	CueEnemyNoise Cue = iota
	CueScream
	CueAmbiance
	CueTorchClick
	CueRadioNear
	CueRadioBetween
	CueRadioFar
	CueFootstep
)

// FootstepVariants is the number of distinct footstep sounds
const FootstepVariants = 8

// String returns the cue name
func (c Cue) String() string {
	switch c {
	case CueEnemyNoise:
		return "enemy_noise"
	case CueScream:
		return "screamer"
	case CueAmbiance:
		return "ambiance"
	case CueTorchClick:
		return "torchlight_click"
	case CueRadioNear:
		return "radio_ultra_near"
	case CueRadioBetween:
		return "radio_between"
	case CueRadioFar:
		return "radio_far"
	case CueFootstep:
		return "footstep"
	default:
		return "unknown"
	}
}

// Sink plays cues. Calls are fire-and-forget and must not block the frame.
type Sink interface {
	// Play restarts cue from the beginning. variant selects among
	// alternatives (footsteps) and is ignored otherwise.
	Play(cue Cue, variant int)
	// Loop starts cue looping if it is not already playing
	Loop(cue Cue)
	// Stop halts cue
	Stop(cue Cue)
	// Place positions a looping cue in the world and sets its volume
	Place(cue Cue, pos entity.Vec3, volume float64)
	// StopAll halts every cue
	StopAll()
}

// Nop discards every call
type Nop struct{}

func (Nop) Play(Cue, int)                   {}
func (Nop) Loop(Cue)                        {}
func (Nop) Stop(Cue)                        {}
func (Nop) Place(Cue, entity.Vec3, float64) {}
func (Nop) StopAll()                        {}

// Event is one call recorded by Log
type Event struct {
	Op      string
	Cue     Cue
	Variant int
	Pos     entity.Vec3
	Volume  float64
}

func (e Event) String() string {
	switch e.Op {
	case "place":
		return fmt.Sprintf("place %s (%.2f, %.2f, %.2f) vol=%.2f", e.Cue, e.Pos.X, e.Pos.Y, e.Pos.Z, e.Volume)
	case "play":
		return fmt.Sprintf("play %s #%d", e.Cue, e.Variant)
	default:
		return e.Op + " " + e.Cue.String()
	}
}

// Log records every call and optionally echoes it to a logger.
// Used by the headless runner and tests.
type Log struct {
	Events []Event
	Logger *log.Logger
	// Limit keeps only the most recent Limit events; zero keeps all of them.
	// Long runs need it: placement is recorded every frame.
	Limit int
}

func (l *Log) record(e Event) {
	l.Events = append(l.Events, e)
	if l.Limit > 0 && len(l.Events) > l.Limit {
		n := copy(l.Events, l.Events[len(l.Events)-l.Limit:])
		l.Events = l.Events[:n]
	}
	if l.Logger != nil && e.Op != "place" {
		l.Logger.Printf("sound: %s", e)
	}
}

func (l *Log) Play(cue Cue, variant int) { l.record(Event{Op: "play", Cue: cue, Variant: variant}) }
func (l *Log) Loop(cue Cue)              { l.record(Event{Op: "loop", Cue: cue}) }
func (l *Log) Stop(cue Cue)              { l.record(Event{Op: "stop", Cue: cue}) }
func (l *Log) StopAll()                  { l.record(Event{Op: "stop_all"}) }

func (l *Log) Place(cue Cue, pos entity.Vec3, volume float64) {
	l.record(Event{Op: "place", Cue: cue, Pos: pos, Volume: volume})
}

// Count returns how many recorded events match op and cue
func (l *Log) Count(op string, cue Cue) int {
	n := 0
	for _, e := range l.Events {
		if e.Op == op && e.Cue == cue {
			n++
		}
	}
	return n
}

// Last returns the most recent event matching op and cue
func (l *Log) Last(op string, cue Cue) (Event, bool) {
	for i := len(l.Events) - 1; i >= 0; i-- {
		if l.Events[i].Op == op && l.Events[i].Cue == cue {
			return l.Events[i], true
		}
	}
	return Event{}, false
}
