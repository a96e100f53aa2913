// Package audio plays the game's sound cues through ebiten's audio context.
// Cues are synthesised at startup, so the game ships without sample files.
package audio

import (
	"encoding/binary"
	"math"
	"math/rand"

	"github.com/younwookim/hollow/internal/domain/sound"
)

// SampleRate of every rendered cue
const SampleRate = 44100

// Render synthesises a mono cue in [-1, 1]. variant only affects footsteps.
func Render(cue sound.Cue, variant int, sampleRate int) []float64 {
	rng := rand.New(rand.NewSource(int64(cue)*131 + int64(variant)))
	switch cue {
	case sound.CueEnemyNoise:
		return brownNoise(rng, seconds(2.0, sampleRate), 0.6)
	case sound.CueScream:
		return scream(rng, sampleRate)
	case sound.CueAmbiance:
		return drone(sampleRate)
	case sound.CueTorchClick:
		return click(rng, sampleRate)
	case sound.CueRadioNear:
		return static(rng, sampleRate, 8, 880)
	case sound.CueRadioBetween:
		return static(rng, sampleRate, 3, 660)
	case sound.CueRadioFar:
		return static(rng, sampleRate, 0, 0)
	case sound.CueFootstep:
		return footstep(rng, sampleRate, variant)
	default:
		return nil
	}
}

// Loops reports whether a cue is played as a seamless loop
func Loops(cue sound.Cue) bool {
	switch cue {
	case sound.CueEnemyNoise, sound.CueAmbiance,
		sound.CueRadioNear, sound.CueRadioBetween, sound.CueRadioFar:
		return true
	default:
		return false
	}
}

// EncodePCM converts mono samples to the 16-bit little-endian stereo
// stream ebiten's audio players consume. Samples are clipped to [-1, 1].
func EncodePCM(samples []float64) []byte {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		v := int16(math.Round(clip(s) * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}

func clip(s float64) float64 {
	return math.Max(-1, math.Min(1, s))
}

func seconds(d float64, sampleRate int) int {
	return int(d * float64(sampleRate))
}

// brownNoise integrates white noise into a low rumble
func brownNoise(rng *rand.Rand, n int, gain float64) []float64 {
	out := make([]float64, n)
	acc := 0.0
	for i := range out {
		acc = acc*0.98 + (rng.Float64()*2-1)*0.1
		out[i] = clip(acc * gain * 3)
	}
	fadeEdges(out, 256)
	return out
}

func scream(rng *rand.Rand, sampleRate int) []float64 {
	n := seconds(1.6, sampleRate)
	out := make([]float64, n)
	phase := 0.0
	for i := range out {
		t := float64(i) / float64(sampleRate)
		freq := 900 - 500*t + 60*math.Sin(2*math.Pi*7*t)
		phase += 2 * math.Pi * freq / float64(sampleRate)
		env := math.Min(1, t*20) * math.Max(0, 1-t/1.6)
		out[i] = clip((0.6*math.Sin(phase) + 0.4*(rng.Float64()*2-1)) * env)
	}
	return out
}

func drone(sampleRate int) []float64 {
	// Four seconds holds whole periods of 55 Hz and the 0.25 Hz swell
	n := seconds(4.0, sampleRate)
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		swell := 0.6 + 0.4*math.Sin(2*math.Pi*0.25*t)
		out[i] = 0.25 * swell * (math.Sin(2*math.Pi*55*t) + 0.5*math.Sin(2*math.Pi*82.5*t))
	}
	return out
}

func click(rng *rand.Rand, sampleRate int) []float64 {
	n := seconds(0.03, sampleRate)
	out := make([]float64, n)
	for i := range out {
		decay := math.Exp(-float64(i) / float64(n) * 8)
		out[i] = clip((rng.Float64()*2 - 1) * decay)
	}
	return out
}

// static is radio hiss with an optional beacon: beepHz beeps per second at toneHz
func static(rng *rand.Rand, sampleRate int, beepHz, toneHz float64) []float64 {
	n := seconds(2.0, sampleRate)
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		s := (rng.Float64()*2 - 1) * 0.3
		if beepHz > 0 && math.Mod(t*beepHz, 1) < 0.3 {
			s += 0.4 * math.Sin(2*math.Pi*toneHz*t)
		}
		out[i] = clip(s)
	}
	fadeEdges(out, 128)
	return out
}

func footstep(rng *rand.Rand, sampleRate int, variant int) []float64 {
	n := seconds(0.12, sampleRate)
	out := make([]float64, n)
	pitch := 70 + 6*float64(variant%sound.FootstepVariants)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		decay := math.Exp(-t * 40)
		out[i] = clip((0.7*math.Sin(2*math.Pi*pitch*t) + 0.3*(rng.Float64()*2-1)) * decay)
	}
	return out
}

// fadeEdges ramps both ends so loops do not click at the seam
func fadeEdges(s []float64, width int) {
	if width*2 > len(s) {
		width = len(s) / 2
	}
	for i := 0; i < width; i++ {
		g := float64(i) / float64(width)
		s[i] *= g
		s[len(s)-1-i] *= g
	}
}
