package system

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/hollow/internal/domain/entity"
	"github.com/younwookim/hollow/internal/domain/sound"
	"github.com/younwookim/hollow/internal/infrastructure/config"
)

func createTestRadio(seed int64) (*RadioSystem, *sound.Log) {
	sink := &sound.Log{}
	cfg := config.DefaultTuning().Radio
	return NewRadioSystem(&cfg, sink, rand.New(rand.NewSource(seed))), sink
}

func TestRadioSystem_ResetDrawsLimitInRange(t *testing.T) {
	seen := make(map[int]bool)
	for seed := int64(0); seed < 200; seed++ {
		rs, _ := createTestRadio(seed)
		limit := rs.Radio().MaxActivations
		assert.GreaterOrEqual(t, limit, 7)
		assert.LessOrEqual(t, limit, 10)
		seen[limit] = true
	}
	assert.Len(t, seen, 4, "every limit from 7 to 10 occurs")
}

func TestRadioSystem_TurnOnPicksBand(t *testing.T) {
	tests := []struct {
		distance float64
		band     entity.RadioBand
		cue      sound.Cue
	}{
		{3, entity.BandUltraNear, sound.CueRadioNear},
		{20, entity.BandBetween, sound.CueRadioBetween},
		{45, entity.BandFar, sound.CueRadioFar},
	}

	for _, tt := range tests {
		t.Run(tt.band.String(), func(t *testing.T) {
			rs, sink := createTestRadio(1)
			rs.TurnOn(tt.distance)

			assert.True(t, rs.Radio().On)
			assert.Equal(t, tt.band, rs.Radio().Band)
			assert.Equal(t, 1, rs.Radio().Activations)
			assert.Equal(t, 1, sink.Count("play", tt.cue))
		})
	}
}

func TestRadioSystem_ListeningTooLongEndsGame(t *testing.T) {
	rs, sink := createTestRadio(1)
	rs.TurnOn(20)
	stopsBefore := sink.Count("stop", sound.CueRadioBetween)

	for i := 0; i < 5*60; i++ {
		rs.Update(testDT)
	}
	assert.False(t, rs.Radio().PlayerDead)

	for i := 0; i < 3*60; i++ {
		rs.Update(testDT)
	}
	assert.True(t, rs.Radio().PlayerDead)
	assert.False(t, rs.Radio().On)
	assert.Greater(t, sink.Count("stop", sound.CueRadioBetween), stopsBefore)
}

func TestRadioSystem_TooManyActivations(t *testing.T) {
	rs, _ := createTestRadio(1)
	limit := rs.Radio().MaxActivations

	for i := 0; i < limit; i++ {
		rs.Toggle(50)
		rs.Update(testDT)
		rs.Toggle(50)
		rs.Update(testDT)
	}
	assert.False(t, rs.Radio().PlayerDead)

	rs.Toggle(50)
	rs.Update(testDT)
	assert.True(t, rs.Radio().PlayerDead)
}

func TestRadioSystem_ResetRevives(t *testing.T) {
	rs, _ := createTestRadio(1)
	rs.GameOver()
	assert.True(t, rs.Radio().PlayerDead)

	rs.Reset()
	assert.False(t, rs.Radio().PlayerDead)
	assert.False(t, rs.Radio().On)
	assert.Zero(t, rs.Radio().Activations)
}
