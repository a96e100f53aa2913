package replay

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/hollow/internal/application/session"
	"github.com/younwookim/hollow/internal/application/system"
	"github.com/younwookim/hollow/internal/domain/entity"
	"github.com/younwookim/hollow/internal/domain/sound"
	"github.com/younwookim/hollow/internal/infrastructure/config"
)

const dt = 1.0 / 60.0

var loop = []string{
	"#########",
	"#@      #",
	"# ##### #",
	"#      &#",
	"#w#######",
}

func TestFrameInput_RoundTrip(t *testing.T) {
	in := system.InputState{
		Forward:     true,
		Right:       true,
		LookX:       1.5,
		LookY:       -0.25,
		ToggleRadio: true,
	}

	fi := NewFrameInput(7, in)
	assert.Equal(t, 7, fi.F)
	assert.Equal(t, in, fi.Input())
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Seed:    42,
		Map:     "test",
		Frames: []FrameInput{
			{F: 0, Fw: true},
			{F: 1, L: true, TT: true, LX: -2},
			{F: 2},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Forward)
	assert.False(t, input.Left)

	// Frame 1
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.False(t, input.Forward)
	assert.True(t, input.Left)
	assert.True(t, input.ToggleTorch)
	assert.Equal(t, -2.0, input.LookX)

	// Frame 2
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{}, input)
	assert.True(t, replayer.Done())

	// End of frames
	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_CurrentFrame(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(5, 0))

	assert.Equal(t, 0, replayer.CurrentFrame())
	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())
	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())
	assert.Equal(t, 5, replayer.TotalFrames())
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(3, 1))

	for !replayer.Done() {
		replayer.GetInput()
	}
	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	input, ok := replayer.GetInput()
	assert.True(t, ok)
	assert.Equal(t, 1.0, input.LookX)
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60, 0.5)

	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(12345), data.Seed)
	assert.Equal(t, "test", data.Map)
	assert.Len(t, data.Frames, 60)
	_, err := uuid.Parse(data.Session)
	assert.NoError(t, err)

	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
		assert.True(t, frame.Fw)
	}
}

func TestRecorder_RecordFrame(t *testing.T) {
	rec := NewRecorder(99, "final_map")
	assert.True(t, rec.IsRecording())

	rec.RecordFrame(system.InputState{Forward: true})
	rec.RecordFrame(system.InputState{ToggleTorch: true})
	rec.Stop()
	rec.RecordFrame(system.InputState{Backward: true})

	assert.False(t, rec.IsRecording())
	assert.Equal(t, 2, rec.FrameCount())

	data := rec.Data()
	assert.Equal(t, int64(99), data.Seed)
	assert.Equal(t, "final_map", data.Map)
	assert.Equal(t, 1, data.Frames[1].F)
	assert.True(t, data.Frames[1].TT)
}

func TestRecorder_SessionIDsAreUnique(t *testing.T) {
	a := NewRecorder(1, "m").Data().Session
	b := NewRecorder(1, "m").Data().Session
	assert.NotEqual(t, a, b)
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	rec := NewRecorder(7, "loop")
	rec.RecordFrame(system.InputState{Forward: true, LookX: 3})
	rec.RecordFrame(system.InputState{ToggleRadio: true})

	path := filepath.Join(t.TempDir(), GenerateFilename())
	require.NoError(t, rec.Save(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"fw": true`)
	assert.Contains(t, string(raw), `"tr": true`)

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, rec.Data(), *data)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	rec := NewRecorder(1, "m")
	err := rec.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.Error(t, err)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"not json", "{", "failed to decode"},
		{"old version", `{"version": "1.0", "frames": []}`, "unsupported replay version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to open file")
}

func runSession(t *testing.T, seed int64, next func(frame int) (system.InputState, bool)) session.Snapshot {
	t.Helper()
	g, err := entity.NewGrid(loop)
	require.NoError(t, err)

	s := session.New(config.DefaultTuning(), g, sound.Nop{}, rand.New(rand.NewSource(seed)))
	s.Start()
	for frame := 0; ; frame++ {
		in, ok := next(frame)
		if !ok {
			break
		}
		if s.Step(in, dt) != session.OutcomeContinue {
			break
		}
	}
	return s.Snapshot()
}

func TestReplay_ReproducesSession(t *testing.T) {
	script := func(frame int) system.InputState {
		return system.InputState{
			Forward:     frame%90 < 60,
			LookX:       float64(frame%7) - 3,
			ToggleTorch: frame == 20,
		}
	}

	rec := NewRecorder(5, "loop")
	live := runSession(t, 5, func(frame int) (system.InputState, bool) {
		if frame >= 240 {
			return system.InputState{}, false
		}
		in := script(frame)
		rec.RecordFrame(in)
		return in, true
	})

	var buf bytes.Buffer
	require.NoError(t, rec.Encode(&buf))
	data, err := Decode(&buf)
	require.NoError(t, err)

	replayer := NewReplayer(*data)
	replayed := runSession(t, replayer.Seed(), func(int) (system.InputState, bool) {
		return replayer.GetInput()
	})

	assert.Equal(t, live, replayed)
}
