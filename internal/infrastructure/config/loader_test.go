package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/hollow/internal/domain/entity"
)

const assetsDir = "../../../assets"

func TestLoader_LoadTuning(t *testing.T) {
	loader := NewLoader(assetsDir)

	cfg, err := loader.LoadTuning("tuning.yaml")
	require.NoError(t, err)

	assert.Equal(t, 960, cfg.Display.ScreenWidth)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 0.3, cfg.Enemy.BaseSpeed)
	assert.Equal(t, 9.0, cfg.Enemy.DetectionRadius)
	assert.Equal(t, 4, cfg.Enemy.SightSteps)
	assert.False(t, cfg.Enemy.LethalSighting, "sightings never kill unless opted in")
	assert.Equal(t, 12.0, cfg.Enemy.Noise.Max)
	assert.Equal(t, 0.7, cfg.Player.Headbob.Frequency)
	assert.Equal(t, 7, cfg.Radio.MinActivations)
	assert.Equal(t, 10, cfg.Radio.MaxActivations)
	assert.Equal(t, 3.0, cfg.Scene.ScreamerDuration)
}

func TestLoader_ShippedTuningMatchesDefaults(t *testing.T) {
	loader := NewLoader(assetsDir)

	cfg, err := loader.LoadTuning("tuning.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), cfg)
}

func TestLoader_LoadTuning_PartialFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"fast.yaml": {Data: []byte("enemy:\n  baseSpeed: 1.5\n  lethalSighting: true\n")},
		"fast.json": {Data: []byte(`{"enemy": {"baseSpeed": 1.5, "lethalSighting": true}}`)},
	}
	loader := NewFSLoader(fsys, ".")

	for _, name := range []string{"fast.yaml", "fast.json"} {
		t.Run(name, func(t *testing.T) {
			cfg, err := loader.LoadTuning(name)
			require.NoError(t, err)

			assert.Equal(t, 1.5, cfg.Enemy.BaseSpeed)
			assert.True(t, cfg.Enemy.LethalSighting)
			// Untouched sections keep their defaults
			assert.Equal(t, 4.0, cfg.Enemy.ScreamSpeed)
			assert.Equal(t, 7.0, cfg.Radio.MaxListeningTime)
		})
	}
}

func TestLoader_LoadTuning_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.yaml":   {Data: []byte("enemy: [1, 2")},
		"tuning.toml":   {Data: []byte("x = 1")},
		"inverted.json": {Data: []byte(`{"radio": {"minActivations": 12, "maxActivations": 3}}`)},
	}
	loader := NewFSLoader(fsys, ".")

	tests := []struct {
		name string
		want string
	}{
		{"missing.yaml", "failed to read"},
		{"broken.yaml", "failed to parse"},
		{"tuning.toml", "unsupported tuning format"},
		{"inverted.json", "minActivations"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.LoadTuning(tt.name)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoader_LoadLayout(t *testing.T) {
	loader := NewLoader(assetsDir)

	layout, err := loader.LoadLayout("final_map.txt")
	require.NoError(t, err)

	assert.Equal(t, "final_map", layout.Name)
	assert.Len(t, layout.Rows, 15)

	g, err := layout.Grid()
	require.NoError(t, err)
	assert.Equal(t, 25, g.Width)
	assert.Equal(t, 15, g.Height)
	assert.Equal(t, 165, g.WalkableCount())
	assert.Equal(t, entity.Vec3{X: 1, Y: entity.PlayerEyeHeight, Z: 1}, g.PlayerStart)
	assert.Equal(t, entity.Vec3{X: 23, Z: 13}, g.Win)
}

func TestParseLayout(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []string
	}{
		{"unix", "#@&w#\n#   #\n", []string{"#@&w#", "#   #"}},
		{"windows", "#@&w#\r\n#   #\r\n", []string{"#@&w#", "#   #"}},
		{"no trailing newline", "#@&w#\n#   #", []string{"#@&w#", "#   #"}},
		{"trailing blank lines", "#@&w#\n\n\n", []string{"#@&w#"}},
		{"trailing spaces kept", "#@&w \n", []string{"#@&w "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ParseLayout([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, rows)
		})
	}

	_, err := ParseLayout([]byte("\n\n"))
	assert.Error(t, err)
}

func TestLayoutConfig_Grid_RejectsRagged(t *testing.T) {
	layout := &LayoutConfig{Rows: []string{"#@&w #", "###"}}

	_, err := layout.Grid()
	assert.ErrorIs(t, err, entity.ErrNotRectangular)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader(assetsDir)

	cfg, err := loader.LoadAll("tuning.yaml", "final_map.txt")
	require.NoError(t, err)

	assert.NotNil(t, cfg.Tuning)
	assert.NotNil(t, cfg.Layout)
}
