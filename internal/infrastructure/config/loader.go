package config

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Tuning *Tuning
	Layout *LayoutConfig
}

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadTuning loads a tuning file on top of DefaultTuning.
// The decoder is chosen by extension: .json, or .yaml/.yml.
func (l *Loader) LoadTuning(name string) (*Tuning, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	cfg := DefaultTuning()
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		err = json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("unsupported tuning format %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning in %s: %w", name, err)
	}
	return cfg, nil
}

// LoadLayout loads a plain-text map: one row per line, one byte per tile
func (l *Loader) LoadLayout(name string) (*LayoutConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", name, err)
	}

	rows, err := ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %w", name, err)
	}

	return &LayoutConfig{Name: strings.TrimSuffix(path.Base(name), path.Ext(name)), Rows: rows}, nil
}

// LoadAll loads the tuning and map files
func (l *Loader) LoadAll(tuningName, layoutName string) (*GameConfig, error) {
	tuning, err := l.LoadTuning(tuningName)
	if err != nil {
		return nil, err
	}

	layout, err := l.LoadLayout(layoutName)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Tuning: tuning,
		Layout: layout,
	}, nil
}

// ParseLayout splits map text into rows. Carriage returns are stripped and
// trailing empty lines dropped; interior spaces are significant.
func ParseLayout(data []byte) ([]string, error) {
	var rows []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		rows = append(rows, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("map is empty")
	}
	return rows, nil
}

// Validate rejects values the simulation cannot run with
func (t *Tuning) Validate() error {
	if t.Display.Framerate <= 0 {
		return fmt.Errorf("display.framerate must be positive, got %d", t.Display.Framerate)
	}
	if t.Display.TileSize <= 0 {
		return fmt.Errorf("display.tileSize must be positive, got %d", t.Display.TileSize)
	}
	if t.Radio.MinActivations > t.Radio.MaxActivations {
		return fmt.Errorf("radio.minActivations %d exceeds radio.maxActivations %d", t.Radio.MinActivations, t.Radio.MaxActivations)
	}
	if t.Enemy.Noise.MaxDistance <= t.Enemy.Noise.MinDistance {
		return fmt.Errorf("enemy.noise distance range is empty")
	}
	if t.Scene.Distortion.MaxDistance <= t.Scene.Distortion.MinDistance {
		return fmt.Errorf("scene.distortion distance range is empty")
	}
	if t.Enemy.SightSteps <= 0 {
		return fmt.Errorf("enemy.sightSteps must be positive, got %d", t.Enemy.SightSteps)
	}
	return nil
}
