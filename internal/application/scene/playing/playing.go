// Package playing provides the maze scene: one session, its input source
// (live or replayed) and the top-down renderer.
package playing

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/hollow/internal/application/replay"
	"github.com/younwookim/hollow/internal/application/report"
	"github.com/younwookim/hollow/internal/application/scene"
	"github.com/younwookim/hollow/internal/application/session"
	"github.com/younwookim/hollow/internal/application/state"
	"github.com/younwookim/hollow/internal/application/system"
	"github.com/younwookim/hollow/internal/application/system/keyboard"
	"github.com/younwookim/hollow/internal/domain/entity"
	"github.com/younwookim/hollow/internal/domain/sound"
	"github.com/younwookim/hollow/internal/infrastructure/config"
)

// Options configures the scene
type Options struct {
	Tuning *config.Tuning
	Layout *config.LayoutConfig
	Sink   sound.Sink
	// Seed fixes the simulation seed. Zero picks a fresh one per run.
	Seed int64
	// RecordPath enables input recording; saved on F5 and when the run ends
	RecordPath string
	// Replay plays recorded input instead of reading the keyboard
	Replay *replay.ReplayData
	Logger *log.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	dir  *scene.Directory
	opts Options

	grid     *entity.Grid
	session  *session.Session
	input    *keyboard.InputSystem
	recorder *replay.Recorder
	replayer *replay.Replayer
	seed     int64

	screenW  int
	screenH  int
	tileSize int

	// Visual-only randomness for the static overlay; never touches the simulation
	static *rand.Rand
	clock  float64
}

// New creates the scene. The session itself starts in OnEnter.
func New(dir *scene.Directory, opts Options) (*Playing, error) {
	grid, err := opts.Layout.Grid()
	if err != nil {
		return nil, fmt.Errorf("failed to build map %q: %w", opts.Layout.Name, err)
	}
	if opts.Sink == nil {
		opts.Sink = sound.Nop{}
	}

	p := &Playing{
		dir:      dir,
		opts:     opts,
		grid:     grid,
		input:    keyboard.NewInputSystem(&opts.Tuning.Player),
		screenW:  opts.Tuning.Display.ScreenWidth,
		screenH:  opts.Tuning.Display.ScreenHeight,
		tileSize: opts.Tuning.Display.TileSize,
		static:   rand.New(rand.NewSource(1)),
	}
	if opts.Replay != nil {
		p.replayer = replay.NewReplayer(*opts.Replay)
	}
	return p, nil
}

// start begins a fresh run
func (p *Playing) start() {
	switch {
	case p.replayer != nil:
		p.seed = p.replayer.Seed()
		p.replayer.Reset()
	case p.opts.Seed != 0:
		p.seed = p.opts.Seed
	default:
		p.seed = time.Now().UnixNano()
	}

	p.session = session.New(p.opts.Tuning, p.grid, p.opts.Sink, rand.New(rand.NewSource(p.seed)))
	p.session.SetLogger(p.opts.Logger)
	p.session.Start()
	p.input.Reset()
	p.clock = 0

	if p.opts.RecordPath != "" && p.replayer == nil {
		p.recorder = replay.NewRecorder(p.seed, p.opts.Layout.Name)
		log.Printf("Recording enabled: %s (seed: %d)", p.opts.RecordPath, p.seed)
	}
}

// Session returns the running session
func (p *Playing) Session() *session.Session {
	return p.session
}

// Seed returns the seed of the current run
func (p *Playing) Seed() int64 {
	return p.seed
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.clock += dt

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.session.Abort()
		return p.dir.Menu, nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF8) {
		p.copyReport()
	}

	in, ok := p.nextInput(dt)
	if !ok {
		log.Printf("Replay finished after %d frames", p.replayer.TotalFrames())
		return p.dir.Menu, nil
	}
	return p.Advance(in, dt), nil
}

// nextInput reads the frame's input from the replay or the devices
func (p *Playing) nextInput(dt float64) (system.InputState, bool) {
	if p.replayer != nil {
		return p.replayer.GetInput()
	}
	in := p.input.GetInput(dt)
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}
	return in, true
}

// Advance steps the session with in and returns the scene to switch to, if any
func (p *Playing) Advance(in system.InputState, dt float64) scene.Scene {
	switch p.session.Step(in, dt) {
	case session.OutcomeVictory:
		return p.dir.Victory
	case session.OutcomeCaught, session.OutcomeAbort:
		return p.dir.Menu
	default:
		return nil
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.opts.RecordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

func (p *Playing) copyReport() {
	summary := report.Summary(p.session.Snapshot())
	if err := clipboard.WriteAll(summary); err != nil {
		log.Printf("Failed to copy report: %v", err)
		return
	}
	log.Printf("Report copied: %s", summary)
}

// OnEnter starts a new run and captures the cursor for mouse look
func (p *Playing) OnEnter() {
	p.start()
	if p.replayer == nil {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
}

// OnExit silences the run and stores its recording
func (p *Playing) OnExit() {
	p.session.Stop()
	p.saveRecording()
	if p.recorder != nil {
		p.recorder.Stop()
	}
}

// State implements scene.Stater
func (p *Playing) State() state.GameState {
	if p.session == nil {
		return state.StatePlaying
	}
	return p.session.State()
}
