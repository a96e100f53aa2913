package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/hollow/assets"
	"github.com/younwookim/hollow/internal/application/game"
	"github.com/younwookim/hollow/internal/application/replay"
	"github.com/younwookim/hollow/internal/application/scene"
	"github.com/younwookim/hollow/internal/application/scene/card"
	"github.com/younwookim/hollow/internal/application/scene/menu"
	"github.com/younwookim/hollow/internal/application/scene/playing"
	"github.com/younwookim/hollow/internal/domain/sound"
	"github.com/younwookim/hollow/internal/infrastructure/audio"
)

func main() {
	// Parse command line flags
	assetsFlag := flag.String("assets", "", "Load tuning and map from this directory instead of the embedded ones")
	tuningFlag := flag.String("tuning", assets.TuningFile, "Tuning file (.yaml or .json)")
	mapFlag := flag.String("map", assets.MapFile, "Map layout file")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded replay file")
	seedFlag := flag.Int64("seed", 0, "Fix the simulation seed (0 = random per run)")
	muteFlag := flag.Bool("mute", false, "Disable audio")
	verboseFlag := flag.Bool("v", false, "Log session transitions")
	flag.Parse()

	cfg, err := assets.Loader(*assetsFlag).LoadAll(*tuningFlag, *mapFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var replayData *replay.ReplayData
	if *replayFlag != "" {
		replayData, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if replayData.Map != cfg.Layout.Name {
			log.Fatalf("Replay was recorded on map %q, not %q", replayData.Map, cfg.Layout.Name)
		}
	}

	var sink sound.Sink = sound.Nop{}
	if !*muteFlag {
		if s, err := audio.NewSink(); err != nil {
			log.Printf("Audio init failed (continuing without sound): %v", err)
		} else {
			sink = s
			defer s.Close()
		}
	}

	var logger *log.Logger
	if *verboseFlag {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	// Scenes reach each other through the directory
	dir := &scene.Directory{}
	play, err := playing.New(dir, playing.Options{
		Tuning:     cfg.Tuning,
		Layout:     cfg.Layout,
		Sink:       sink,
		Seed:       *seedFlag,
		RecordPath: *recordFlag,
		Replay:     replayData,
		Logger:     logger,
	})
	if err != nil {
		log.Fatalf("Failed to create game scene: %v", err)
	}
	dir.Menu = menu.New(dir)
	dir.Instructions = card.Instructions(dir)
	dir.Credits = card.Credits(dir)
	dir.Victory = card.Victory(dir)
	dir.Playing = play

	initial := dir.Menu
	if replayData != nil {
		initial = dir.Playing
	}

	display := cfg.Tuning.Display
	g := game.New(initial, display.ScreenWidth, display.ScreenHeight)
	g.SetDT(1.0 / float64(display.Framerate))

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth, display.ScreenHeight)
	ebiten.SetWindowTitle("Hollow")
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
