// Command headless runs a session without a window and prints a report:
// either a recorded replay or the autopilot walking to the exit.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/younwookim/hollow/assets"
	"github.com/younwookim/hollow/internal/application/replay"
	"github.com/younwookim/hollow/internal/application/report"
	"github.com/younwookim/hollow/internal/application/session"
)

func main() {
	assetsFlag := flag.String("assets", "", "Load tuning and map from this directory instead of the embedded ones")
	tuningFlag := flag.String("tuning", assets.TuningFile, "Tuning file (.yaml or .json)")
	mapFlag := flag.String("map", assets.MapFile, "Map layout file")
	seedFlag := flag.Int64("seed", 1, "Simulation seed (ignored with -replay)")
	secondsFlag := flag.Float64("seconds", 120, "Simulated time limit")
	replayFlag := flag.String("replay", "", "Replay file to run instead of the autopilot")
	recordFlag := flag.String("record", "", "Save the autopilot's input as a replay file")
	darkFlag := flag.Bool("dark", false, "Autopilot walks with the torch off")
	verboseFlag := flag.Bool("v", false, "Log session transitions and sound cues")
	flag.Parse()

	cfg, err := assets.Loader(*assetsFlag).LoadAll(*tuningFlag, *mapFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	opts := runOptions{
		Config:  cfg,
		Seed:    *seedFlag,
		Seconds: *secondsFlag,
		Dark:    *darkFlag,
	}
	if *replayFlag != "" {
		if opts.Replay, err = replay.LoadReplay(*replayFlag); err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
	}
	if *recordFlag != "" && opts.Replay == nil {
		opts.Recorder = replay.NewRecorder(*seedFlag, cfg.Layout.Name)
	}
	if *verboseFlag {
		opts.Logger = log.New(os.Stderr, "", 0)
	}

	snap, g, err := run(opts)
	if err != nil {
		log.Fatalf("Failed to run session: %v", err)
	}

	if opts.Recorder != nil {
		if err := opts.Recorder.Save(*recordFlag); err != nil {
			log.Printf("Failed to save recording: %v", err)
		} else {
			log.Printf("Recording saved: %s (%d frames)", *recordFlag, opts.Recorder.FrameCount())
		}
	}

	fmt.Println(report.Render(g, snap))
	fmt.Println(report.Summary(snap))

	if snap.Outcome == session.OutcomeCaught {
		os.Exit(2)
	}
}
