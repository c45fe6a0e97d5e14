package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/younwookim/movekit/internal/application/game"
	"github.com/younwookim/movekit/internal/application/replay"
	"github.com/younwookim/movekit/internal/application/scene/sandbox"
	"github.com/younwookim/movekit/internal/infrastructure/config"
)

const (
	screenWidth  = 640
	screenHeight = 360
)

type options struct {
	configDir string
	tuning    string
	stage     string
	agents    int
	record    string
	replay    string
	headless  bool
	ticks     int
	scale     float64
	window    int
}

func parseFlags(args []string) (*options, error) {
	fset := flag.NewFlagSet("sandbox", flag.ContinueOnError)
	o := &options{}
	fset.StringVar(&o.configDir, "config", os.Getenv("MOVEKIT_CONFIG"), "Config directory (default: embedded configs, no hot reload)")
	fset.StringVar(&o.tuning, "tuning", envOr("MOVEKIT_TUNING", "tuning.yaml"), "Tuning file inside the config directory")
	fset.StringVar(&o.stage, "stage", envOr("MOVEKIT_STAGE", "demo"), "Stage name under stages/")
	fset.IntVar(&o.agents, "agents", 2, "Number of AI characters")
	fset.StringVar(&o.record, "record", "", "Record input to file (e.g., -record replay.json)")
	fset.StringVar(&o.replay, "replay", "", "Play back a recorded input file")
	fset.BoolVar(&o.headless, "headless", false, "Run without a window")
	fset.IntVar(&o.ticks, "ticks", 600, "Ticks to run headless when not replaying")
	fset.Float64Var(&o.scale, "scale", 32, "Pixels per world unit")
	fset.IntVar(&o.window, "window", 2, "Window scale")
	if err := fset.Parse(args); err != nil {
		return nil, err
	}
	if o.agents < 0 {
		return nil, fmt.Errorf("agents must not be negative: %d", o.agents)
	}
	if o.scale <= 0 {
		return nil, fmt.Errorf("scale must be positive: %g", o.scale)
	}
	return o, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newLoader(configDir string) (*config.Loader, error) {
	if configDir != "" {
		return config.NewLoader(configDir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func run(o *options) error {
	loader, err := newLoader(o.configDir)
	if err != nil {
		return err
	}

	var data *replay.ReplayData
	if o.replay != "" {
		data, err = replay.LoadReplay(o.replay)
		if err != nil {
			return err
		}
		// a replay only reproduces on the stage and tuning it was recorded with
		o.stage, o.tuning = data.Stage, data.Tuning
		o.record = ""
	}

	session, err := sandbox.NewSession(sandbox.Options{
		Loader:     loader,
		TuningFile: o.tuning,
		StageName:  o.stage,
		Agents:     o.agents,
	})
	if err != nil {
		return err
	}
	log.Printf("Loaded stage %s (%s backend), %d agents", o.stage, session.Backend(), o.agents)

	if o.headless && data != nil {
		pos, err := sandbox.RunReplay(context.Background(), session, data)
		if err != nil {
			return err
		}
		log.Printf("Replay OK: %d ticks, final position %.4f %.4f %.4f", len(data.Frames), pos.X(), pos.Y(), pos.Z())
		return nil
	}

	var watcher *config.Watcher
	if o.configDir != "" && !o.headless {
		watcher, err = config.NewWatcher(o.configDir, filepath.Join(o.configDir, "scripts"))
		if err != nil {
			log.Printf("Hot reload disabled: %v", err)
			watcher = nil
		} else {
			defer func() { _ = watcher.Close() }()
		}
	}

	sb := sandbox.New(session, watcher, screenWidth, screenHeight, o.scale)
	g := game.New(sb, screenWidth, screenHeight)
	if data != nil {
		if data.DT > 0 {
			g.SetDT(data.DT)
		}
		sb.Replay(data)
	}
	if o.record != "" {
		sb.Record(o.record, g.DT())
	}

	if o.headless {
		if err := g.RunHeadless(o.ticks); err != nil {
			return err
		}
		sb.OnExit()
		log.Printf("Ran %d ticks headless, player at %v", g.Ticks(), session.PlayerPosition())
		return nil
	}

	ebiten.SetWindowSize(screenWidth*o.window, screenHeight*o.window)
	ebiten.SetWindowTitle("movekit sandbox")
	ebiten.SetTPS(int(1/g.DT() + 0.5))

	err = ebiten.RunGame(g)
	sb.OnExit()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	o, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
	if err := run(o); err != nil {
		log.Fatal(err)
	}
}
