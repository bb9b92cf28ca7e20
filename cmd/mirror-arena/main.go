package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mirror-arena/audio"
	"github.com/lixenwraith/mirror-arena/config"
	"github.com/lixenwraith/mirror-arena/engine"
	"github.com/lixenwraith/mirror-arena/input"
	"github.com/lixenwraith/mirror-arena/parameter"
	"github.com/lixenwraith/mirror-arena/render"
)

var (
	configPath  = flag.String("config", "", "Path to a TOML config file")
	seedFlag    = flag.Int64("seed", 0, "Override the mirror placement seed")
	debugFlag   = flag.Bool("debug", false, "Write debug logs to "+parameter.LogDir+"/")
	muteFlag    = flag.Bool("mute", false, "Start with audio disabled")
	headless    = flag.Int("headless", 0, "Run N ticks without a terminal and print the final state")
	writeConfig = flag.String("write-config", "", "Write the default config to the given path and exit")
)

func main() {
	flag.Parse()

	if *writeConfig != "" {
		if err := config.SaveDefault(*writeConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Default config written to %s\n", *writeConfig)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	world, err := engine.NewWorld(cfg, engine.NewRand(cfg.Engine.Seed), log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create world: %v\n", err)
		os.Exit(1)
	}

	if *headless > 0 {
		if err := runHeadless(world, *headless, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Headless run failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mMIRROR-ARENA CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))
	screen.HideCursor()

	// Audio is optional
	sound := audio.NewSoundManager()
	sound.SetMuted(*muteFlag)
	if !*muteFlag {
		if err := sound.Initialize(); err != nil {
			log.WithError(err).Warn("audio initialization failed, continuing without audio")
		} else {
			defer sound.Cleanup()
		}
	}

	tp := engine.NewMonotonicTimeProvider()
	g := &game{
		world:    world,
		renderer: render.NewTerminalRenderer(screen),
		sound:    sound,
		log:      log,
		time:     tp,
		clock:    engine.NewClock(tp, cfg.TickInterval(), parameter.MaxCatchUpTicks),
		keys:     input.DefaultKeyTable(),
		tracker:  input.NewTracker(cfg.HoldWindow()),
	}
	g.run(screen)
}

// loadConfig resolves defaults, the optional file and flag overrides
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.Engine.Seed = *seedFlag
		}
	})
	return cfg, cfg.Validate()
}
