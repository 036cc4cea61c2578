package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/render"
)

var (
	configFlag = flag.String("config", config.DefaultPath, "YAML config file path")
	sizeFlag   = flag.Int("size", 0, "Grid side length, 0 fits the terminal")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 seeds from time")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/vi-snake.log")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
)

func main() {
	flag.Parse()

	score, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Score: %d\n", score)
}

func run() (int, error) {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		return 0, err
	}
	keys, err := cfg.KeyTable()
	if err != nil {
		return 0, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return 0, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return 0, fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	core.SetCrashScreen(screen)

	n := cfg.Size
	if n == 0 {
		n = render.FitGridSize(screen.Size())
	}
	session := engine.NewSession(cfg.SessionConfig(n))

	ac := cfg.AudioConfig()
	if *muteFlag {
		ac.Enabled = false
	}
	sound := audio.NewSoundManager(ac)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the game runs silent
		log.Printf("audio disabled: %v", err)
	}
	defer sound.Cleanup()
	session.RegisterEventHandler(sound)

	events := make(chan tcell.Event, 16)
	core.Go(func() { pollEvents(screen, events) })

	newApp(screen, keys, session).run(events)

	score := session.Game().Score()
	log.Printf("session %s ended: score %d after %d ticks", session.ID(), score, session.Ticks())
	return score, nil
}

// loadConfig reads the config file then applies flag overrides
func loadConfig() (*config.Config, error) {
	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})

	cfg, err := config.Load(*configFlag, !explicit)
	if err != nil {
		return nil, err
	}
	if *sizeFlag != 0 {
		cfg.Size = *sizeFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
