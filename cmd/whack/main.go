package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/whack/audio"
	"github.com/lixenwraith/whack/config"
	"github.com/lixenwraith/whack/constants"
	"github.com/lixenwraith/whack/engine"
	"github.com/lixenwraith/whack/game"
	"github.com/lixenwraith/whack/input"
	"github.com/lixenwraith/whack/render"
	"github.com/lixenwraith/whack/render/renderers"
)

func main() {
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	opts.apply(flag.CommandLine, cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	logFile, logger := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mWHACK CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	// Initialize audio, the game runs silent without a device
	sounds := audio.NewSoundManager(cfg.AudioConfig())
	if err := sounds.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("audio initialization failed, continuing without audio")
	} else {
		defer sounds.Cleanup()
	}

	clock := engine.NewMonotonicTimeProvider()
	width, height := screen.Size()
	layout := render.NewLayout(width, height, cfg.Grid.Rows, cfg.Grid.Cols)

	g := game.New(
		engine.NewGameContext(cfg.Round.Seconds, cfg.Round.Muted),
		clock,
		game.Settings{
			Holes:   layout.Holes(),
			Balance: cfg.MoleBalance(),
			Pans:    layout.Pans(),
		},
		game.WithSounds(sounds),
		game.WithLogger(logger),
	)
	defer g.Close()

	orchestrator := render.NewRenderOrchestrator(screen, width, height)
	orchestrator.Register(renderers.NewFieldRenderer(g), render.PriorityField)
	orchestrator.Register(renderers.NewStarRenderer(g), render.PriorityOverlay)
	orchestrator.Register(renderers.NewStatusBarRenderer(g, cfg.Debug), render.PriorityUI)
	orchestrator.Register(renderers.NewBannerRenderer(g), render.PriorityBanner)

	machine := input.NewMachine(layout, nil)

	eventChan := make(chan tcell.Event, constants.InputEventBuffer)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// Nil on screen finalization
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	logger.Info().Int("holes", layout.Holes()).Int("seconds", cfg.Round.Seconds).Msg("game started")

	for {
		select {
		case ev := <-eventChan:
			intent := machine.Process(ev)
			if intent == nil {
				continue
			}
			switch intent.Type {
			case input.IntentQuit:
				logger.Info().Int("best", g.Context().BestScore()).Msg("quit")
				return
			case input.IntentHit:
				g.Hit(intent.Hole, intent.X, intent.Y, clock.Now())
			case input.IntentToggleMute:
				g.RequestMute()
			case input.IntentNewRound:
				g.RequestReset()
			case input.IntentResize:
				layout.Resize(intent.X, intent.Y)
				orchestrator.Resize(intent.X, intent.Y)
			}

		case <-frameTicker.C:
			now := clock.Now()
			g.Update(now)
			w, h := layout.Size()
			orchestrator.RenderFrame(render.RenderContext{
				Now:    now,
				Width:  w,
				Height: h,
				Layout: layout,
			})
		}
	}
}
