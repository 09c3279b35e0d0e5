package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/reef-arcade/audio"
	"github.com/lixenwraith/reef-arcade/config"
	"github.com/lixenwraith/reef-arcade/engine"
	"github.com/lixenwraith/reef-arcade/parameter"
	"github.com/lixenwraith/reef-arcade/puzzle"
	"github.com/lixenwraith/reef-arcade/render"
	"github.com/lixenwraith/reef-arcade/spectate"
	"github.com/lixenwraith/reef-arcade/status"
	"github.com/lixenwraith/reef-arcade/survival"
	"github.com/lixenwraith/reef-arcade/vmath"
)

var (
	configFlag   = flag.String("config", "", "Path to a TOML config file")
	modeFlag     = flag.String("mode", "", "Game to play: puzzle or survival")
	levelFlag    = flag.Int("level", 0, "Puzzle level to start at (1 is the tutorial)")
	themeFlag    = flag.String("theme", "", "Survival map theme")
	seedFlag     = flag.Uint64("seed", 0, "Random seed, 0 seeds from the clock")
	spectateFlag = flag.String("spectate", "", "Serve the spectator feed on this address, e.g. :8080")
	debugFlag    = flag.Bool("debug", false, "Write logs and show metrics")
)

func main() {
	flag.Parse()

	cfg, err := resolveConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "reef-arcade: %v\n", err)
		os.Exit(2)
	}

	logger, logFile := setupLogging(cfg.Log.Debug, cfg.Log.Dir)
	if logFile != nil {
		defer logFile.Close()
	}

	wallet := engine.NewWallet()
	if err := run(cfg, logger, wallet); err != nil {
		fmt.Fprintf(os.Stderr, "reef-arcade: %v\n", err)
		os.Exit(1)
	}

	gold, diamonds := wallet.Balance()
	fmt.Printf("wallet: %d gold, %d diamonds\n", gold, diamonds)
	for _, a := range wallet.Achievements() {
		fmt.Printf("achievement: %s %s\n", a.Icon, a.Title)
	}
}

// resolveConfig layers flags over file and environment
func resolveConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return cfg, err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = config.Mode(*modeFlag)
		case "level":
			cfg.Puzzle.Level = *levelFlag
		case "theme":
			cfg.Survival.Theme = *themeFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "spectate":
			cfg.Spectate.Addr = *spectateFlag
		case "debug":
			cfg.Log.Debug = *debugFlag
		}
	})
	return cfg, cfg.Validate()
}

// crashGuard restores the terminal before reporting a panic from any goroutine
func crashGuard(screen tcell.Screen, where string) {
	if r := recover(); r != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\n\x1b[31mREEF-ARCADE CRASHED (%s): %v\x1b[0m\n", where, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger, host engine.Host) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	defer crashGuard(screen, "main")
	screen.EnableMouse()
	screen.Clear()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Audio opens in the background; the ready gate bounds how long the run waits for it
	type opened struct {
		player audio.Player
		close  func()
	}
	audioCh := make(chan opened, 1)
	go func() {
		p, closeFn := audio.Open(cfg.Audio, log)
		audioCh <- opened{p, closeFn}
	}()
	var sound opened
	forced, err := engine.NewReadyGate(func() bool {
		select {
		case sound = <-audioCh:
			return true
		default:
			return false
		}
	}).Wait(ctx)
	if err != nil {
		go func() { (<-audioCh).close() }()
		return nil
	}
	if forced {
		log.Warn("assets not ready, starting without audio")
		sound = opened{audio.Nop{}, func() {}}
		go func() { (<-audioCh).close() }()
	}
	defer sound.close()

	var rng vmath.Rand = vmath.NewTimeRand()
	if cfg.Seed != 0 {
		rng = vmath.NewFastRand(cfg.Seed)
	}
	metrics := status.NewRegistry()

	m := newMode(cfg, screen, rng, metrics, log, cancel)
	session := engine.NewSession(m.Game(), host, engine.WithSound(sound.player), engine.WithSessionLogger(log))
	log.Info("session started", "session", session.ID(), "mode", cfg.Mode, "seed", cfg.Seed)

	var hub *spectate.Hub
	if cfg.Spectate.Addr != "" {
		hub = spectate.NewHub(spectate.WithFormat(cfg.Spectate.Format), spectate.WithMetrics(metrics), spectate.WithLogger(log))
		defer hub.Close()
	}

	var frames uint64
	loop := engine.NewLoop(session,
		engine.WithInterval(time.Second/time.Duration(cfg.TickRate)),
		engine.WithFrame(func(s *engine.Session) {
			rc := render.Context{Debug: cfg.Log.Debug}
			if cfg.Log.Debug {
				rc.Metrics = metrics.Snapshot()
			}
			m.Draw(rc)
			frames++
			if hub != nil && frames%parameter.SpectateFrameDivisor == 0 {
				hub.Publish(m.Frame(s.ID()))
			}
		}),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer crashGuard(screen, "loop")
		return loop.Run(gctx)
	})
	if hub != nil {
		g.Go(func() error {
			defer hub.Close()
			return spectate.Serve(gctx, cfg.Spectate.Addr, spectate.NewRouter(hub, metrics), log)
		})
	}

	// Input polling stays outside the group: PollEvent only returns once the screen is finalized
	go pollInput(screen, m, loop, cancel)

	err = g.Wait()

	// The loop has stopped, so the session is safe to touch from here
	if !session.Done() {
		if session.Game().Terminal() {
			if derr := session.Dismiss(); derr != nil {
				log.Warn("dismiss on exit", "error", derr)
			}
		} else {
			session.Abandon()
			log.Info("session abandoned", "session", session.ID())
		}
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newMode(cfg config.Config, screen tcell.Screen, rng vmath.Rand, metrics *status.Registry, log *slog.Logger, quit func()) mode {
	if cfg.Mode == config.ModePuzzle {
		board := puzzle.NewBoard(puzzle.WithRand(rng), puzzle.WithLogger(log), puzzle.WithMetrics(metrics))
		board.InitLevel(cfg.Puzzle.Level)
		return &puzzleMode{
			board: board,
			view:  render.NewPuzzleView(screen),
			size:  screen.Size,
			quit:  quit,
			log:   log,
		}
	}
	eng := survival.New(
		survival.WithRand(rng),
		survival.WithLogger(log),
		survival.WithMetrics(metrics),
		survival.WithTheme(cfg.Survival.Theme),
	)
	return &survivalMode{
		eng:  eng,
		held: newHeldKeys(parameter.HeldKeyWindow),
		view: render.NewSurvivalView(screen),
		quit: quit,
		log:  log,
		now:  time.Now,
	}
}

// pollInput turns terminal events into loop commands until the screen closes
func pollInput(screen tcell.Screen, m mode, loop *engine.Loop, quit func()) {
	defer crashGuard(screen, "input")
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		var cmd engine.Command
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				quit()
				continue
			}
			cmd = m.Key(ev, time.Now())
		case *tcell.EventMouse:
			cmd = m.Mouse(ev)
		}
		if cmd != nil && !loop.Submit(cmd) {
			slog.Debug("command dropped, queue full")
		}
	}
}
