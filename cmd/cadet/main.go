package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/cadet/audio"
	"github.com/lixenwraith/cadet/config"
	"github.com/lixenwraith/cadet/engine"
	"github.com/lixenwraith/cadet/input"
	"github.com/lixenwraith/cadet/service"
	"github.com/lixenwraith/cadet/settings"
	"github.com/lixenwraith/cadet/status"
	"github.com/lixenwraith/cadet/terminal"
	"github.com/lixenwraith/cadet/window"
)

var (
	backendFlag  = flag.String("backend", "terminal", "Backend: terminal, window")
	settingsFlag = flag.String("settings", "", "Settings file (default: user config dir)/cadet/settings.yaml")
	debugFlag    = flag.Bool("debug", false, "Write debug log to logs/cadet.log")
	muteFlag     = flag.Bool("mute", false, "Run without audio")
	upsFlag      = flag.Int("ups", 0, "Override updates per second (saved)")
	fpsFlag      = flag.Int("fps", 0, "Override frames per second (saved)")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCADET CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "cadet: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	path, err := settingsPath(*settingsFlag)
	if err != nil {
		return err
	}
	store, err := settings.Open(path)
	if err != nil {
		return err
	}

	// Bindings register their persisted rows with cfg; they live as long as the process
	cfg := config.New()
	bindings := input.NewBindingTable(cfg)
	cfg.Load(store)
	applyRateOverrides(cfg, *upsFlag, *fpsFlag, path)

	h := &harness{
		cfg:      cfg,
		bindings: bindings,
		queue:    input.NewQueue(),
		reg:      status.NewRegistry(),
		table:    NewTable(),
		mute:     *muteFlag,
	}
	h.panel = NewPanel(cfg, bindings, h.reg, h.table, *backendFlag)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var runErr error
	switch *backendFlag {
	case "terminal":
		runErr = engine.Supervise(ctx, cfg, h.sessions(func() (service.Service, engine.Renderer) {
			svc := terminal.NewService(h.queue)
			return svc, terminal.NewPresenter(svc, h.panel)
		}))
	case "window":
		presenter := window.NewPresenter(h.panel)
		backend := window.NewBackend(h.queue, presenter, "cadet")
		runErr = backend.Run(ctx, func(ctx context.Context) error {
			return engine.Supervise(ctx, cfg, h.sessions(func() (service.Service, engine.Renderer) {
				return backend, presenter
			}))
		})
	default:
		return fmt.Errorf("unknown backend %q", *backendFlag)
	}
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}

	cfg.Save(store)
	if err := store.Flush(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// harness holds the process-lifetime pieces shared by every session
type harness struct {
	cfg      *config.Config
	bindings *input.BindingTable
	queue    *input.Queue
	reg      *status.Registry
	table    *Table
	panel    *Panel
	mute     bool
}

// sessions returns a factory that wires a fresh loop and service hub around the backend
func (h *harness) sessions(backend func() (service.Service, engine.Renderer)) engine.SessionFactory {
	return func(ctx context.Context, generation int) (*engine.Session, error) {
		hub := service.NewHub()
		svc, renderer := backend()
		if err := hub.Register(svc); err != nil {
			return nil, err
		}

		opts := []engine.LoopOption{
			engine.WithRenderer(renderer),
			engine.WithEventHandler(h.panel),
			engine.WithStatus(h.reg),
		}

		h.table.SetSound(nil)
		if !h.mute {
			snd := audio.NewService()
			if err := hub.Register(snd); err != nil {
				return nil, err
			}
			opts = append(opts, engine.WithFocusListener(snd))
			h.table.SetSound(snd)
		}

		loop := engine.NewLoop(h.cfg, h.bindings, h.queue, h.table, opts...)
		h.panel.Attach(loop, generation)
		log.Printf("session %d: backend=%s services=%v config watchers=%d",
			generation, svc.Name(), hub.Names(), h.cfg.Watchers())
		return &engine.Session{Loop: loop, Services: hub}, nil
	}
}

// applyRateOverrides sets positive flag rates; they persist like in-app changes, so each is logged
func applyRateOverrides(cfg *config.Config, ups, fps int, path string) {
	if ups > 0 {
		cfg.SetUpdatesPerSecond(ups)
		log.Printf("config: -ups override, updates per second %d will be saved to %s", cfg.UpdatesPerSecond(), path)
	}
	if fps > 0 {
		cfg.SetFramesPerSecond(fps)
		log.Printf("config: -fps override, frames per second %d will be saved to %s", cfg.FramesPerSecond(), path)
	}
}

// settingsPath resolves the settings file location
func settingsPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("settings location: %w", err)
	}
	return filepath.Join(dir, "cadet", "settings.yaml"), nil
}
