package engine

import (
	"context"
	"fmt"
	"log"

	"github.com/lixenwraith/cadet/config"
	"github.com/lixenwraith/cadet/service"
)

// Session is one build of the subsystems around a loop
type Session struct {
	Loop     *Loop
	Services *service.Hub // Optional
}

// SessionFactory builds the session for the given generation, starting at 0
type SessionFactory func(ctx context.Context, generation int) (*Session, error)

// Supervise runs sessions until one ends without requesting a restart
// Services are initialized before and stopped after every loop run
func Supervise(ctx context.Context, cfg *config.Config, build SessionFactory) error {
	for generation := 0; ; generation++ {
		s, err := build(ctx, generation)
		if err != nil {
			return fmt.Errorf("build session %d: %w", generation, err)
		}
		if s == nil || s.Loop == nil {
			return fmt.Errorf("build session %d: no loop", generation)
		}

		restart, err := runSession(ctx, cfg, s)
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
		log.Printf("supervisor: rebuilding session %d", generation+1)
	}
}

func runSession(ctx context.Context, cfg *config.Config, s *Session) (restart bool, err error) {
	if s.Services != nil {
		if err := s.Services.InitAll(cfg); err != nil {
			return false, fmt.Errorf("init services: %w", err)
		}
		if err := s.Services.StartAll(); err != nil {
			return false, fmt.Errorf("start services: %w", err)
		}
		defer s.Services.StopAll()
	}

	if err := s.Loop.Run(ctx); err != nil {
		return false, err
	}
	return s.Loop.RestartRequested(), nil
}
