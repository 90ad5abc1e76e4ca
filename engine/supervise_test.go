package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cadet/config"
	"github.com/lixenwraith/cadet/input"
	"github.com/lixenwraith/cadet/service"
)

type lifecycleService struct {
	inits, starts, stops int
}

func (s *lifecycleService) Name() string              { return "lifecycle" }
func (s *lifecycleService) Dependencies() []string    { return nil }
func (s *lifecycleService) Init(*config.Config) error { s.inits++; return nil }
func (s *lifecycleService) Start() error              { s.starts++; return nil }
func (s *lifecycleService) Stop() error               { s.stops++; return nil }

func TestSupervise_RebuildsOnRestart(t *testing.T) {
	cfg := config.New()
	svc := &lifecycleService{}
	var generations []int

	build := func(ctx context.Context, generation int) (*Session, error) {
		generations = append(generations, generation)
		h := newHarness(t, cfg)

		hub := service.NewHub()
		require.NoError(t, hub.Register(svc))

		if generation == 0 {
			// First session changes a restart-only setting on its first step
			h.sim.onUpdate = func(n int) {
				if n == 1 {
					cfg.SetLanguage(cfg.NextLanguage())
				}
			}
		} else {
			h.quitAfter(2)
		}
		return &Session{Loop: h.loop, Services: hub}, nil
	}

	require.NoError(t, Supervise(context.Background(), cfg, build))
	assert.Equal(t, []int{0, 1}, generations)
	assert.Equal(t, 2, svc.inits)
	assert.Equal(t, 2, svc.starts)
	assert.Equal(t, 2, svc.stops)
	assert.Equal(t, "Deutsch", cfg.Language())
}

func TestSupervise_BuildError(t *testing.T) {
	boom := errors.New("no display")
	err := Supervise(context.Background(), config.New(), func(context.Context, int) (*Session, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	err = Supervise(context.Background(), config.New(), func(context.Context, int) (*Session, error) {
		return &Session{}, nil
	})
	assert.Error(t, err)
}

func TestSupervise_CancelStopsServices(t *testing.T) {
	cfg := config.New()
	svc := &lifecycleService{}
	ctx, cancel := context.WithCancel(context.Background())

	err := Supervise(ctx, cfg, func(ctx context.Context, generation int) (*Session, error) {
		h := newHarness(t, cfg)
		h.sim.onUpdate = func(n int) {
			if n == 2 {
				cancel()
			}
		}
		hub := service.NewHub()
		require.NoError(t, hub.Register(svc))
		return &Session{Loop: h.loop, Services: hub}, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, svc.stops)
}

func TestLoop_RestartFromAnotherGoroutine(t *testing.T) {
	cfg := config.New()
	h := newHarness(t, cfg)
	h.sim.onUpdate = func(n int) {
		if n == 5 {
			done := make(chan struct{})
			go func() {
				h.loop.Restart()
				close(done)
			}()
			<-done
		}
	}
	h.run(t)

	assert.True(t, h.loop.RestartRequested())
	last := h.handler.events[len(h.handler.events)-1]
	assert.Equal(t, input.EventQuit, last.Type)
}
