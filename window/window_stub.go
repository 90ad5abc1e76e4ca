//go:build !cgo

package window

import (
	"context"
	"errors"

	"github.com/lixenwraith/cadet/config"
)

// ErrUnavailable is returned by Run when built without cgo
var ErrUnavailable = errors.New("window backend requires cgo")

// Backend is a placeholder for builds without cgo
type Backend struct{}

// NewBackend returns a backend whose Run always fails
func NewBackend(EventSink, *Presenter, string) *Backend {
	return &Backend{}
}

// Name implements service.Service
func (b *Backend) Name() string { return "window" }

// Dependencies implements service.Service
func (b *Backend) Dependencies() []string { return nil }

// Init implements service.Service
func (b *Backend) Init(*config.Config) error { return ErrUnavailable }

// Start implements service.Service
func (b *Backend) Start() error { return nil }

// Stop implements service.Service
func (b *Backend) Stop() error { return nil }

// Run reports ErrUnavailable without starting loop
func (b *Backend) Run(context.Context, func(context.Context) error) error {
	return ErrUnavailable
}
