// Package service manages the lifecycle of session subsystems
package service

import "github.com/lixenwraith/cadet/config"

// Service is a long-lived subsystem rebuilt with every session: presenters, audio, input backends
//
// Lifecycle:
//  1. Construction (session factory)
//  2. Init(cfg) - read configuration, acquire resources
//  3. Start() - launch background goroutines
//  4. [loop runs]
//  5. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	// Init configures the service
	Init(cfg *config.Config) error

	// Start begins operation after every service initialized
	Start() error

	// Stop halts operation and releases resources
	// Must be idempotent
	Stop() error
}
