package window

import (
	"strings"
	"sync"
)

// Presenter snapshots a LineSource on the loop goroutine for the ebiten draw thread
type Presenter struct {
	source LineSource

	mu     sync.Mutex
	text   string
	frames uint64
}

// NewPresenter creates a presenter over source
func NewPresenter(source LineSource) *Presenter {
	return &Presenter{source: source}
}

// Render implements engine.Renderer
func (p *Presenter) Render() {
	text := strings.Join(p.source.Lines(), "\n")
	p.mu.Lock()
	p.text = text
	p.frames++
	p.mu.Unlock()
}

// Text returns the latest snapshot
func (p *Presenter) Text() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.text
}

// Frames returns how many snapshots were taken
func (p *Presenter) Frames() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frames
}
