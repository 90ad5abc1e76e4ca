package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// LineSource supplies the text to present each frame
type LineSource interface {
	Lines() []string
}

// Presenter draws a LineSource onto the service screen
type Presenter struct {
	svc    *Service
	source LineSource

	Style     tcell.Style
	Highlight tcell.Style
}

// NewPresenter creates a presenter; lines starting with '>' use the highlight style
func NewPresenter(svc *Service, source LineSource) *Presenter {
	return &Presenter{
		svc:       svc,
		source:    source,
		Style:     tcell.StyleDefault,
		Highlight: tcell.StyleDefault.Reverse(true),
	}
}

// Render implements engine.Renderer
func (p *Presenter) Render() {
	screen := p.svc.Screen()
	if screen == nil {
		return
	}
	screen.Clear()
	width, height := screen.Size()
	for y, line := range p.source.Lines() {
		if y >= height {
			break
		}
		style := p.Style
		if len(line) > 0 && line[0] == '>' {
			style = p.Highlight
		}
		drawText(screen, 0, y, width, line, style)
	}
	screen.Show()
}

// drawText writes s at (x, y), clipped to width columns
func drawText(screen tcell.Screen, x, y, width int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= width {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
