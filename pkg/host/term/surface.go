package term

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/veilhq/veil/pkg/element"
	"github.com/veilhq/veil/pkg/host"
)

// Surface is the overlay's root visual node in the terminal. The overlay
// core mutates it from its UI loop while the bubbletea program renders it
// from the view path, so every field access goes through the lock.
type Surface struct {
	mu sync.RWMutex

	frame         host.Frame
	opacity       float64
	cornerRadius  float64
	background    lipgloss.TerminalColor
	text          lipgloss.TerminalColor
	blurred       bool
	elements      []element.Element
	contentHeight float64
}

// SetFrame positions the surface inside the container.
func (s *Surface) SetFrame(f host.Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = f
}

// Frame returns the current surface frame.
func (s *Surface) Frame() host.Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frame
}

// SetOpacity sets the surface opacity in [0,1].
func (s *Surface) SetOpacity(o float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opacity = o
}

// Opacity returns the current opacity.
func (s *Surface) Opacity() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opacity
}

// SetCornerRadius sets corner rounding. Any radius above zero renders a
// rounded border; zero renders edge to edge.
func (s *Surface) SetCornerRadius(r float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cornerRadius = r
}

// SetColors sets the backdrop and text colors.
func (s *Surface) SetColors(background, text lipgloss.TerminalColor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.background = background
	s.text = text
}

// SetBlurred enables the blurred-backdrop treatment.
func (s *Surface) SetBlurred(blurred bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blurred = blurred
}

// Blurred reports whether the backdrop is blurred.
func (s *Surface) Blurred() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.blurred
}

// SetElements hands the surface its ordered content elements.
func (s *Surface) SetElements(els []element.Element) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elements = els
}

// SetContentHeight records the aggregate content height computed by the
// layout pass.
func (s *Surface) SetContentHeight(h float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contentHeight = h
}

// ContentHeight returns the last aggregate content height.
func (s *Surface) ContentHeight() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.contentHeight
}

// Render draws the surface content. A fully transparent surface renders
// nothing; partial opacity renders faint, which is the closest terminal
// analogue to an opacity ramp.
func (s *Surface) Render() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.opacity <= 0 {
		return ""
	}

	views := make([]string, 0, len(s.elements))
	for _, el := range s.elements {
		v, ok := el.(viewer)
		if !ok {
			continue
		}
		if view := v.View(); view != "" {
			views = append(views, view)
		}
	}
	content := lipgloss.JoinVertical(lipgloss.Center, views...)

	style := lipgloss.NewStyle().Padding(1, 2)
	if s.text != nil {
		style = style.Foreground(s.text)
	}
	if s.cornerRadius > 0 {
		style = style.Border(lipgloss.RoundedBorder())
	} else {
		style = style.Border(lipgloss.NormalBorder())
	}
	if s.background != nil {
		style = style.BorderForeground(s.background)
	}
	if s.opacity < 1 {
		style = style.Faint(true)
	}

	return style.Render(content)
}
