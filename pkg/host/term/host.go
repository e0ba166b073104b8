// Package term implements the overlay host bridge for terminal UIs built
// on bubbletea. Elements render through lipgloss and the bubbles spinner
// and progress components; the host composites the attached surface over
// the application's base view.
package term

import (
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/veilhq/veil/pkg/element"
	"github.com/veilhq/veil/pkg/host"
)

// animation step interval; terminals gain nothing from going faster
const frameInterval = 33 * time.Millisecond

// Host implements host.Host for terminal applications. It doubles as the
// container: the running program reports its size through SetSize, and the
// attached surface is composited over the base view in Compose.
type Host struct {
	mu      sync.RWMutex
	width   int
	height  int
	surface *Surface
}

// New creates a terminal host with a conventional default size; callers
// update it from tea.WindowSizeMsg.
func New() *Host {
	return &Host{width: 80, height: 24}
}

// SetSize updates the container bounds in cells.
func (h *Host) SetSize(width, height int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.width = width
	h.height = height
}

// Container returns the host itself; the terminal host is its own root
// container.
func (h *Host) Container() host.Container { return h }

// Bounds returns the container size in cells.
func (h *Host) Bounds() (float64, float64) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return float64(h.width), float64(h.height)
}

// Attach inserts the surface above the application content. At most one
// surface is attached at a time; a second attach replaces the first.
func (h *Host) Attach(s host.Surface) {
	ts, ok := s.(*Surface)
	if !ok {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.surface = ts
}

// Detach removes the surface if it is the one attached.
func (h *Host) Detach(s host.Surface) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.surface == s {
		h.surface = nil
	}
}

// Attached reports whether a surface is currently attached.
func (h *Host) Attached() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.surface != nil
}

// NewSurface creates an unattached surface.
func (h *Host) NewSurface() host.Surface {
	return &Surface{}
}

// NewElement constructs a terminal content element. Unknown kinds yield a
// blank element; the factory never fails.
func (h *Host) NewElement(kind element.Kind) element.Element {
	switch kind {
	case element.MessageLabel:
		return &label{style: lipgloss.NewStyle()}
	case element.ActivityIndicator:
		return newIndicator()
	case element.ProgressBar:
		return newProgressBar()
	case element.CancelButton:
		return newCancelButton()
	default:
		return &blank{}
	}
}

// Animate interpolates opacity linearly over d, stepping at the frame
// interval on its own goroutine. apply receives intermediate values and
// done fires exactly once afterwards; callers marshal both onto their own
// execution context.
func (h *Host) Animate(d time.Duration, from, to float64, apply func(float64), done func()) {
	steps := int(d / frameInterval)
	if steps < 1 {
		apply(to)
		done()
		return
	}

	go func() {
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()
		for i := 1; i <= steps; i++ {
			<-ticker.C
			apply(from + (to-from)*float64(i)/float64(steps))
		}
		done()
	}()
}

// Advance steps every animated element of the attached surface by one
// frame. Wire this to the program's tick message.
func (h *Host) Advance() {
	h.mu.RLock()
	s := h.surface
	h.mu.RUnlock()
	if s == nil {
		return
	}

	s.mu.RLock()
	els := s.elements
	s.mu.RUnlock()
	for _, el := range els {
		if a, ok := el.(interface{ Advance() }); ok {
			a.Advance()
		}
	}
}

// Tap activates the first tappable element of the attached surface,
// invoking the configured cancel callback. It does not change overlay
// state.
func (h *Host) Tap() {
	h.mu.RLock()
	s := h.surface
	h.mu.RUnlock()
	if s == nil {
		return
	}

	s.mu.RLock()
	els := s.elements
	s.mu.RUnlock()
	for _, el := range els {
		if t, ok := el.(element.Tappable); ok {
			t.Tap()
			return
		}
	}
}

// Compose renders the attached surface centered over the base view. With
// no surface attached, or one that is fully transparent, the base view
// passes through unchanged. The backdrop fills with blanks, or with a
// shade pattern when the surface is blurred.
func (h *Host) Compose(base string) string {
	h.mu.RLock()
	s := h.surface
	width, height := h.width, h.height
	h.mu.RUnlock()

	if s == nil {
		return base
	}
	view := s.Render()
	if view == "" {
		return base
	}

	whitespace := []lipgloss.WhitespaceOption{
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("0")),
	}
	if s.Blurred() {
		whitespace = []lipgloss.WhitespaceOption{
			lipgloss.WithWhitespaceChars("░"),
			lipgloss.WithWhitespaceForeground(lipgloss.Color("238")),
		}
	}

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		view,
		whitespace...,
	)
}
