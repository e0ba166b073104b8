// Package config holds the overlay's styling and behavior options. All
// fields are guarded by a single lock and mutated only through setter
// functions so that clamping and mode side effects happen on assignment,
// never at read time.
package config

import (
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/veilhq/veil/pkg/types"
)

// Default values for overlay configuration.
const (
	DefaultAnimationDuration = 500 * time.Millisecond
	DefaultItemSpacing       = 20.0
	DefaultCornerRadius      = 0.0
	DefaultWindowRatio       = 0.4
	DefaultMessageText       = "Loading..."

	// WindowedCornerRadius is applied when switching to windowed mode
	// while the radius is still at its zero default
	WindowedCornerRadius = 10.0

	// Window ratio bounds; assignments outside are clamped, not rejected
	MinWindowRatio = 0.3
	MaxWindowRatio = 1.0
)

// Default colors and message style. Exposed so the terminal host and tests
// can compare against them.
var (
	DefaultBackgroundColor = lipgloss.Color("236")
	DefaultTextColor       = lipgloss.Color("252")
	DefaultMessageFont     = lipgloss.NewStyle().Bold(true)
)

// Config is the process-wide configuration store for one overlay manager.
// Resetting it never touches a live overlay instance; new values take
// effect on the next presentation or content update.
type Config struct {
	mu sync.RWMutex

	animationDuration time.Duration
	itemSpacing       float64
	cornerRadius      float64
	blurredBackground bool
	backgroundColor   lipgloss.TerminalColor
	textColor         lipgloss.TerminalColor
	messageFont       lipgloss.Style
	messageText       string
	windowRatio       float64
	cancelCallback    func()
}

// New creates a configuration store with every field at its default.
func New() *Config {
	c := &Config{}
	c.reset()
	return c
}

// reset restores defaults; callers must hold the lock or own the value.
func (c *Config) reset() {
	c.animationDuration = DefaultAnimationDuration
	c.itemSpacing = DefaultItemSpacing
	c.cornerRadius = DefaultCornerRadius
	c.blurredBackground = false
	c.backgroundColor = DefaultBackgroundColor
	c.textColor = DefaultTextColor
	c.messageFont = DefaultMessageFont
	c.messageText = DefaultMessageText
	c.windowRatio = DefaultWindowRatio
	c.cancelCallback = nil
}

// Reset restores every field to its default in one atomic operation.
func (c *Config) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}

// SetAnimationDuration sets the fade duration for show and hide.
func (c *Config) SetAnimationDuration(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.animationDuration = d
}

// AnimationDuration returns the fade duration.
func (c *Config) AnimationDuration() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.animationDuration
}

// SetItemSpacing sets the vertical spacing between content elements.
func (c *Config) SetItemSpacing(s float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.itemSpacing = s
}

// ItemSpacing returns the vertical spacing between content elements.
func (c *Config) ItemSpacing() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.itemSpacing
}

// SetCornerRadius sets the overlay surface corner radius.
func (c *Config) SetCornerRadius(r float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cornerRadius = r
}

// CornerRadius returns the overlay surface corner radius.
func (c *Config) CornerRadius() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cornerRadius
}

// SetBlurredBackground enables or disables the blurred backdrop.
func (c *Config) SetBlurredBackground(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.blurredBackground = enabled
}

// BlurredBackground reports whether the backdrop is blurred.
func (c *Config) BlurredBackground() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.blurredBackground
}

// SetBackgroundColor sets the overlay surface color.
func (c *Config) SetBackgroundColor(col lipgloss.TerminalColor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.backgroundColor = col
}

// BackgroundColor returns the overlay surface color.
func (c *Config) BackgroundColor() lipgloss.TerminalColor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.backgroundColor
}

// SetTextColor sets the message text color.
func (c *Config) SetTextColor(col lipgloss.TerminalColor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.textColor = col
}

// TextColor returns the message text color.
func (c *Config) TextColor() lipgloss.TerminalColor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.textColor
}

// SetMessageFont sets the style applied to message text. The style is
// passed through to the host; no typographic policy is applied here.
func (c *Config) SetMessageFont(style lipgloss.Style) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messageFont = style
}

// MessageFont returns the style applied to message text.
func (c *Config) MessageFont() lipgloss.Style {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.messageFont
}

// SetMessageText sets the default message shown when a presentation does
// not supply one.
func (c *Config) SetMessageText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messageText = text
}

// MessageText returns the default message text.
func (c *Config) MessageText() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.messageText
}

// SetWindowRatio stores the windowed-mode size ratio, clamped to
// [MinWindowRatio, MaxWindowRatio]. Out-of-range values are silently
// clamped, never rejected. Returns the stored value.
func (c *Config) SetWindowRatio(r float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.windowRatio = clampRatio(r)
	return c.windowRatio
}

// WindowRatio returns the windowed-mode size ratio.
func (c *Config) WindowRatio() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.windowRatio
}

// SetCancelCallback sets the handler invoked when the cancel control is
// tapped. Tapping invokes this callback only; the caller decides whether
// to hide the overlay.
func (c *Config) SetCancelCallback(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelCallback = fn
}

// CancelCallback returns the configured cancel handler, or nil.
func (c *Config) CancelCallback() func() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cancelCallback
}

// ApplyWindowMode applies the configuration side effects of selecting a
// window mode. Fullscreen forces the corner radius to 0. Windowed disables
// the blurred backdrop and promotes a zero corner radius to
// WindowedCornerRadius; a non-zero radius is left alone.
func (c *Config) ApplyWindowMode(mode types.WindowMode) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch mode {
	case types.Fullscreen:
		c.cornerRadius = 0
	case types.Windowed:
		c.blurredBackground = false
		if c.cornerRadius == 0 {
			c.cornerRadius = WindowedCornerRadius
		}
	}
}

// Snapshot returns a consistent copy of every field for use by a build
// phase, so one presentation never observes a half-applied update.
func (c *Config) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Snapshot{
		AnimationDuration: c.animationDuration,
		ItemSpacing:       c.itemSpacing,
		CornerRadius:      c.cornerRadius,
		BlurredBackground: c.blurredBackground,
		BackgroundColor:   c.backgroundColor,
		TextColor:         c.textColor,
		MessageFont:       c.messageFont,
		MessageText:       c.messageText,
		WindowRatio:       c.windowRatio,
		CancelCallback:    c.cancelCallback,
	}
}

// Snapshot is an immutable copy of the configuration at one point in time.
type Snapshot struct {
	AnimationDuration time.Duration
	ItemSpacing       float64
	CornerRadius      float64
	BlurredBackground bool
	BackgroundColor   lipgloss.TerminalColor
	TextColor         lipgloss.TerminalColor
	MessageFont       lipgloss.Style
	MessageText       string
	WindowRatio       float64
	CancelCallback    func()
}

func clampRatio(r float64) float64 {
	if r < MinWindowRatio {
		return MinWindowRatio
	}
	if r > MaxWindowRatio {
		return MaxWindowRatio
	}
	return r
}
