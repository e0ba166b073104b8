// Package element defines the content-element vocabulary of an overlay and
// the capability interfaces the core uses to push updates into elements
// without knowing their concrete host types.
package element

import "github.com/charmbracelet/lipgloss"

// Kind identifies one visible unit inside an overlay.
type Kind int

const (
	// MessageLabel shows the overlay message text
	MessageLabel Kind = iota
	// ProgressBar shows determinate progress in [0,1]
	ProgressBar
	// CancelButton is a tappable control wired to the cancel callback
	CancelButton
	// ActivityIndicator is an indeterminate spinner
	ActivityIndicator
	// BlankSpace is an empty filler element with no intrinsic size
	BlankSpace
)

// String returns a human-readable name for the element kind.
func (k Kind) String() string {
	switch k {
	case MessageLabel:
		return "message-label"
	case ProgressBar:
		return "progress-bar"
	case CancelButton:
		return "cancel-button"
	case ActivityIndicator:
		return "activity-indicator"
	case BlankSpace:
		return "blank-space"
	default:
		return "unknown"
	}
}

// Element is one constructed content element owned by the live overlay
// instance. Sizing is expressed in host units; an element that cannot size
// itself reports a non-positive intrinsic height and is assigned an explicit
// frame by the layout pass.
type Element interface {
	// Kind returns which unit this element is
	Kind() Kind

	// IntrinsicHeight returns the element's natural height in host units,
	// or a value <= 0 when the element has no natural size
	IntrinsicHeight() float64

	// SetFrame assigns an explicit width and height, used both for
	// elements without intrinsic sizing and for width-constrained text
	// wrapping
	SetFrame(width, height float64)
}

// SettableText is the capability of elements that accept message text.
type SettableText interface {
	SetText(text string)
}

// SettableProgress is the capability of elements that display a progress
// value in [0,1].
type SettableProgress interface {
	SetProgress(value float64)
}

// Tappable is the capability of elements that react to activation. The
// bound handler is invoked on Tap; tapping never changes overlay state by
// itself.
type Tappable interface {
	SetOnTap(fn func())
	Tap()
}

// Styleable is the capability of elements that accept a text style. The
// configured message font is passed through unmodified.
type Styleable interface {
	SetStyle(style lipgloss.Style)
}
