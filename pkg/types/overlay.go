package types

// PresentationState represents the lifecycle phase of the current overlay
// instance. Exactly one overlay exists per Manager, so there is exactly one
// live state value at any time.
type PresentationState int

const (
	// StateHidden indicates no overlay is presented
	StateHidden PresentationState = iota
	// StateInitializing indicates the element tree is being built
	StateInitializing
	// StateViewReady indicates the tree is built but not yet attached
	StateViewReady
	// StateLoaded indicates the overlay is attached and fully visible
	StateLoaded
	// StateHiding indicates the teardown animation is running
	StateHiding
)

// String returns a human-readable name for the state.
func (s PresentationState) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateInitializing:
		return "initializing"
	case StateViewReady:
		return "view-ready"
	case StateLoaded:
		return "loaded"
	case StateHiding:
		return "hiding"
	default:
		return "unknown"
	}
}

// OverlayKind selects which set of content elements an overlay shows.
// The kind is immutable for the lifetime of one presentation.
type OverlayKind int

const (
	// KindBasic shows only an activity indicator
	KindBasic OverlayKind = iota
	// KindMessage shows only a message label
	KindMessage
	// KindMessageWithIndicator shows a message label above an activity indicator
	KindMessageWithIndicator
	// KindMessageWithIndicatorAndCancel adds a cancel control below the indicator
	KindMessageWithIndicatorAndCancel
	// KindProgress shows a message label above a progress bar
	KindProgress
)

// String returns a human-readable name for the kind.
func (k OverlayKind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindMessage:
		return "message"
	case KindMessageWithIndicator:
		return "message+indicator"
	case KindMessageWithIndicatorAndCancel:
		return "message+indicator+cancel"
	case KindProgress:
		return "progress"
	default:
		return "unknown"
	}
}

// HasMessage reports whether the kind includes a message label that
// UpdateMessage may target.
func (k OverlayKind) HasMessage() bool {
	switch k {
	case KindMessage, KindMessageWithIndicator, KindMessageWithIndicatorAndCancel:
		return true
	}
	return false
}

// WindowMode selects whether the overlay covers the whole container or a
// centered sized region.
type WindowMode int

const (
	// Fullscreen covers the entire container
	Fullscreen WindowMode = iota
	// Windowed covers a centered square sized by the configured window ratio
	Windowed
)

// String returns a human-readable name for the mode.
func (m WindowMode) String() string {
	switch m {
	case Fullscreen:
		return "fullscreen"
	case Windowed:
		return "windowed"
	default:
		return "unknown"
	}
}
