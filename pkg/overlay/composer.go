package overlay

import (
	"github.com/veilhq/veil/pkg/element"
	"github.com/veilhq/veil/pkg/types"
)

// ElementKinds returns the ordered content elements for an overlay kind.
// The result is a pure function of (kind, mode); no hidden state influences
// it. The window mode does not currently alter the composition for any
// kind, but it remains part of the contract so hosts can rely on a stable
// signature.
func ElementKinds(kind types.OverlayKind, mode types.WindowMode) []element.Kind {
	_ = mode

	switch kind {
	case types.KindBasic:
		return []element.Kind{element.ActivityIndicator}
	case types.KindMessage:
		return []element.Kind{element.MessageLabel}
	case types.KindMessageWithIndicator:
		return []element.Kind{element.MessageLabel, element.ActivityIndicator}
	case types.KindMessageWithIndicatorAndCancel:
		return []element.Kind{element.MessageLabel, element.ActivityIndicator, element.CancelButton}
	case types.KindProgress:
		return []element.Kind{element.MessageLabel, element.ProgressBar}
	default:
		return nil
	}
}

// applyText pushes new message text into every element that advertises the
// SettableText capability. The tree is never rebuilt for a content update.
func applyText(els []element.Element, text string) {
	for _, el := range els {
		if st, ok := el.(element.SettableText); ok {
			st.SetText(text)
		}
	}
}

// applyProgress pushes a progress value into every element that advertises
// the SettableProgress capability.
func applyProgress(els []element.Element, value float64) {
	for _, el := range els {
		if sp, ok := el.(element.SettableProgress); ok {
			sp.SetProgress(value)
		}
	}
}
