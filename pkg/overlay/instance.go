package overlay

import (
	"github.com/veilhq/veil/pkg/element"
	"github.com/veilhq/veil/pkg/host"
	"github.com/veilhq/veil/pkg/types"
)

// instance is the single live overlay. It exists only while the state is
// not Hidden: created at Initializing, mutated during ViewReady and Loaded,
// and released when Hiding completes. Only the currently-active pipeline
// phase or update task may touch it, and those all run on the UI loop.
type instance struct {
	kind types.OverlayKind
	mode types.WindowMode

	elements []element.Element
	surface  host.Surface
	frame    host.Frame

	// spacing and blurred are captured from the configuration snapshot at
	// build time so hide and reflow behave consistently for this
	// presentation even if the store changes afterwards
	spacing float64
	blurred bool
}

// reflow re-runs element sizing and height aggregation against the stored
// frame. Called after every content update since wrapped text height can
// change.
func (in *instance) reflow() {
	if in.surface == nil {
		return
	}
	h := LayoutElements(in.elements, in.frame, in.spacing)
	in.surface.SetContentHeight(h)
}
