package overlay

import (
	"math"

	"github.com/veilhq/veil/pkg/element"
	"github.com/veilhq/veil/pkg/host"
	"github.com/veilhq/veil/pkg/types"
)

// DefaultElementHeight is assigned to any element that reports no natural
// intrinsic height.
const DefaultElementHeight = 50.0

// OverlayFrame computes the surface frame inside the container. Fullscreen
// mode, or a window ratio of 1.0, covers the full bounds. Otherwise the
// frame is a centered square whose side is ratio * min(width, height).
func OverlayFrame(mode types.WindowMode, ratio, boundsW, boundsH float64) host.Frame {
	if mode == types.Fullscreen || ratio >= 1.0 {
		return host.Frame{X: 0, Y: 0, Width: boundsW, Height: boundsH}
	}

	side := ratio * math.Min(boundsW, boundsH)
	return host.Frame{
		X:      (boundsW - side) / 2,
		Y:      (boundsH - side) / 2,
		Width:  side,
		Height: side,
	}
}

// LayoutElements sizes each element against the overlay frame and returns
// the aggregate content height. Elements are first width-constrained so
// text can wrap, then measured; anything without natural sizing is forced
// to DefaultElementHeight at the frame's width. The aggregate is the sum of
// effective heights plus spacing between neighbors, and must be recomputed
// whenever text or progress changes because wrapped text height can change.
func LayoutElements(els []element.Element, frame host.Frame, spacing float64) float64 {
	total := 0.0
	for i, el := range els {
		el.SetFrame(frame.Width, 0)

		h := el.IntrinsicHeight()
		if h <= 0 {
			h = DefaultElementHeight
		}
		el.SetFrame(frame.Width, h)

		total += h
		if i > 0 {
			total += spacing
		}
	}
	return total
}
