// Package host defines the capability surface the overlay core consumes
// from an external UI toolkit. The core never draws anything itself: it
// constructs elements through the factory, positions a surface inside the
// container, and drives opacity through the animation primitive.
package host

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/veilhq/veil/pkg/element"
)

// Frame is a rectangle in host units, origin at the container's top-left.
type Frame struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Surface is the overlay's root visual node. The overlay instance owns it
// exclusively between attach and detach; no other writer is permitted.
type Surface interface {
	// SetFrame positions the surface inside the container
	SetFrame(f Frame)

	// Frame returns the current surface frame
	Frame() Frame

	// SetOpacity sets the surface opacity in [0,1]
	SetOpacity(o float64)

	// Opacity returns the current opacity
	Opacity() float64

	// SetCornerRadius sets the corner rounding in host units
	SetCornerRadius(r float64)

	// SetColors sets the backdrop and text colors
	SetColors(background, text lipgloss.TerminalColor)

	// SetBlurred enables the blurred-backdrop treatment
	SetBlurred(blurred bool)

	// SetElements hands the surface its ordered content elements
	SetElements(els []element.Element)

	// SetContentHeight applies the aggregate content height computed by
	// the layout pass
	SetContentHeight(h float64)
}

// Container is the root view supplied by the running application. At most
// one surface is attached at a time.
type Container interface {
	// Bounds returns the container size in host units
	Bounds() (width, height float64)

	// Attach inserts the surface above all application content
	Attach(s Surface)

	// Detach removes the surface
	Detach(s Surface)
}

// Host bundles the toolkit capabilities the overlay core depends on.
type Host interface {
	// Container returns the application's root container
	Container() Container

	// NewSurface creates an unattached surface
	NewSurface() Surface

	// NewElement constructs a content element of the given kind. Factories
	// are infallible: unknown kinds yield a blank element
	NewElement(kind element.Kind) element.Element

	// Animate interpolates from one opacity value to another over the
	// given duration, calling apply with intermediate values and done
	// exactly once afterwards. A non-positive duration applies the final
	// value immediately. Callbacks may arrive on any goroutine; callers
	// are responsible for marshalling onto their own execution context.
	Animate(d time.Duration, from, to float64, apply func(float64), done func())
}
