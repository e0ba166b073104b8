package overlay

import (
	"time"

	"github.com/veilhq/veil/pkg/host"
)

// animator drives opacity transitions through the host's animation
// primitive. It owns no state; the manager decides target values and
// marshals apply/done callbacks onto the UI loop.
type animator struct {
	hst host.Host
}

// fadeIn transitions opacity 0 -> 1 over d.
func (a *animator) fadeIn(d time.Duration, apply func(float64), done func()) {
	a.hst.Animate(d, 0, 1, apply, done)
}

// fadeOut transitions the current opacity to 0 over d. When instant is set
// the final value is applied immediately with no interpolation; this is the
// fullscreen+blur case, where the blur compositor does not animate opacity
// cleanly.
func (a *animator) fadeOut(d time.Duration, from float64, instant bool, apply func(float64), done func()) {
	if instant {
		apply(0)
		done()
		return
	}
	a.hst.Animate(d, from, 0, apply, done)
}
