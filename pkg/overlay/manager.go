// Package overlay implements the presentation state machine, the two-phase
// build/attach pipeline, content composition, and layout sizing for a
// single modal loading overlay. Rendering is delegated to a host bridge;
// see pkg/host for the capability surface and pkg/host/term for the
// terminal implementation.
package overlay

import (
	"sync"
	"time"

	"github.com/veilhq/veil/pkg/config"
	"github.com/veilhq/veil/pkg/element"
	"github.com/veilhq/veil/pkg/host"
	"github.com/veilhq/veil/pkg/logging"
	"github.com/veilhq/veil/pkg/types"
)

// Manager owns the single overlay instance and guards every public
// operation against invalid states. All public methods return immediately;
// completion is reported through callbacks that run on the UI loop.
//
// State transitions are strictly
// Hidden -> Initializing -> ViewReady -> Loaded -> Hiding -> Hidden.
// Show is only valid from Hidden or Hiding; content updates only from
// Loaded.
type Manager struct {
	mu    sync.Mutex
	state types.PresentationState
	inst  *instance

	// gen is bumped on every accepted Show and on every Hide that starts
	// tearing down. Async continuations capture the value at issue time
	// and drop themselves when it has moved on.
	gen uint64

	cfg  *config.Config
	hst  host.Host
	loop *uiLoop
	anim *animator
	log  *logging.Logger
}

// New creates a manager bound to the given host bridge, with a fresh
// configuration store and its own UI loop.
func New(hst host.Host) *Manager {
	return &Manager{
		state: types.StateHidden,
		cfg:   config.New(),
		hst:   hst,
		loop:  newUILoop(),
		anim:  &animator{hst: hst},
	}
}

// SetLogger attaches an optional logger for transition and pipeline
// diagnostics.
func (m *Manager) SetLogger(log *logging.Logger) {
	m.log = log
}

// Config returns the configuration store. Callers adjust styling and
// behavior through its setters; ResetToDefaults restores it wholesale.
func (m *Manager) Config() *config.Config {
	return m.cfg
}

// State returns the current presentation state.
func (m *Manager) State() types.PresentationState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Close stops the UI loop after pending tasks have run. The manager must
// not be used afterwards.
func (m *Manager) Close() {
	m.loop.Close()
}

// Show presents an overlay of the given kind and window mode. It is valid
// only while Hidden or Hiding; any other state returns an
// InvalidStateError and leaves the existing instance untouched. Showing
// while Hiding supersedes the teardown: the old surface is detached
// immediately and its pending completion never fires.
//
// The presentation runs in two ordered phases on the UI loop: build the
// element tree and compute initial layout, then attach the surface and
// fade it in. onComplete, if non-nil, runs on the loop once the state
// reaches Loaded.
func (m *Manager) Show(kind types.OverlayKind, mode types.WindowMode, onComplete func()) error {
	m.mu.Lock()
	if m.state != types.StateHidden && m.state != types.StateHiding {
		st := m.state
		m.mu.Unlock()
		return &types.InvalidStateError{Op: "show", State: st}
	}

	m.gen++
	gen := m.gen

	// Supersede an in-flight hide: its callbacks are now stale, so the
	// surface has to be detached here.
	if m.state == types.StateHiding && m.inst != nil && m.inst.surface != nil {
		old := m.inst.surface
		m.loop.Submit(func() {
			m.hst.Container().Detach(old)
		})
	}

	m.state = types.StateInitializing
	inst := &instance{kind: kind, mode: mode}
	m.inst = inst
	m.mu.Unlock()

	m.cfg.ApplyWindowMode(mode)
	m.debugf("show %s (%s)", kind, mode)

	// Phase 1: build the tree off the visible-attach path. Phase 2 is
	// enqueued only after phase 1 has completed.
	m.loop.Submit(func() {
		if !m.current(gen) {
			return
		}
		snap := m.cfg.Snapshot()
		m.build(inst, snap)
		m.transition(gen, types.StateViewReady)

		m.loop.Submit(func() {
			if !m.current(gen) {
				return
			}
			m.attach(inst, snap, gen, onComplete)
		})
	})

	return nil
}

// Hide dismisses the overlay after an optional delay. It is valid from any
// state except Hidden. The delay runs on a timer that resubmits to the UI
// loop; the fade-out then runs over the configured duration, except for a
// fullscreen presentation with a blurred backdrop, which is removed
// instantly. onComplete runs on the loop once the state is back to Hidden.
func (m *Manager) Hide(delay time.Duration, onComplete func()) error {
	m.mu.Lock()
	if m.state == types.StateHidden {
		m.mu.Unlock()
		return &types.InvalidStateError{Op: "hide", State: types.StateHidden}
	}
	issued := m.gen
	m.mu.Unlock()

	m.loop.SubmitAfter(delay, func() {
		m.beginHide(issued, onComplete)
	})
	return nil
}

// beginHide runs on the UI loop when the hide delay fires.
func (m *Manager) beginHide(issued uint64, onComplete func()) {
	m.mu.Lock()
	// A newer Show or Hide command supersedes this one.
	if m.gen != issued || m.state == types.StateHidden || m.inst == nil {
		m.mu.Unlock()
		return
	}
	m.gen++
	gen := m.gen
	m.state = types.StateHiding
	inst := m.inst
	m.mu.Unlock()

	m.debugf("hide %s", inst.kind)

	instant := inst.mode == types.Fullscreen && inst.blurred
	from := 1.0
	if inst.surface != nil {
		from = inst.surface.Opacity()
	}

	m.anim.fadeOut(
		m.cfg.AnimationDuration(),
		from,
		instant,
		m.applyOpacity(inst, gen),
		func() {
			m.loop.Submit(func() {
				if !m.current(gen) {
					return
				}
				m.teardown(inst, gen, onComplete)
			})
		},
	)
}

// teardown detaches and releases the instance, completing the transition
// back to Hidden.
func (m *Manager) teardown(inst *instance, gen uint64, onComplete func()) {
	if inst.surface != nil {
		m.hst.Container().Detach(inst.surface)
	}

	m.mu.Lock()
	if m.gen == gen {
		m.inst = nil
		m.state = types.StateHidden
	}
	m.mu.Unlock()

	m.debugf("hidden")
	if onComplete != nil {
		onComplete()
	}
}

// UpdateMessage replaces the message text of a loaded message-style
// overlay. Outside the Loaded state the update is dropped as a documented
// no-op (not queued). A kind without a message label returns a
// WrongKindError.
func (m *Manager) UpdateMessage(text string) error {
	m.mu.Lock()
	if m.state != types.StateLoaded || m.inst == nil {
		m.mu.Unlock()
		return nil
	}
	if !m.inst.kind.HasMessage() {
		err := &types.WrongKindError{Op: "update message", Kind: m.inst.kind}
		m.mu.Unlock()
		return err
	}
	inst := m.inst
	gen := m.gen
	m.mu.Unlock()

	m.loop.Submit(func() {
		if !m.current(gen) {
			return
		}
		applyText(inst.elements, text)
		inst.reflow()
	})
	return nil
}

// UpdateProgress replaces the message text and progress value of a loaded
// progress overlay. The value is clamped to [0,1]. Outside the Loaded
// state the update is dropped as a no-op; a non-progress kind returns a
// WrongKindError.
func (m *Manager) UpdateProgress(message string, value float64) error {
	m.mu.Lock()
	if m.state != types.StateLoaded || m.inst == nil {
		m.mu.Unlock()
		return nil
	}
	if m.inst.kind != types.KindProgress {
		err := &types.WrongKindError{Op: "update progress", Kind: m.inst.kind}
		m.mu.Unlock()
		return err
	}
	inst := m.inst
	gen := m.gen
	m.mu.Unlock()

	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}

	m.loop.Submit(func() {
		if !m.current(gen) {
			return
		}
		applyText(inst.elements, message)
		applyProgress(inst.elements, value)
		inst.reflow()
	})
	return nil
}

// ResetToDefaults restores every configuration field to its default. Valid
// in any state; it never touches the live instance.
func (m *Manager) ResetToDefaults() {
	m.cfg.Reset()
}

// build is phase 1: construct the element tree and compute initial layout,
// independent of the visible surface. Runs on the UI loop.
func (m *Manager) build(inst *instance, snap config.Snapshot) {
	kinds := ElementKinds(inst.kind, inst.mode)
	els := make([]element.Element, 0, len(kinds))
	for _, k := range kinds {
		el := m.hst.NewElement(k)
		if k == element.MessageLabel {
			if st, ok := el.(element.SettableText); ok {
				st.SetText(snap.MessageText)
			}
			if ss, ok := el.(element.Styleable); ok {
				ss.SetStyle(snap.MessageFont)
			}
		}
		if tp, ok := el.(element.Tappable); ok {
			tp.SetOnTap(snap.CancelCallback)
		}
		els = append(els, el)
	}

	surface := m.hst.NewSurface()
	surface.SetColors(snap.BackgroundColor, snap.TextColor)
	surface.SetCornerRadius(snap.CornerRadius)
	surface.SetBlurred(snap.BlurredBackground)
	surface.SetOpacity(0)

	bw, bh := m.hst.Container().Bounds()
	frame := OverlayFrame(inst.mode, snap.WindowRatio, bw, bh)
	surface.SetFrame(frame)

	contentH := LayoutElements(els, frame, snap.ItemSpacing)
	surface.SetContentHeight(contentH)
	surface.SetElements(els)

	inst.elements = els
	inst.surface = surface
	inst.frame = frame
	inst.spacing = snap.ItemSpacing
	inst.blurred = snap.BlurredBackground

	m.debugf("built %d elements, frame %.0fx%.0f", len(els), frame.Width, frame.Height)
}

// attach is phase 2: insert the surface into the container, apply layout
// constraints against fresh bounds, and fade in. Runs on the UI loop.
func (m *Manager) attach(inst *instance, snap config.Snapshot, gen uint64, onComplete func()) {
	m.hst.Container().Attach(inst.surface)

	// Bounds may have changed between build and attach.
	bw, bh := m.hst.Container().Bounds()
	inst.frame = OverlayFrame(inst.mode, snap.WindowRatio, bw, bh)
	inst.surface.SetFrame(inst.frame)
	inst.reflow()

	m.anim.fadeIn(
		snap.AnimationDuration,
		m.applyOpacity(inst, gen),
		func() {
			m.loop.Submit(func() {
				if !m.current(gen) {
					return
				}
				m.transition(gen, types.StateLoaded)
				if onComplete != nil {
					onComplete()
				}
			})
		},
	)
}

// applyOpacity returns an animation step callback that marshals onto the
// UI loop and drops itself once the generation has moved on.
func (m *Manager) applyOpacity(inst *instance, gen uint64) func(float64) {
	return func(v float64) {
		m.loop.Submit(func() {
			if !m.current(gen) {
				return
			}
			if inst.surface != nil {
				inst.surface.SetOpacity(v)
			}
		})
	}
}

// current reports whether the generation is still the live command.
func (m *Manager) current(gen uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gen == gen
}

// transition moves to the next state if the generation is still live.
func (m *Manager) transition(gen uint64, next types.PresentationState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gen != gen {
		return
	}
	m.state = next
}

func (m *Manager) debugf(format string, v ...interface{}) {
	if m.log != nil {
		m.log.Debugf(format, v...)
	}
}
