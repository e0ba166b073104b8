package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is. The typed errors below
// report themselves as these categories so callers can branch without
// unpacking the struct.
var (
	// ErrInvalidState is the category for operations issued from a state
	// that does not permit them
	ErrInvalidState = errors.New("invalid presentation state")
	// ErrWrongKind is the category for content updates issued against an
	// incompatible overlay kind
	ErrWrongKind = errors.New("wrong overlay kind")
)

// InvalidStateError reports an operation attempted from a presentation state
// that does not permit it. This is a programmer-usage error, not an
// environmental failure.
type InvalidStateError struct {
	Op    string
	State PresentationState
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: not valid while %s", e.Op, e.State)
}

// Is makes the error match ErrInvalidState under errors.Is.
func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

// WrongKindError reports a content update attempted against an overlay kind
// that has no matching element.
type WrongKindError struct {
	Op   string
	Kind OverlayKind
}

func (e *WrongKindError) Error() string {
	return fmt.Sprintf("%s: not supported by %s overlay", e.Op, e.Kind)
}

// Is makes the error match ErrWrongKind under errors.Is.
func (e *WrongKindError) Is(target error) bool {
	return target == ErrWrongKind
}
