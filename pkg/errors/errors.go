// Package errors provides structured error reporting for widgets and the
// animation scheduler.
//
// The widget core has no recoverable domain errors. Failures such as a
// missing render target or an event that is illegal in the current state are
// reported here and then skipped; nothing is returned to the caller.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindMissingTarget indicates a write to a node that is not mounted
	// yet or has already been removed.
	KindMissingTarget
	// KindIllegalTransition indicates an event the current state cannot accept.
	KindIllegalTransition
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindConfig indicates an invalid configuration or scenario file.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingTarget:
		return "missing-target"
	case KindIllegalTransition:
		return "illegal-transition"
	case KindPanic:
		return "panic"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

var (
	// ErrMissingTarget is wrapped by reports about absent render targets.
	ErrMissingTarget = stderrors.New("render target not found")
	// ErrIllegalTransition is wrapped by reports about ignored events.
	ErrIllegalTransition = stderrors.New("transition not allowed in current state")
)

// MotionError represents a structured error reported by a widget or the scheduler.
type MotionError struct {
	// Op is the operation that failed (e.g., "animation.Handle.tick").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Widget is the id of the widget instance involved, if any.
	Widget string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *MotionError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *MotionError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "reactive.Cell.notify").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// MissingTarget builds the report for a write that found no node.
func MissingTarget(op, widget, key string) *MotionError {
	return &MotionError{
		Op:     op,
		Kind:   KindMissingTarget,
		Err:    fmt.Errorf("%w: %q", ErrMissingTarget, key),
		Widget: widget,
	}
}

// IllegalTransition builds the report for an ignored event.
func IllegalTransition(op, widget, event, state string) *MotionError {
	return &MotionError{
		Op:     op,
		Kind:   KindIllegalTransition,
		Err:    fmt.Errorf("%w: %s in %s", ErrIllegalTransition, event, state),
		Widget: widget,
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }

// ErrorHandler receives errors reported by widgets and the scheduler.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *MotionError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
