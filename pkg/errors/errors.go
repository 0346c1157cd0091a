// Package errors provides structured error reporting for the carousel and
// its frontends.
//
// Core navigation never fails; these types carry the failures of the outer
// layers (manifest loading, image probing, configuration, rendering) and
// panics recovered from input handlers to a single replaceable handler.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindManifest indicates an invalid or unreadable slide manifest.
	KindManifest
	// KindDecode indicates an image whose header could not be decoded.
	KindDecode
	// KindConfig indicates an invalid carousel.yaml.
	KindConfig
	// KindRender indicates a frontend drawing failure.
	KindRender
	// KindInput indicates a malformed input event.
	KindInput
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindManifest:
		return "manifest"
	case KindDecode:
		return "decode"
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindInput:
		return "input"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// CarouselError is a structured error with the operation and, where one
// applies, the file or slide source it concerns.
type CarouselError struct {
	// Op is the operation that failed (e.g., "manifest.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Source is the file path or slide URI involved, if any.
	Source string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *CarouselError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s [%s] source=%s: %v", e.Op, e.Kind, e.Source, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *CarouselError) Unwrap() error {
	return e.Err
}

// New builds a CarouselError.
func New(op string, kind ErrorKind, source string, err error) *CarouselError {
	return &CarouselError{Op: op, Kind: kind, Source: source, Err: err}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "gestures.Router.Dispatch").
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

// ErrorHandler receives reported errors.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *CarouselError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
