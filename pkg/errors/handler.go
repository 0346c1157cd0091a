package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

type handlerBox struct{ h ErrorHandler }

var current atomic.Pointer[handlerBox]

// Handler returns the handler that Report and Recover deliver to. Unless
// replaced with SetHandler it is a LogHandler on slog.Default().
func Handler() ErrorHandler {
	if b := current.Load(); b != nil {
		return b.h
	}
	return &LogHandler{}
}

// SetHandler installs h as the global handler and returns the previous one.
// Pass nil to restore the default LogHandler.
//
//	defer errors.SetHandler(errors.SetHandler(h))
func SetHandler(h ErrorHandler) ErrorHandler {
	prev := Handler()
	if h == nil {
		current.Store(nil)
	} else {
		current.Store(&handlerBox{h: h})
	}
	return prev
}

// Report sends err to the global handler and returns it, so callers can
// report and return in one statement. A zero Timestamp is set to now.
func Report(err *CarouselError) *CarouselError {
	if err == nil {
		return nil
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
	return err
}

// ReportPanic sends a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic in the deferring function instead of letting it
// unwind further. It must be called directly by defer:
//
//	defer errors.Recover("gestures.Router.Dispatch")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{
			Op:         op,
			Value:      r,
			StackTrace: CaptureStack(),
			Timestamp:  time.Now(),
		})
	}
}

// CaptureStack returns the calling goroutine's stack, one function and
// file:line pair per frame. Runtime frames, including the panic machinery
// when called during recovery, are omitted.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var sb strings.Builder
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !strings.HasPrefix(frame.Function, "runtime.") {
			sb.WriteString(frame.Function)
			sb.WriteString("\n\t")
			sb.WriteString(frame.File)
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(frame.Line))
			sb.WriteByte('\n')
		}
		if !more {
			break
		}
	}
	return sb.String()
}
