// Package verrs implements the ordered map's error channel: a small,
// owned record of the most recent failure on a tree, map, or vector,
// carrying a status code plus the source location it was raised from.
//
// Unlike the process-global error_info the original project shared
// across c_vector, c_map, and the red-black tree, each Channel here is
// owned by a single collaborator (one per ordmap.Map, one per
// vector.Vector; the bst and rbtree trees own none and report through
// return values). This keeps the "callers may sample the most recent
// failure's location after a call fails" contract the source
// describes, without the hazards of genuinely global mutable state.
package verrs

import (
	"fmt"
	"runtime"
)

// Code identifies the kind of failure recorded on a Channel.
//
// The enumeration is shared by every component that records failures
// (ordmap, vector), mirroring the original project's single
// process-wide error_code enum.
type Code int

const (
	Success Code = iota
	ErrAllocationFailed
	ErrKeyNotFound
	ErrNilTree
	ErrNilKey
	ErrRebalanceFailed
	ErrInvalidIndex
)

// String returns the enum's identifier, e.g. "ErrKeyNotFound";
// Success renders as "success".
func (c Code) String() string {
	switch c {
	case Success:
		return "success"
	case ErrAllocationFailed:
		return "ErrAllocationFailed"
	case ErrKeyNotFound:
		return "ErrKeyNotFound"
	case ErrNilTree:
		return "ErrNilTree"
	case ErrNilKey:
		return "ErrNilKey"
	case ErrRebalanceFailed:
		return "ErrRebalanceFailed"
	case ErrInvalidIndex:
		return "ErrInvalidIndex"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// Failure is a single recorded error: a code plus the call site that
// raised it and an optional human-readable message.
type Failure struct {
	Code Code
	File string
	Func string
	Line int
	Msg  string
}

// Error implements the error interface.
func (f Failure) Error() string {
	if f.Msg == "" {
		return fmt.Sprintf("%s at %s:%d (%s)", f.Code, f.File, f.Line, f.Func)
	}
	return fmt.Sprintf("%s at %s:%d (%s): %s", f.Code, f.File, f.Line, f.Func, f.Msg)
}

// Channel carries the most recent failure raised by its owner.
// Successful operations never clear it; only Clear and a subsequent
// Record do.
type Channel struct {
	last *Failure
}

// NewChannel returns an empty error channel.
func NewChannel() *Channel {
	return &Channel{}
}

// Record captures the caller's location, stores a Failure with the
// given code and message, and returns it as an error for the caller to
// propagate.
func (c *Channel) Record(code Code, msg string) error {
	pc, file, line, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	funcName := "unknown"
	if fn != nil {
		funcName = fn.Name()
	}
	f := Failure{
		Code: code,
		File: file,
		Func: funcName,
		Line: line,
		Msg:  msg,
	}
	c.last = &f
	return f
}

// Last returns the most recently recorded failure, if any.
func (c *Channel) Last() (Failure, bool) {
	if c.last == nil {
		return Failure{}, false
	}
	return *c.last, true
}

// Clear discards the most recently recorded failure.
func (c *Channel) Clear() {
	c.last = nil
}
