// errors.go

// Copyright (C) 2018  Steve Merrony

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package tello

import "fmt"

// Kind classifies the errors this package can return.
type Kind int

const (
	// TransportInit means a socket could not be bound, or no state packet
	// arrived after connect().
	TransportInit Kind = iota
	// CommandFailed means a control command exhausted its retries without
	// an "ok", or a read command's reply contained an error marker.
	CommandFailed
	// InvalidArgument means a parameter fell outside its documented range.
	InvalidArgument
	// VideoInit means the video worker could not be built when streaming
	// was started (e.g. its UDP port could not be bound). It is not
	// returned on a frame-grab timeout or for decoder errors.
	VideoInit
	// StateUnavailable means a get_<field> was called for a key absent
	// from the last telemetry snapshot.
	StateUnavailable
	// ConfigError means an empty swarm IP list, or an unreadable IP file.
	ConfigError
	// SyncTimeout means sync(timeout) did not rendezvous in time.
	SyncTimeout
)

func (k Kind) String() string {
	switch k {
	case TransportInit:
		return "TransportInit"
	case CommandFailed:
		return "CommandFailed"
	case InvalidArgument:
		return "InvalidArgument"
	case VideoInit:
		return "VideoInit"
	case StateUnavailable:
		return "StateUnavailable"
	case ConfigError:
		return "ConfigError"
	case SyncTimeout:
		return "SyncTimeout"
	default:
		return "Unknown"
	}
}

// Error is the error type returned across this package's public API.
// Callers can distinguish cases with errors.As and inspecting Kind.
type Error struct {
	Kind    Kind
	Op      string // operation or command that failed, eg. "takeoff"
	Detail  string // extra context, eg. the drone's raw response
	Tries   int    // number of attempts made, when relevant
	Wrapped error  // underlying error, if any
}

func (e *Error) Error() string {
	switch {
	case e.Wrapped != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Wrapped)
	case e.Detail != "":
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Op, e.Detail)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	}
}

func (e *Error) Unwrap() error { return e.Wrapped }

func newError(kind Kind, op, detail string) *Error {
	return &Error{Kind: kind, Op: op, Detail: detail}
}

func wrapError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Wrapped: err}
}
