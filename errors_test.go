// errors_test.go

package tello

import (
	"errors"
	"testing"
)

func TestErrorString(t *testing.T) {
	e := newError(InvalidArgument, "up", "600 outside documented range [20,500]")
	want := "InvalidArgument: up: 600 outside documented range [20,500]"
	if e.Error() != want {
		t.Fatalf("got %q, want %q", e.Error(), want)
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("bind: address already in use")
	e := wrapError(TransportInit, "bind control socket", inner)
	if !errors.Is(e, inner) {
		t.Fatalf("errors.Is did not see through Unwrap")
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		TransportInit:    "TransportInit",
		CommandFailed:    "CommandFailed",
		InvalidArgument:  "InvalidArgument",
		VideoInit:        "VideoInit",
		StateUnavailable: "StateUnavailable",
		ConfigError:      "ConfigError",
		SyncTimeout:      "SyncTimeout",
	}
	for k, want := range cases {
		if k.String() != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", k, k.String(), want)
		}
	}
}

func TestErrorAsCommandFailedCarriesTries(t *testing.T) {
	var target *Error
	err := error(&Error{Kind: CommandFailed, Op: "takeoff", Detail: "error Not joystick", Tries: 4})
	if !errors.As(err, &target) {
		t.Fatalf("errors.As failed to match *Error")
	}
	if target.Tries != 4 {
		t.Fatalf("Tries = %d, want 4", target.Tries)
	}
}
