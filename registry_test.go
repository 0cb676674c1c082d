// registry_test.go

package tello

import "testing"

func TestMailboxResponseFIFO(t *testing.T) {
	mb := newMailbox()
	mb.pushResponse([]byte("ok"))
	mb.pushResponse([]byte("90"))

	first, ok := mb.popResponse()
	if !ok || string(first) != "ok" {
		t.Fatalf("first pop = %q, %v; want \"ok\", true", first, ok)
	}
	second, ok := mb.popResponse()
	if !ok || string(second) != "90" {
		t.Fatalf("second pop = %q, %v; want \"90\", true", second, ok)
	}
	if _, ok := mb.popResponse(); ok {
		t.Fatalf("pop on empty mailbox should report false")
	}
}

func TestMailboxStateRoundTrip(t *testing.T) {
	mb := newMailbox()
	if got := mb.getState(); len(got) != 0 {
		t.Fatalf("new mailbox state should start empty, got %v", got)
	}

	sm := StateMap{"bat": 42}
	mb.setState(sm)
	if got := mb.getState(); got["bat"] != 42 {
		t.Fatalf("getState = %v, want bat=42", got)
	}
	if mb.lastUpdate().IsZero() {
		t.Fatalf("lastUpdate should be set after setState")
	}
}

func TestRegistryRegisterLookupRemove(t *testing.T) {
	r := newRegistry()

	if _, ok := r.lookup("10.0.0.1"); ok {
		t.Fatalf("lookup on empty registry should miss")
	}

	mb := r.register("10.0.0.1")
	got, ok := r.lookup("10.0.0.1")
	if !ok || got != mb {
		t.Fatalf("lookup after register should return the same mailbox")
	}

	r.remove("10.0.0.1")
	if _, ok := r.lookup("10.0.0.1"); ok {
		t.Fatalf("lookup after remove should miss")
	}
}

func TestRegistryIsolatesDrones(t *testing.T) {
	r := newRegistry()
	a := r.register("10.0.0.1")
	b := r.register("10.0.0.2")

	a.pushResponse([]byte("ok"))
	if _, ok := b.popResponse(); ok {
		t.Fatalf("drone b's mailbox should not see drone a's response")
	}
	if data, ok := a.popResponse(); !ok || string(data) != "ok" {
		t.Fatalf("drone a's own response should still be there")
	}
}
