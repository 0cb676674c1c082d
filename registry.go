// registry.go

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

import (
	"sync"
	"sync/atomic"
	"time"
)

// StateMap is a parsed telemetry snapshot, keyed by field name. Values are
// int, float64 or string depending on StateParser's field-type table;
// unknown keys are retained as strings.
type StateMap map[string]interface{}

// mailbox is the per-drone inbox maintained by the registry: a response
// FIFO fed by the shared control receiver and consumed only by the owning
// Drone's command loop, plus a last-writer-wins state snapshot fed by the
// shared state receiver and read by any number of callers.
//
// Only the response receiver appends to responses; only the owning Drone
// pops from it. Only the state receiver writes state; state is published
// by atomic pointer swap so readers never observe a torn snapshot.
type mailbox struct {
	mu        sync.Mutex
	responses [][]byte

	state      atomic.Value // holds StateMap
	receivedAt atomic.Value // holds time.Time
}

func newMailbox() *mailbox {
	mb := &mailbox{}
	mb.state.Store(StateMap{})
	mb.receivedAt.Store(time.Time{})
	return mb
}

func (mb *mailbox) pushResponse(data []byte) {
	mb.mu.Lock()
	mb.responses = append(mb.responses, data)
	mb.mu.Unlock()
}

// popResponse removes and returns the oldest queued response, if any.
func (mb *mailbox) popResponse() ([]byte, bool) {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	if len(mb.responses) == 0 {
		return nil, false
	}
	data := mb.responses[0]
	mb.responses = mb.responses[1:]
	return data, true
}

func (mb *mailbox) setState(s StateMap) {
	mb.state.Store(s)
	mb.receivedAt.Store(time.Now())
}

func (mb *mailbox) getState() StateMap {
	return mb.state.Load().(StateMap)
}

func (mb *mailbox) lastUpdate() time.Time {
	return mb.receivedAt.Load().(time.Time)
}

// registry is the process-wide map from drone IP to mailbox. Safe for
// concurrent reads (by the two fabric receivers and by every Drone's
// command loop) and rare writes (register/remove, driven by Drone
// construction and teardown). Receivers only ever look up an entry, never
// create one.
type registry struct {
	mu   sync.RWMutex
	byIP map[string]*mailbox
}

func newRegistry() *registry {
	return &registry{byIP: make(map[string]*mailbox)}
}

func (r *registry) register(ip string) *mailbox {
	r.mu.Lock()
	defer r.mu.Unlock()
	mb := newMailbox()
	r.byIP[ip] = mb
	return mb
}

func (r *registry) lookup(ip string) (*mailbox, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	mb, ok := r.byIP[ip]
	return mb, ok
}

func (r *registry) remove(ip string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byIP, ip)
}
