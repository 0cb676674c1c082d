// swarm_test.go

package swarm

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SMerrony/tello"
)

func TestBarrierReleasesAllParties(t *testing.T) {
	const n = 4
	b := newCyclicBarrier(n)
	done := make(chan int, n)
	for i := 0; i < n; i++ {
		go func() { done <- b.wait() }()
	}
	seen := map[int]bool{}
	deadline := time.After(2 * time.Second)
	for i := 0; i < n; i++ {
		select {
		case idx := <-done:
			if seen[idx] {
				t.Fatalf("arrival index %d reported twice", idx)
			}
			seen[idx] = true
		case <-deadline:
			t.Fatalf("barrier did not release all %d parties in time", n)
		}
	}
}

func TestBarrierWaitTimeout(t *testing.T) {
	b := newCyclicBarrier(2)
	_, ok := b.waitTimeout(50 * time.Millisecond)
	if ok {
		t.Fatalf("expected timeout with only 1 of 2 parties arrived")
	}
}

func TestBarrierCyclesCorrectly(t *testing.T) {
	b := newCyclicBarrier(2)
	done := make(chan struct{})
	go func() {
		b.wait()
		b.wait()
		close(done)
	}()
	b.wait()
	b.wait()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("barrier did not cycle through a second rendezvous")
	}
}

// newFakeSwarm builds a Swarm of n members whose Drone fields are never
// dereferenced - enough to exercise dispatch, without needing a live UDP
// fabric behind every member.
func newFakeSwarm(n int) *Swarm {
	drones := make([]*tello.Drone, n)
	return New(drones)
}

func TestParallelRunsEveryMemberAndWaitsForAll(t *testing.T) {
	s := newFakeSwarm(4)
	var started, finished int32

	errs := s.Parallel(func(m Member) error {
		atomic.AddInt32(&started, 1)
		time.Sleep(20 * time.Millisecond)
		atomic.AddInt32(&finished, 1)
		return nil
	})

	if len(errs) != 4 {
		t.Fatalf("want 4 results, got %d", len(errs))
	}
	for i, err := range errs {
		if err != nil {
			t.Fatalf("member %d: unexpected error %v", i, err)
		}
	}
	if atomic.LoadInt32(&finished) != 4 {
		t.Fatalf("Parallel returned before every member finished: finished=%d", finished)
	}
}

func TestParallelCollectsPerMemberErrors(t *testing.T) {
	s := newFakeSwarm(3)
	errs := s.Parallel(func(m Member) error {
		if m.Index == 1 {
			return fmt.Errorf("member %d failed", m.Index)
		}
		return nil
	})
	if errs[0] != nil || errs[2] != nil {
		t.Fatalf("members 0 and 2 should have succeeded, got %v", errs)
	}
	if errs[1] == nil {
		t.Fatalf("member 1 should have returned its error")
	}
}

func TestParallelRecoversPanicPerWorker(t *testing.T) {
	s := newFakeSwarm(2)
	errs := s.Parallel(func(m Member) error {
		if m.Index == 0 {
			panic("boom")
		}
		return nil
	})
	if errs[0] == nil {
		t.Fatalf("expected a recovered-panic error for member 0")
	}
	if errs[1] != nil {
		t.Fatalf("member 1 should be unaffected by member 0's panic, got %v", errs[1])
	}
}

func TestSequentialRunsInOrder(t *testing.T) {
	s := newFakeSwarm(3)
	var order []int
	s.Sequential(func(m Member) error {
		order = append(order, m.Index)
		return nil
	})
	for i, idx := range order {
		if idx != i {
			t.Fatalf("order = %v, want 0,1,2", order)
		}
	}
}

func TestSyncRendezvousesAllMembers(t *testing.T) {
	s := newFakeSwarm(3)
	var arrived int32
	errs := s.Parallel(func(m Member) error {
		atomic.AddInt32(&arrived, 1)
		_, err := s.Sync(time.Second)
		return err
	})
	for i, err := range errs {
		if err != nil {
			t.Fatalf("member %d: Sync failed: %v", i, err)
		}
	}
}

func TestSyncTimesOutWhenAMemberNeverArrives(t *testing.T) {
	s := newFakeSwarm(3)
	errs := s.Parallel(func(m Member) error {
		if m.Index == 2 {
			return nil // never calls Sync
		}
		_, err := s.Sync(100 * time.Millisecond)
		return err
	})
	if errs[0] == nil || errs[1] == nil {
		t.Fatalf("members 0 and 1 should have seen a SyncTimeout, got %v, %v", errs[0], errs[1])
	}
	var syncErr *tello.Error
	if e, ok := errs[0].(*tello.Error); ok {
		syncErr = e
	}
	if syncErr == nil || syncErr.Kind != tello.SyncTimeout {
		t.Fatalf("expected SyncTimeout kind, got %v", errs[0])
	}
}

func TestFromIPsRejectsEmptyList(t *testing.T) {
	_, err := FromIPs(nil)
	if err == nil {
		t.Fatalf("expected ConfigError for empty ip list")
	}
	cfgErr, ok := err.(*tello.Error)
	if !ok || cfgErr.Kind != tello.ConfigError {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}
