// Package swarm coordinates a fleet of drones sharing the client's single
// UDP control port, fanning a function out to every drone in parallel and
// rendezvousing the results.
package swarm

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/SMerrony/tello"
)

// Member pairs a drone with its index in the swarm, the arguments most
// broadcast functions need to distinguish one drone's work from another's.
type Member struct {
	Index int
	Drone *tello.Drone
}

// Func is a unit of work dispatched to every member of a Swarm by Parallel.
type Func func(m Member) error

// Swarm is a fixed set of drones driven by a fixed pool of worker
// goroutines, one per drone, so that Parallel can fan a Func out without
// paying goroutine-spawn cost on every call.
type Swarm struct {
	members []Member
	queues  []chan Func
	results []chan error

	sync     *cyclicBarrier
	dispatch *cyclicBarrier
}

// New builds a Swarm around the given drones and starts one worker
// goroutine per drone. The workers run for the lifetime of the process;
// there is no explicit shutdown because a Drone's own End is the natural
// teardown point.
func New(drones []*tello.Drone) *Swarm {
	s := &Swarm{
		members:  make([]Member, len(drones)),
		queues:   make([]chan Func, len(drones)),
		results:  make([]chan error, len(drones)),
		sync:     newCyclicBarrier(len(drones)),
		dispatch: newCyclicBarrier(len(drones) + 1),
	}
	for i, d := range drones {
		s.members[i] = Member{Index: i, Drone: d}
		s.queues[i] = make(chan Func)
		s.results[i] = make(chan error, 1)
		go s.worker(i)
	}
	return s
}

// FromIPs builds a Swarm from a list of drone IPv4 addresses, constructing
// a Drone for each one in turn; it does not call Connect on them. An empty
// list is a configuration error.
func FromIPs(ips []string, opts ...tello.DroneOption) (*Swarm, error) {
	if len(ips) == 0 {
		return nil, &tello.Error{Kind: tello.ConfigError, Op: "swarm.FromIPs", Detail: "no ips provided"}
	}
	drones := make([]*tello.Drone, 0, len(ips))
	for _, ip := range ips {
		d, err := tello.NewDrone(strings.TrimSpace(ip), opts...)
		if err != nil {
			return nil, err
		}
		drones = append(drones, d)
	}
	return New(drones), nil
}

// FromFile builds a Swarm from a file of one IPv4 address per line.
func FromFile(path string, opts ...tello.DroneOption) (*Swarm, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &tello.Error{Kind: tello.ConfigError, Op: "swarm.FromFile", Wrapped: err}
	}
	var ips []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			ips = append(ips, line)
		}
	}
	return FromIPs(ips, opts...)
}

func (s *Swarm) worker(i int) {
	for fn := range s.queues[i] {
		s.dispatch.wait()
		s.results[i] <- s.invoke(i, fn)
		s.dispatch.wait()
	}
}

// invoke runs fn and recovers a panic into a logged, non-propagating
// error - a worker's panic must never take down its siblings or the
// caller of Parallel.
func (s *Swarm) invoke(i int, fn Func) (err error) {
	defer func() {
		if r := recover(); r != nil {
			Log.Error().Int("member", i).Interface("panic", r).Msg("swarm worker recovered from panic")
			err = fmt.Errorf("swarm: member %d panicked: %v", i, r)
		}
	}()
	return fn(s.members[i])
}

// Parallel runs fn against every member concurrently and returns once every
// member has finished, collecting each member's error by index (nil where
// fn succeeded).
func (s *Swarm) Parallel(fn Func) []error {
	for _, q := range s.queues {
		q <- fn
	}
	s.dispatch.wait()
	s.dispatch.wait()

	errs := make([]error, len(s.members))
	for i, r := range s.results {
		errs[i] = <-r
	}
	return errs
}

// Sequential runs fn against every member one at a time, in index order,
// on the calling goroutine.
func (s *Swarm) Sequential(fn Func) []error {
	errs := make([]error, len(s.members))
	for i, m := range s.members {
		errs[i] = fn(m)
	}
	return errs
}

// Sync is a rendezvous point for the swarm's own worker goroutines: call it
// from inside a Func passed to Parallel to make every drone wait for its
// slowest sibling before proceeding. It returns this call's arrival index
// within the rendezvous, or a SyncTimeout error if timeout elapses first.
// A zero or negative timeout waits indefinitely.
func (s *Swarm) Sync(timeout time.Duration) (int, error) {
	if timeout <= 0 {
		return s.sync.wait(), nil
	}
	idx, ok := s.sync.waitTimeout(timeout)
	if !ok {
		return idx, &tello.Error{Kind: tello.SyncTimeout, Op: "swarm.Sync", Detail: timeout.String()}
	}
	return idx, nil
}

// Len returns the number of drones in the swarm.
func (s *Swarm) Len() int { return len(s.members) }

// Members returns the swarm's drones in index order.
func (s *Swarm) Members() []Member { return append([]Member(nil), s.members...) }
