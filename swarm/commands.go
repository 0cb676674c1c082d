// commands.go
//
// Thin broadcast wrappers over the common single-drone operations, one per
// method, each just a Parallel call. Go has no equivalent to Python's
// __getattr__ dynamic dispatch, so rather than reflect on *tello.Drone's
// method set at runtime, the common operations get an explicit wrapper
// here - slightly more typing, fully type-checked at compile time.

package swarm

// TakeOff sends takeoff to every member and waits for them all.
func (s *Swarm) TakeOff() []error {
	return s.Parallel(func(m Member) error { return m.Drone.TakeOff() })
}

// Land sends land to every member and waits for them all.
func (s *Swarm) Land() []error {
	return s.Parallel(func(m Member) error { return m.Drone.Land() })
}

// Emergency cuts all motors on every member immediately.
func (s *Swarm) Emergency() []error {
	return s.Parallel(func(m Member) error { return m.Drone.Emergency() })
}

// Stop halts all current motion on every member in place.
func (s *Swarm) Stop() []error {
	return s.Parallel(func(m Member) error { return m.Drone.Stop() })
}

// MoveUp flies every member cm centimetres up.
func (s *Swarm) MoveUp(cm int) []error {
	return s.Parallel(func(m Member) error { return m.Drone.MoveUp(cm) })
}

// MoveDown flies every member cm centimetres down.
func (s *Swarm) MoveDown(cm int) []error {
	return s.Parallel(func(m Member) error { return m.Drone.MoveDown(cm) })
}

// MoveLeft flies every member cm centimetres left.
func (s *Swarm) MoveLeft(cm int) []error {
	return s.Parallel(func(m Member) error { return m.Drone.MoveLeft(cm) })
}

// MoveRight flies every member cm centimetres right.
func (s *Swarm) MoveRight(cm int) []error {
	return s.Parallel(func(m Member) error { return m.Drone.MoveRight(cm) })
}

// MoveForward flies every member cm centimetres forward.
func (s *Swarm) MoveForward(cm int) []error {
	return s.Parallel(func(m Member) error { return m.Drone.MoveForward(cm) })
}

// MoveBack flies every member cm centimetres back.
func (s *Swarm) MoveBack(cm int) []error {
	return s.Parallel(func(m Member) error { return m.Drone.MoveBack(cm) })
}

// RotateClockwise rotates every member deg degrees clockwise.
func (s *Swarm) RotateClockwise(deg int) []error {
	return s.Parallel(func(m Member) error { return m.Drone.RotateClockwise(deg) })
}

// RotateCounterClockwise rotates every member deg degrees counter-clockwise.
func (s *Swarm) RotateCounterClockwise(deg int) []error {
	return s.Parallel(func(m Member) error { return m.Drone.RotateCounterClockwise(deg) })
}

// SetSpeed sets cruising speed on every member.
func (s *Swarm) SetSpeed(cmPerSec int) []error {
	return s.Parallel(func(m Member) error { return m.Drone.SetSpeed(cmPerSec) })
}

// EnableMissionPads turns on mission pad detection on every member.
func (s *Swarm) EnableMissionPads() []error {
	return s.Parallel(func(m Member) error { return m.Drone.EnableMissionPads() })
}

// DisableMissionPads turns off mission pad detection on every member.
func (s *Swarm) DisableMissionPads() []error {
	return s.Parallel(func(m Member) error { return m.Drone.DisableMissionPads() })
}
