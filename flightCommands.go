// flightCommands.go

// This file contains Tello flight command API except for stick control.

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

// TakeOff sends a normal takeoff request to the Tello and waits up to
// takeoffTimeout for acknowledgement.
func (d *Drone) TakeOff() error {
	if err := d.sendControlCommand("takeoff", d.takeoffTimeout); err != nil {
		return err
	}
	d.mu.Lock()
	d.isFlying = true
	d.mu.Unlock()
	return nil
}

// InitiateThrowTakeoff starts a 'throw and go' launch.
func (d *Drone) InitiateThrowTakeoff() error {
	if err := d.sendControlCommand("throwfly", d.takeoffTimeout); err != nil {
		return err
	}
	d.mu.Lock()
	d.isFlying = true
	d.mu.Unlock()
	return nil
}

// Land sends a normal land request to the Tello.
func (d *Drone) Land() error {
	if err := d.sendControlCommand("land", d.responseTimeout); err != nil {
		return err
	}
	d.mu.Lock()
	d.isFlying = false
	d.mu.Unlock()
	return nil
}

// Emergency stops all motors immediately. No reply is expected.
func (d *Drone) Emergency() error {
	return d.sendWithoutReply("emergency")
}

// Stop halts all current motion in place.
func (d *Drone) Stop() error {
	return d.sendControlCommand("stop", d.responseTimeout)
}

func validateRange(op string, v, lo, hi int) error {
	if v < lo || v > hi {
		return newError(InvalidArgument, op, fmt.Sprintf("%d outside documented range [%d,%d]", v, lo, hi))
	}
	return nil
}

func (d *Drone) move(direction string, cm int) error {
	if err := validateRange(direction, cm, 20, 500); err != nil {
		return err
	}
	return d.sendControlCommand(fmt.Sprintf("%s %d", direction, cm), d.responseTimeout)
}

// MoveUp flies cm centimetres up. cm must be in [20,500].
func (d *Drone) MoveUp(cm int) error { return d.move("up", cm) }

// MoveDown flies cm centimetres down. cm must be in [20,500].
func (d *Drone) MoveDown(cm int) error { return d.move("down", cm) }

// MoveLeft flies cm centimetres left. cm must be in [20,500].
func (d *Drone) MoveLeft(cm int) error { return d.move("left", cm) }

// MoveRight flies cm centimetres right. cm must be in [20,500].
func (d *Drone) MoveRight(cm int) error { return d.move("right", cm) }

// MoveForward flies cm centimetres forward. cm must be in [20,500].
func (d *Drone) MoveForward(cm int) error { return d.move("forward", cm) }

// MoveBack flies cm centimetres back. cm must be in [20,500].
func (d *Drone) MoveBack(cm int) error { return d.move("back", cm) }

func (d *Drone) rotate(direction string, deg int) error {
	if err := validateRange(direction, deg, 1, 3600); err != nil {
		return err
	}
	return d.sendControlCommand(fmt.Sprintf("%s %d", direction, deg), d.responseTimeout)
}

// RotateClockwise rotates deg degrees clockwise. deg must be in [1,3600].
func (d *Drone) RotateClockwise(deg int) error { return d.rotate("cw", deg) }

// RotateCounterClockwise rotates deg degrees counter-clockwise. deg must
// be in [1,3600].
func (d *Drone) RotateCounterClockwise(deg int) error { return d.rotate("ccw", deg) }

// FlipDirection is the four-way flip direction vocabulary.
type FlipDirection string

// Flip directions accepted by Flip.
const (
	FlipLeft     FlipDirection = "l"
	FlipRight    FlipDirection = "r"
	FlipForward  FlipDirection = "f"
	FlipBackward FlipDirection = "b"
)

// Flip performs a flip maneuver in the given direction.
func (d *Drone) Flip(dir FlipDirection) error {
	return d.sendControlCommand("flip "+string(dir), d.responseTimeout)
}

// FlipLeft flips to the left.
func (d *Drone) FlipLeft() error { return d.Flip(FlipLeft) }

// FlipRight flips to the right.
func (d *Drone) FlipRight() error { return d.Flip(FlipRight) }

// FlipForward flips forward.
func (d *Drone) FlipForward() error { return d.Flip(FlipForward) }

// FlipBack flips backward.
func (d *Drone) FlipBack() error { return d.Flip(FlipBackward) }

// GoXYZSpeed flies to x,y,z (cm, relative to the current position) at the
// given speed (cm/s).
func (d *Drone) GoXYZSpeed(x, y, z, speed int) error {
	return d.sendControlCommand(fmt.Sprintf("go %d %d %d %d", x, y, z, speed), d.responseTimeout)
}

// CurveXYZSpeed flies a curve through (x1,y1,z1) to (x2,y2,z2), both
// relative to the current position, at the given speed (cm/s). The
// current position and both points must form a valid arc; the drone
// itself rejects the command (as a CommandFailed) if the arc radius is
// out of its supported range.
func (d *Drone) CurveXYZSpeed(x1, y1, z1, x2, y2, z2, speed int) error {
	return d.sendControlCommand(
		fmt.Sprintf("curve %d %d %d %d %d %d %d", x1, y1, z1, x2, y2, z2, speed), d.responseTimeout)
}
