// missionpads.go

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

// EnableMissionPads turns on mission pad detection. Tello EDU only.
func (d *Drone) EnableMissionPads() error {
	return d.sendControlCommand("mon", d.responseTimeout)
}

// DisableMissionPads turns off mission pad detection.
func (d *Drone) DisableMissionPads() error {
	return d.sendControlCommand("moff", d.responseTimeout)
}

// MissionPadDirection selects which way the drone looks for pads.
type MissionPadDirection int

// Mission pad detection directions.
const (
	MissionPadDown MissionPadDirection = iota
	MissionPadForward
	MissionPadBoth
)

// SetMissionPadDetectionDirection sets which direction(s) the drone looks
// for mission pads. EnableMissionPads must be called first. Detecting
// both directions halves the detection frequency to 10Hz (vs 20Hz for a
// single direction).
func (d *Drone) SetMissionPadDetectionDirection(dir MissionPadDirection) error {
	if err := validateRange("mdirection", int(dir), 0, 2); err != nil {
		return err
	}
	return d.sendControlCommand(fmt.Sprintf("mdirection %d", dir), d.responseTimeout)
}

// GoXYZSpeedMid flies to x,y,z (cm, relative to mission pad mid) at the
// given speed (cm/s).
func (d *Drone) GoXYZSpeedMid(x, y, z, speed, mid int) error {
	return d.sendControlCommand(fmt.Sprintf("go %d %d %d %d m%d", x, y, z, speed, mid), d.responseTimeout)
}

// CurveXYZSpeedMid flies a curve through (x1,y1,z1) to (x2,y2,z2),
// relative to mission pad mid, at the given speed (cm/s).
func (d *Drone) CurveXYZSpeedMid(x1, y1, z1, x2, y2, z2, speed, mid int) error {
	return d.sendControlCommand(
		fmt.Sprintf("curve %d %d %d %d %d %d %d m%d", x1, y1, z1, x2, y2, z2, speed, mid), d.responseTimeout)
}

// GoXYZSpeedYawMid flies to x,y,z relative to mid1, then to 0,0,z over
// mid2 and rotates to yaw relative to mid2's own rotation.
func (d *Drone) GoXYZSpeedYawMid(x, y, z, speed, yaw, mid1, mid2 int) error {
	return d.sendControlCommand(
		fmt.Sprintf("jump %d %d %d %d %d m%d m%d", x, y, z, speed, yaw, mid1, mid2), d.responseTimeout)
}

// GetMissionPadID returns the id of the currently detected mission pad
// (-1 if none), or StateUnavailable if mission pads are not enabled.
func (d *Drone) GetMissionPadID() (int, error) { return d.stateInt("mid") }

// GetMissionPadDistanceX returns the X distance to the current mission pad, in cm.
func (d *Drone) GetMissionPadDistanceX() (int, error) { return d.stateInt("x") }

// GetMissionPadDistanceY returns the Y distance to the current mission pad, in cm.
func (d *Drone) GetMissionPadDistanceY() (int, error) { return d.stateInt("y") }

// GetMissionPadDistanceZ returns the Z distance to the current mission pad, in cm.
func (d *Drone) GetMissionPadDistanceZ() (int, error) { return d.stateInt("z") }
