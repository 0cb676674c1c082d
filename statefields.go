// statefields.go

// This file contains the cached-telemetry getters - thin wrappers over the
// last-received state snapshot, as opposed to the query_*.go commands which
// round-trip to the drone for a fresh value.

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

// GetPitch returns the cached pitch attitude, in degrees.
func (d *Drone) GetPitch() (int, error) { return d.stateInt("pitch") }

// GetRoll returns the cached roll attitude, in degrees.
func (d *Drone) GetRoll() (int, error) { return d.stateInt("roll") }

// GetYaw returns the cached yaw attitude, in degrees.
func (d *Drone) GetYaw() (int, error) { return d.stateInt("yaw") }

// GetSpeedX returns the cached X speed, in cm/s.
func (d *Drone) GetSpeedX() (int, error) { return d.stateInt("vgx") }

// GetSpeedY returns the cached Y speed, in cm/s.
func (d *Drone) GetSpeedY() (int, error) { return d.stateInt("vgy") }

// GetSpeedZ returns the cached Z speed, in cm/s.
func (d *Drone) GetSpeedZ() (int, error) { return d.stateInt("vgz") }

// GetAccelerationX returns the cached X acceleration, in 0.001g.
func (d *Drone) GetAccelerationX() (float64, error) { return d.stateFloat("agx") }

// GetAccelerationY returns the cached Y acceleration, in 0.001g.
func (d *Drone) GetAccelerationY() (float64, error) { return d.stateFloat("agy") }

// GetAccelerationZ returns the cached Z acceleration, in 0.001g.
func (d *Drone) GetAccelerationZ() (float64, error) { return d.stateFloat("agz") }

// GetLowestTemperature returns the cached lowest internal temperature, in Celsius.
func (d *Drone) GetLowestTemperature() (int, error) { return d.stateInt("templ") }

// GetHighestTemperature returns the cached highest internal temperature, in Celsius.
func (d *Drone) GetHighestTemperature() (int, error) { return d.stateInt("temph") }

// GetTemperature returns the average of the cached low/high internal
// temperatures, in Celsius.
func (d *Drone) GetTemperature() (float64, error) {
	lo, err := d.stateInt("templ")
	if err != nil {
		return 0, err
	}
	hi, err := d.stateInt("temph")
	if err != nil {
		return 0, err
	}
	return float64(lo+hi) / 2, nil
}

// GetHeight returns the cached height above takeoff, in cm.
func (d *Drone) GetHeight() (int, error) { return d.stateInt("h") }

// GetDistanceTOF returns the cached time-of-flight distance to the ground, in cm.
func (d *Drone) GetDistanceTOF() (int, error) { return d.stateInt("tof") }

// GetBarometer returns the cached barometric height above sea level, in cm.
func (d *Drone) GetBarometer() (float64, error) {
	m, err := d.stateFloat("baro")
	if err != nil {
		return 0, err
	}
	return m * 100, nil
}

// GetFlightTime returns the cached elapsed flight time, in seconds.
func (d *Drone) GetFlightTime() (int, error) { return d.stateInt("time") }

// GetBattery returns the cached remaining battery percentage.
func (d *Drone) GetBattery() (int, error) { return d.stateInt("bat") }
