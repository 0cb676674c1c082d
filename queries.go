// queries.go

// This file contains the Tello "query" read-command API - commands that
// request a fresh value directly from the drone rather than reading the
// cached telemetry stream.

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
	"strconv"
	"strings"
)

// QuerySpeed asks the drone for its current cruising speed setting, in cm/s.
func (d *Drone) QuerySpeed() (float64, error) {
	return d.sendReadCommandFloat("speed?")
}

// QueryBattery asks the drone for its remaining battery percentage.
func (d *Drone) QueryBattery() (int, error) {
	return d.sendReadCommandInt("battery?")
}

// QueryFlightTime asks the drone for the current flight's elapsed time, in seconds.
func (d *Drone) QueryFlightTime() (int, error) {
	return d.sendReadCommandInt("time?")
}

// QueryHeight asks the drone for its current height above takeoff, in cm.
func (d *Drone) QueryHeight() (int, error) {
	return d.sendReadCommandInt("height?")
}

// QueryTemperature asks the drone for its average internal temperature, in Celsius.
func (d *Drone) QueryTemperature() (int, error) {
	return d.sendReadCommandInt("temp?")
}

// Attitude is the drone's current orientation, in degrees.
type Attitude struct {
	Pitch int
	Roll  int
	Yaw   int
}

// QueryAttitude asks the drone for its current pitch, roll and yaw.
func (d *Drone) QueryAttitude() (Attitude, error) {
	resp, err := d.sendReadCommand("attitude?")
	if err != nil {
		return Attitude{}, err
	}
	fields := parseState([]byte(resp))
	att := Attitude{}
	if v, ok := fields["pitch"].(int); ok {
		att.Pitch = v
	}
	if v, ok := fields["roll"].(int); ok {
		att.Roll = v
	}
	if v, ok := fields["yaw"].(int); ok {
		att.Yaw = v
	}
	return att, nil
}

// QueryBarometer asks the drone for its barometric height above sea level, in cm.
func (d *Drone) QueryBarometer() (float64, error) {
	m, err := d.sendReadCommandFloat("baro?")
	if err != nil {
		return 0, err
	}
	return m * 100, nil
}

// QueryDistanceTOF asks the drone for its time-of-flight distance to the
// ground, in cm. The drone replies with a "NNNmm" string; the trailing
// unit is stripped before the reply is divided down to centimetres.
func (d *Drone) QueryDistanceTOF() (float64, error) {
	resp, err := d.sendReadCommand("tof?")
	if err != nil {
		return 0, err
	}
	resp = strings.TrimSuffix(strings.TrimSpace(resp), "mm")
	mm, perr := strconv.ParseFloat(resp, 64)
	if perr != nil {
		return 0, wrapError(CommandFailed, "tof?", perr)
	}
	return mm / 10, nil
}

// QueryWifiSNR asks the drone for its Wi-Fi signal-to-noise ratio.
func (d *Drone) QueryWifiSNR() (string, error) {
	return d.sendReadCommand("wifi?")
}

// QuerySDKVersion asks the drone for its onboard SDK version.
func (d *Drone) QuerySDKVersion() (string, error) {
	return d.sendReadCommand("sdk?")
}

// QuerySerialNumber asks the drone for its serial number.
func (d *Drone) QuerySerialNumber() (string, error) {
	return d.sendReadCommand("sn?")
}

// QueryActive asks the drone's expansion board whether it is active.
func (d *Drone) QueryActive() (string, error) {
	return d.sendReadCommand("active?")
}
