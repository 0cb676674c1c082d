// config.go

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

// SetSpeed sets cruising speed to cmPerSec (cm/s), must be in [10,100].
func (d *Drone) SetSpeed(cmPerSec int) error {
	if err := validateRange("speed", cmPerSec, 10, 100); err != nil {
		return err
	}
	return d.sendControlCommand(fmt.Sprintf("speed %d", cmPerSec), d.responseTimeout)
}

// VideoBitrate selects the Tello's video bitrate setting.
type VideoBitrate int

// Video bitrate settings, in Mbps (Auto lets the drone pick).
const (
	BitrateAuto VideoBitrate = iota
	Bitrate1M
	Bitrate1M5
	Bitrate2M
	Bitrate3M
	Bitrate4M
)

// SetVideoBitrate sets the video encoder bitrate.
func (d *Drone) SetVideoBitrate(br VideoBitrate) error {
	if err := validateRange("setbitrate", int(br), 0, 5); err != nil {
		return err
	}
	return d.sendControlCommand(fmt.Sprintf("setbitrate %d", br), d.responseTimeout)
}

// VideoResolution selects the Tello's video resolution setting.
type VideoResolution string

// Video resolution settings.
const (
	ResolutionLow  VideoResolution = "low"
	ResolutionHigh VideoResolution = "high"
)

// SetVideoResolution sets the video resolution.
func (d *Drone) SetVideoResolution(res VideoResolution) error {
	return d.sendControlCommand("setresolution "+string(res), d.responseTimeout)
}

// VideoFPS selects the Tello's video frame rate setting.
type VideoFPS string

// Video frame rate settings.
const (
	FPSLow    VideoFPS = "low"
	FPSMiddle VideoFPS = "middle"
	FPSHigh   VideoFPS = "high"
)

// SetVideoFPS sets the video frame rate.
func (d *Drone) SetVideoFPS(fps VideoFPS) error {
	return d.sendControlCommand("setfps "+string(fps), d.responseTimeout)
}

// SetVideoDirection sets which camera vision is used: 0 downward, 1 forward.
func (d *Drone) SetVideoDirection(downward bool) error {
	v := 0
	if !downward {
		v = 1
	}
	return d.sendControlCommand(fmt.Sprintf("downvision %d", v), d.responseTimeout)
}

// SetWifiCredentials sets the Tello's own access-point SSID and password.
// The drone reboots immediately afterwards, so no reply is awaited.
func (d *Drone) SetWifiCredentials(ssid, password string) error {
	return d.sendWithoutReply(fmt.Sprintf("wifi %s %s", ssid, password))
}

// ConnectToWifi joins the given Wi-Fi network (Tello EDU only). The drone
// reboots immediately afterwards, so no reply is awaited.
func (d *Drone) ConnectToWifi(ssid, password string) error {
	return d.sendWithoutReply(fmt.Sprintf("ap %s %s", ssid, password))
}

// SetNetworkPorts reconfigures the state and video UDP ports the drone
// sends to.
func (d *Drone) SetNetworkPorts(statePort, videoPort int) error {
	return d.sendControlCommand(fmt.Sprintf("port %d %d", statePort, videoPort), d.responseTimeout)
}

// Reboot power-cycles the drone. No reply is expected.
func (d *Drone) Reboot() error {
	return d.sendWithoutReply("reboot")
}

// SendKeepalive inhibits the drone's 15-second idle auto-land.
func (d *Drone) SendKeepalive() error {
	return d.sendControlCommand("keepalive", d.responseTimeout)
}

// TurnMotorOn spins the motors up without flying - used to cool the
// motors or clear debris.
func (d *Drone) TurnMotorOn() error {
	return d.sendControlCommand("motoron", d.responseTimeout)
}

// TurnMotorOff stops the motors started by TurnMotorOn.
func (d *Drone) TurnMotorOff() error {
	return d.sendControlCommand("motoroff", d.responseTimeout)
}

// SendExpansionCommand passes payload through to an attached expansion
// board via "EXT <payload>".
func (d *Drone) SendExpansionCommand(payload string) error {
	return d.sendControlCommand("EXT "+payload, d.responseTimeout)
}
