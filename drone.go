// drone.go

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

// Package tello provides an unofficial, easy-to-use client for the Ryze/DJI
// Tello drone's text-based UDP command protocol (Tello SDK 2.0/3.0).
package tello

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	defaultRetryCount      = 3
	defaultResponseTimeout = 7 * time.Second
	defaultTakeoffTimeout  = 20 * time.Second
	defaultFrameGrabTimeout = 5 * time.Second
	minInterCommand        = 100 * time.Millisecond
	minInterRc             = time.Millisecond
	pollInterval           = 100 * time.Millisecond
	connectPollInterval    = 50 * time.Millisecond
	connectWait            = time.Second
)

// videoStreamer is the seam the video package's *video.Worker satisfies;
// declared here so that StreamOn and End work against this interface
// rather than the concrete worker type - a Drone only holds one while
// streaming is active.
type videoStreamer interface {
	Stop()
}

// Drone is a single physical Tello drone: one DroneAddress's worth of
// command state machine, timing gates, and cached telemetry.
//
// One in-flight command per Drone; concurrent calls from multiple
// goroutines against the same Drone are undefined - serialize your own
// calls. The response mailbox is a FIFO, so two racing goroutines will
// each simply claim whichever response arrives next.
type Drone struct {
	ip string
	id uuid.UUID

	fab *fabric
	mb  *mailbox

	retryCount      int
	responseTimeout time.Duration
	takeoffTimeout  time.Duration
	frameGrabTimeout time.Duration
	videoPort       int

	commandGate *rate.Limiter
	rcGate      *rate.Limiter

	mu        sync.Mutex
	isFlying  bool
	streamOn  bool
	video     videoStreamer
	ended     bool
}

// DroneOption customizes Drone construction.
type DroneOption func(*Drone)

// WithRetryCount overrides the default control-command retry count (3).
func WithRetryCount(n int) DroneOption {
	return func(d *Drone) { d.retryCount = n }
}

// WithResponseTimeout overrides the default command response timeout (7s).
func WithResponseTimeout(t time.Duration) DroneOption {
	return func(d *Drone) { d.responseTimeout = t }
}

// WithTakeoffTimeout overrides the default takeoff timeout (20s).
func WithTakeoffTimeout(t time.Duration) DroneOption {
	return func(d *Drone) { d.takeoffTimeout = t }
}

// WithVideoPort overrides the default local video port (11111).
func WithVideoPort(port int) DroneOption {
	return func(d *Drone) { d.videoPort = port }
}

// NewDrone constructs a Drone for the given IPv4 address, lazily starting
// the shared fabric (control + state sockets and their receiver
// goroutines) on first use and registering a mailbox for this drone.
func NewDrone(ip string, opts ...DroneOption) (*Drone, error) {
	fab, err := getFabric()
	if err != nil {
		return nil, err
	}

	d := &Drone{
		ip:               ip,
		id:               uuid.New(),
		fab:              fab,
		retryCount:       defaultRetryCount,
		responseTimeout:  defaultResponseTimeout,
		takeoffTimeout:   defaultTakeoffTimeout,
		frameGrabTimeout: defaultFrameGrabTimeout,
		videoPort:        defaultVideoPort,
		commandGate:      rate.NewLimiter(rate.Every(minInterCommand), 1),
		rcGate:           rate.NewLimiter(rate.Every(minInterRc), 1),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.mb = fab.registry.register(ip)
	Log.Info().Str("ip", ip).Str("drone", d.id.String()).Msg("drone registered")
	return d, nil
}

// NewDefaultDrone constructs a Drone at the default Tello address
// (192.168.10.1) with default timeouts.
func NewDefaultDrone() (*Drone, error) {
	return NewDrone(defaultTelloAddr)
}

// ID returns this Drone's correlation identifier, useful for telling
// drones apart in logs once several are active in one process.
func (d *Drone) ID() uuid.UUID { return d.id }

// IP returns the drone's control-channel IPv4 address.
func (d *Drone) IP() string { return d.ip }

// IsFlying reports whether this Drone believes it is currently airborne.
func (d *Drone) IsFlying() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.isFlying
}

// IsStreaming reports whether this Drone believes its video stream is active.
func (d *Drone) IsStreaming() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.streamOn
}

// Connect enters SDK mode by sending "command". If waitForState is true,
// it then polls the cached state snapshot at 20Hz for up to one second and
// raises TransportInit if no telemetry has arrived by then - this guards
// against silently losing the initial handshake.
func (d *Drone) Connect(waitForState bool) error {
	if err := d.sendControlCommand("command", d.responseTimeout); err != nil {
		return err
	}

	if !waitForState {
		return nil
	}

	deadline := time.Now().Add(connectWait)
	for time.Now().Before(deadline) {
		if len(d.mb.getState()) > 0 {
			return nil
		}
		time.Sleep(connectPollInterval)
	}
	return newError(TransportInit, "connect", "no state packet received within 1s of connect")
}

// End tears the Drone down: if flying it attempts to land (swallowing
// CommandFailed), if streaming it attempts to turn the stream off (same),
// stops any video worker, and removes this drone from the registry.
// Idempotent - a second call has no observable effect.
func (d *Drone) End() error {
	d.mu.Lock()
	if d.ended {
		d.mu.Unlock()
		return nil
	}
	d.ended = true
	flying := d.isFlying
	streaming := d.streamOn
	video := d.video
	d.video = nil
	d.mu.Unlock()

	if flying {
		if err := d.Land(); err != nil {
			Log.Debug().Err(err).Msg("land during teardown failed, ignoring")
		}
	}
	if streaming {
		if err := d.StreamOff(); err != nil {
			Log.Debug().Err(err).Msg("streamoff during teardown failed, ignoring")
		}
	}
	if video != nil {
		video.Stop()
	}

	d.fab.registry.remove(d.ip)
	Log.Info().Str("ip", d.ip).Msg("drone torn down")
	return nil
}

// sendWithReply implements the core send-with-reply protocol: enforce
// inter-command spacing, send, then poll the response mailbox until a
// datagram arrives or the timeout elapses.
func (d *Drone) sendWithReply(command string, timeout time.Duration) (string, error) {
	waitCtx, cancel := context.WithTimeout(context.Background(), timeout+time.Second)
	defer cancel()
	if err := d.commandGate.Wait(waitCtx); err != nil {
		Log.Debug().Err(err).Msg("inter-command spacing wait interrupted")
	}

	sendTimestamp := time.Now()
	Log.Info().Str("cmd", command).Msg("send command")
	if err := d.fab.send(d.ip, []byte(command)); err != nil {
		return "", wrapError(CommandFailed, command, err)
	}

	for {
		if data, ok := d.mb.popResponse(); ok {
			text := string(data)
			text = strings.TrimRight(text, "\r\n")
			Log.Info().Str("cmd", command).Str("response", text).Msg("received response")
			return text, nil
		}
		if time.Since(sendTimestamp) > timeout {
			Log.Warn().Str("cmd", command).Msg("timeout waiting for response")
			return "Timeout error!", nil
		}
		time.Sleep(pollInterval)
	}
}

// sendControlCommand sends a command expecting "ok"/"OK", retrying up to
// retryCount+1 total attempts before raising CommandFailed.
func (d *Drone) sendControlCommand(command string, timeout time.Duration) error {
	var lastResponse string
	tries := d.retryCount + 1
	for i := 0; i < tries; i++ {
		response, err := d.sendWithReply(command, timeout)
		if err != nil {
			return err
		}
		lastResponse = response
		if strings.EqualFold(strings.TrimSpace(response), "ok") {
			return nil
		}
		Log.Debug().Str("cmd", command).Int("attempt", i+1).Str("response", response).Msg("control command attempt failed")
	}
	return &Error{Kind: CommandFailed, Op: command, Detail: lastResponse, Tries: tries}
}

// sendReadCommand sends a command expecting a value reply. A reply
// containing "error", "ERROR" or "False" raises CommandFailed.
func (d *Drone) sendReadCommand(command string) (string, error) {
	response, err := d.sendWithReply(command, d.responseTimeout)
	if err != nil {
		return "", err
	}
	if strings.Contains(response, "error") || strings.Contains(response, "ERROR") || strings.Contains(response, "False") {
		return "", newError(CommandFailed, command, response)
	}
	return response, nil
}

func (d *Drone) sendReadCommandInt(command string) (int, error) {
	response, err := d.sendReadCommand(command)
	if err != nil {
		return 0, err
	}
	n, perr := strconv.Atoi(strings.TrimSpace(response))
	if perr != nil {
		return 0, wrapError(CommandFailed, command, perr)
	}
	return n, nil
}

func (d *Drone) sendReadCommandFloat(command string) (float64, error) {
	response, err := d.sendReadCommand(command)
	if err != nil {
		return 0, err
	}
	f, perr := strconv.ParseFloat(strings.TrimSpace(response), 64)
	if perr != nil {
		return 0, wrapError(CommandFailed, command, perr)
	}
	return f, nil
}

// sendWithoutReply fires a command and does not wait for, or consume, a
// reply - used for commands the drone never acknowledges (emergency,
// reboot, rc, wifi credential changes).
func (d *Drone) sendWithoutReply(command string) error {
	Log.Info().Str("cmd", command).Msg("send command (no reply expected)")
	return d.fab.send(d.ip, []byte(command))
}

// SendRCControl sends a best-effort, fire-and-forget four-channel RC
// update. Each channel is clamped to [-100,100]. If called again within
// minInterRc of the previous call, the call is silently dropped - this is
// intentional rate limiting, not an error.
func (d *Drone) SendRCControl(lr, fb, ud, yaw int) {
	if !d.rcGate.Allow() {
		return
	}
	lr, fb, ud, yaw = clamp100(lr), clamp100(fb), clamp100(ud), clamp100(yaw)
	cmd := fmt.Sprintf("rc %d %d %d %d", lr, fb, ud, yaw)
	if err := d.sendWithoutReply(cmd); err != nil {
		Log.Debug().Err(err).Msg("rc send failed")
	}
}

func clamp100(v int) int {
	if v > 100 {
		return 100
	}
	if v < -100 {
		return -100
	}
	return v
}

// GetStateField returns the cached telemetry value for key, or
// StateUnavailable if key was not present in the last snapshot.
func (d *Drone) GetStateField(key string) (interface{}, error) {
	state := d.mb.getState()
	v, ok := state[key]
	if !ok {
		return nil, newError(StateUnavailable, key, "not present in last telemetry snapshot")
	}
	return v, nil
}

// State returns a copy of the full cached telemetry snapshot.
func (d *Drone) State() StateMap {
	src := d.mb.getState()
	out := make(StateMap, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// LastStateUpdate returns the time the cached telemetry snapshot was last
// refreshed.
func (d *Drone) LastStateUpdate() time.Time {
	return d.mb.lastUpdate()
}

func (d *Drone) stateInt(key string) (int, error) {
	v, err := d.GetStateField(key)
	if err != nil {
		return 0, err
	}
	n, ok := v.(int)
	if !ok {
		return 0, newError(StateUnavailable, key, "cached value is not an int")
	}
	return n, nil
}

func (d *Drone) stateFloat(key string) (float64, error) {
	v, err := d.GetStateField(key)
	if err != nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, newError(StateUnavailable, key, "cached value is not a float")
	}
	return f, nil
}
