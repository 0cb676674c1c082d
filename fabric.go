// fabric.go

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
	"net"
	"sync"
)

const (
	defaultTelloAddr    = "192.168.10.1"
	defaultVideoPort    = 11111
	maxDatagramSize     = 1024
	maxStateDatagramLen = 1024
)

// controlPort, statePort and fabricBindIP are vars, not consts, purely so
// package tests can point the fabric at loopback aliases and non-privileged
// ports instead of the real Tello ports on every interface. Production
// callers never need to touch them.
var (
	controlPort  = 8889
	statePort    = 8890
	fabricBindIP = ""
)

// fabric is the process-wide shared UDP transport: one control socket and
// one state socket serving every Drone in this process. The radio
// multiplexes all drones onto the client's single control port, so one
// shared socket with per-source-IP demultiplexing into the registry is the
// only correct shape - a per-drone socket would race for port 8889.
type fabric struct {
	registry *registry

	mu         sync.Mutex
	ctrlConn   *net.UDPConn
	stateConn  *net.UDPConn
	startOnce  sync.Once
	startErr   error
}

var (
	globalFabric     *fabric
	globalFabricOnce sync.Once
)

// getFabric returns the process-wide fabric singleton, performing
// first-use lazy initialization of its sockets and receiver goroutines.
// Subsequent calls are no-ops with respect to socket setup. A bind
// failure is fatal to the caller: TransportInit is returned.
func getFabric() (*fabric, error) {
	globalFabricOnce.Do(func() {
		globalFabric = &fabric{registry: newRegistry()}
	})
	return globalFabric, globalFabric.ensureStarted()
}

func (f *fabric) ensureStarted() error {
	f.startOnce.Do(func() {
		ctrlAddr := &net.UDPAddr{IP: net.ParseIP(fabricBindIP), Port: controlPort}
		ctrlConn, err := net.ListenUDP("udp4", ctrlAddr)
		if err != nil {
			f.startErr = wrapError(TransportInit, "bind control socket", err)
			return
		}

		stateAddr := &net.UDPAddr{IP: net.ParseIP(fabricBindIP), Port: statePort}
		stateConn, err := net.ListenUDP("udp4", stateAddr)
		if err != nil {
			ctrlConn.Close()
			f.startErr = wrapError(TransportInit, "bind state socket", err)
			return
		}

		f.mu.Lock()
		f.ctrlConn = ctrlConn
		f.stateConn = stateConn
		f.mu.Unlock()

		go f.responseReceiver()
		go f.stateReceiver()

		Log.Info().Int("controlPort", controlPort).Int("statePort", statePort).Msg("fabric started")
	})
	return f.startErr
}

// send is an unreliable fire-and-forget send from the shared control
// socket to the given drone's control port.
func (f *fabric) send(ip string, payload []byte) error {
	f.mu.Lock()
	conn := f.ctrlConn
	f.mu.Unlock()

	addr := &net.UDPAddr{IP: net.ParseIP(ip), Port: controlPort}
	_, err := conn.WriteToUDP(payload, addr)
	return err
}

// responseReceiver demultiplexes inbound control datagrams by source IP
// into the corresponding drone's mailbox. It is a background task that is
// never joined; it dies only with the process.
func (f *fabric) responseReceiver() {
	buf := make([]byte, maxDatagramSize)
	for {
		n, addr, err := f.ctrlConn.ReadFromUDP(buf)
		if err != nil {
			Log.Debug().Err(err).Msg("control receiver read error")
			return
		}
		ip := addr.IP.String()
		mb, known := f.registry.lookup(ip)
		if !known {
			Log.Debug().Str("ip", ip).Msg("dropping response from unknown drone")
			continue
		}
		data := make([]byte, n)
		copy(data, buf[:n])
		mb.pushResponse(data)
	}
}

// stateReceiver demultiplexes inbound state datagrams by source IP,
// parses them, and replaces the corresponding drone's state snapshot.
func (f *fabric) stateReceiver() {
	buf := make([]byte, maxStateDatagramLen)
	for {
		n, addr, err := f.stateConn.ReadFromUDP(buf)
		if err != nil {
			Log.Debug().Err(err).Msg("state receiver read error")
			return
		}
		ip := addr.IP.String()
		mb, known := f.registry.lookup(ip)
		if !known {
			Log.Debug().Str("ip", ip).Msg("dropping state packet from unknown drone")
			continue
		}
		data := make([]byte, n)
		copy(data, buf[:n])
		mb.setState(parseState(data))
	}
}
