// Package video receives the Tello's H.264 video stream, frames it into
// access units, and hands each one to a pluggable Decoder. This package
// stops at framing: turning an access unit into pixels is left entirely to
// the caller's Decoder, since no single decode strategy (cgo binding,
// hardware decoder, pure-Go) fits every user of this library.
package video

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

import (
	"context"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SMerrony/tello/internal/h264"
)

const (
	defaultBoundedDepth = 32
	readBufSize         = 2048
)

// Frame is a single decoded RGB image, row-major, 3 bytes (R,G,B) per pixel.
type Frame struct {
	Width  int
	Height int
	Pixels []byte
}

// defaultFrame is what Frame() returns before any frame has been decoded:
// a blank 400x300 image.
func defaultFrame() *Frame {
	const w, h = 400, 300
	return &Frame{Width: w, Height: h, Pixels: make([]byte, w*h*3)}
}

// AccessUnit is one framed H.264 access unit, as handed to a Decoder.
// Decoders outside this module name it as video.AccessUnit.
type AccessUnit = h264.AccessUnit

// Decoder turns one H.264 access unit into a decoded RGB frame. Decode may
// return a nil Frame with a nil error for access units that carry no
// displayable picture (e.g. parameter sets only).
type Decoder interface {
	Decode(au *h264.AccessUnit) (*Frame, error)
}

// Mode selects how decoded frames are buffered for consumers.
type Mode int

const (
	// LatestOnly keeps only the most recently decoded frame; a slow
	// consumer silently misses intermediate frames. This is the default.
	LatestOnly Mode = iota
	// BoundedFIFO queues decoded frames up to a fixed depth; once full,
	// the oldest queued frame is dropped to make room for the newest.
	BoundedFIFO
)

// Option customizes Worker construction.
type Option func(*Worker)

// WithMode selects the frame-buffering mode (default LatestOnly).
func WithMode(m Mode) Option {
	return func(w *Worker) { w.mode = m }
}

// WithBoundedDepth overrides the BoundedFIFO queue depth (default 32).
func WithBoundedDepth(n int) Option {
	return func(w *Worker) { w.boundedDepth = n }
}

// WithDecoder installs the pixel decoder. Without one, Worker still frames
// access units from the wire but never produces anything but the default
// blank frame - framing is exercised independently of decoding.
func WithDecoder(dec Decoder) Option {
	return func(w *Worker) { w.decoder = dec }
}

// Worker owns one local UDP video socket, frames the incoming Annex B
// stream into access units, and decodes each into an RGB Frame.
type Worker struct {
	conn *net.UDPConn
	port int

	mode         Mode
	boundedDepth int
	decoder      Decoder

	latest atomic.Value // *Frame

	fifoMu sync.Mutex
	fifoCh chan *Frame

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewWorker binds the local UDP port the drone will stream video to and
// returns a Worker ready to Start.
func NewWorker(port int, opts ...Option) (*Worker, error) {
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{Port: port})
	if err != nil {
		return nil, fmt.Errorf("video: bind port %d: %w", port, err)
	}

	w := &Worker{
		conn:         conn,
		port:         port,
		mode:         LatestOnly,
		boundedDepth: defaultBoundedDepth,
		stopCh:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.latest.Store(defaultFrame())
	if w.mode == BoundedFIFO {
		w.fifoCh = make(chan *Frame, w.boundedDepth)
	}
	return w, nil
}

// Start begins reading datagrams and framing/decoding them in a background
// goroutine.
func (w *Worker) Start() {
	w.wg.Add(1)
	go w.run()
}

// Stop closes the video socket and waits for the reader goroutine to exit.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.conn.Close()
	})
	w.wg.Wait()
}

// Frame returns the most recently decoded frame (LatestOnly mode's primary
// accessor; also usable under BoundedFIFO as a peek).
func (w *Worker) Frame() *Frame {
	return w.latest.Load().(*Frame)
}

// NextFrame blocks for the next queued frame under BoundedFIFO mode, or
// returns ctx.Err() if ctx is done first. In LatestOnly mode it returns the
// latest frame immediately.
func (w *Worker) NextFrame(ctx context.Context) (*Frame, error) {
	if w.mode != BoundedFIFO {
		return w.Frame(), nil
	}
	select {
	case f := <-w.fifoCh:
		return f, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// run frames the incoming datagram stream and publishes decoded frames
// until Stop closes the socket.
func (w *Worker) run() {
	defer w.wg.Done()
	reader := h264.NewReader(&datagramReader{conn: w.conn})

	for {
		au, err := reader.ReadAccessUnit()
		if err != nil {
			select {
			case <-w.stopCh:
				return
			default:
			}
			Log.Debug().Err(err).Msg("video framing stopped")
			return
		}
		w.publish(au)
	}
}

func (w *Worker) publish(au *h264.AccessUnit) {
	if w.decoder == nil {
		return
	}
	frame, err := w.decoder.Decode(au)
	if err != nil || frame == nil {
		return
	}
	switch w.mode {
	case BoundedFIFO:
		w.latest.Store(frame)
		select {
		case w.fifoCh <- frame:
		default:
			select {
			case <-w.fifoCh:
			default:
			}
			select {
			case w.fifoCh <- frame:
			default:
			}
		}
	default:
		w.latest.Store(frame)
	}
}

// datagramReader adapts a *net.UDPConn to io.Reader, one datagram per Read.
type datagramReader struct {
	conn *net.UDPConn
}

func (r *datagramReader) Read(p []byte) (int, error) {
	buf := make([]byte, readBufSize)
	n, err := r.conn.Read(buf)
	if err != nil {
		return 0, err
	}
	return copy(p, buf[:n]), nil
}

// PollInterval is how often the Tello re-sends SPS/PPS; not used directly
// by Worker but kept here as documentation of the stream's cadence.
const PollInterval = 500 * time.Millisecond
