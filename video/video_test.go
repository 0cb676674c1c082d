// video_test.go

package video

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/SMerrony/tello/internal/h264"
)

type stubDecoder struct{ calls int }

func (s *stubDecoder) Decode(au *h264.AccessUnit) (*Frame, error) {
	s.calls++
	return &Frame{Width: 2, Height: 1, Pixels: []byte{1, 2, 3, 4, 5, 6}}, nil
}

func TestWorkerDefaultFrameBeforeAnyDecode(t *testing.T) {
	w, err := NewWorker(0)
	if err != nil {
		t.Fatalf("NewWorker: %v", err)
	}
	defer w.Stop()

	f := w.Frame()
	if f.Width != 400 || f.Height != 300 {
		t.Fatalf("default frame = %dx%d, want 400x300", f.Width, f.Height)
	}
	for _, b := range f.Pixels {
		if b != 0 {
			t.Fatalf("default frame should be zero-filled")
		}
	}
}

func TestWorkerLatestOnlyPublishesDecodedFrame(t *testing.T) {
	dec := &stubDecoder{}
	w, err := NewWorker(0, WithDecoder(dec))
	if err != nil {
		t.Fatalf("NewWorker: %v", err)
	}
	defer w.Stop()

	sendOneAccessUnit(t, w)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if w.Frame().Width == 2 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("decoded frame was never published")
}

func TestWorkerBoundedFIFODelivery(t *testing.T) {
	dec := &stubDecoder{}
	w, err := NewWorker(0, WithDecoder(dec), WithMode(BoundedFIFO), WithBoundedDepth(4))
	if err != nil {
		t.Fatalf("NewWorker: %v", err)
	}
	defer w.Stop()

	sendOneAccessUnit(t, w)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	f, err := w.NextFrame(ctx)
	if err != nil {
		t.Fatalf("NextFrame: %v", err)
	}
	if f.Width != 2 {
		t.Fatalf("frame width = %d, want 2", f.Width)
	}
}

func TestWorkerWithoutDecoderDoesNotPanic(t *testing.T) {
	w, err := NewWorker(0)
	if err != nil {
		t.Fatalf("NewWorker: %v", err)
	}
	defer w.Stop()

	sendOneAccessUnit(t, w)
	time.Sleep(50 * time.Millisecond)

	if w.Frame().Width != 400 {
		t.Fatalf("without a decoder, Frame should stay at the default")
	}
}

// sendOneAccessUnit fires a single minimal access unit at the worker's
// bound port, enough to make its framing loop invoke the decoder once.
func sendOneAccessUnit(t *testing.T, w *Worker) {
	t.Helper()
	conn, err := net.DialUDP("udp4", nil, w.conn.LocalAddr().(*net.UDPAddr))
	if err != nil {
		t.Fatalf("dial worker: %v", err)
	}
	defer conn.Close()

	// The framer needs to see the start of the *next* NAL before it will
	// close off the current one, and the start of the NAL after that
	// before it will close off an access unit - so closing AU #1 off
	// takes three datagrams: AU #1 itself, AUD #2 (closes AU #1), and a
	// trailing NAL (closes AUD #2's own parse).
	first := []byte{0, 0, 0, 1, h264.TypeAUD, 0xf0, 0, 0, 0, 1, h264.TypeSlice, 0x80, 0, 0}
	second := []byte{0, 0, 0, 1, h264.TypeAUD, 0xf0}
	third := []byte{0, 0, 0, 1, h264.TypeSlice, 0x80, 0, 0}
	for _, datagram := range [][]byte{first, second, third} {
		conn.Write(datagram)
		time.Sleep(20 * time.Millisecond)
	}
}
