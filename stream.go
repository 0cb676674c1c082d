// stream.go

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

// StreamOn reconfigures the drone's video target port first if this Drone
// was built with a non-default video port, builds a worker through
// newWorker to receive the stream, and then asks the drone to start
// sending video.
//
// newWorker is supplied by the caller rather than built here, so StreamOn
// itself does not depend on the video package; StartVideo (video_helper.go)
// is the wrapper that supplies a video.Worker.
func (d *Drone) StreamOn(newWorker func(videoPort int) (videoStreamer, error)) error {
	d.mu.Lock()
	if d.streamOn {
		d.mu.Unlock()
		return nil
	}
	d.mu.Unlock()

	if d.videoPort != defaultVideoPort {
		if err := d.sendControlCommand(fmt.Sprintf("port %d %d", statePort, d.videoPort), d.responseTimeout); err != nil {
			return err
		}
	}

	worker, err := newWorker(d.videoPort)
	if err != nil {
		return wrapError(VideoInit, "streamon", err)
	}

	if err := d.sendControlCommand("streamon", d.responseTimeout); err != nil {
		worker.Stop()
		return err
	}

	d.mu.Lock()
	d.video = worker
	d.streamOn = true
	d.mu.Unlock()
	return nil
}

// StreamOff asks the drone to stop sending video and stops this Drone's
// video worker, if any.
func (d *Drone) StreamOff() error {
	d.mu.Lock()
	if !d.streamOn {
		d.mu.Unlock()
		return nil
	}
	worker := d.video
	d.video = nil
	d.streamOn = false
	d.mu.Unlock()

	err := d.sendControlCommand("streamoff", d.responseTimeout)
	if worker != nil {
		worker.Stop()
	}
	return err
}
