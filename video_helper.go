// video_helper.go

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

// This file is the only one in the root package that imports the video
// package; the rest of the package reaches the video worker only through
// the videoStreamer interface.

package tello

import "github.com/SMerrony/tello/video"

// StartVideo is the common-case entry point for video streaming: it builds
// a video.Worker with the given decoder and mode options, and wires it up
// via StreamOn.
func (d *Drone) StartVideo(decoder video.Decoder, opts ...video.Option) error {
	allOpts := append([]video.Option{video.WithDecoder(decoder)}, opts...)
	return d.StreamOn(func(videoPort int) (videoStreamer, error) {
		w, err := video.NewWorker(videoPort, allOpts...)
		if err != nil {
			return nil, err
		}
		w.Start()
		return w, nil
	})
}
