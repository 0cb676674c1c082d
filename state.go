// state.go

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

type fieldKind int

const (
	fieldInt fieldKind = iota
	fieldFloat
)

// stateFieldKinds is the canonical field-type table for the Tello state
// channel. mpry is deliberately absent: it is a raw "x,y,z" substring and
// is passed through unparsed. Any other key not listed here is retained
// as a raw string.
var stateFieldKinds = map[string]fieldKind{
	"mid": fieldInt, "x": fieldInt, "y": fieldInt, "z": fieldInt,
	"pitch": fieldInt, "roll": fieldInt, "yaw": fieldInt,
	"vgx": fieldInt, "vgy": fieldInt, "vgz": fieldInt,
	"templ": fieldInt, "temph": fieldInt, "tof": fieldInt, "h": fieldInt,
	"bat": fieldInt, "time": fieldInt,
	"baro": fieldFloat, "agx": fieldFloat, "agy": fieldFloat, "agz": fieldFloat,
}

// parseState decodes a raw telemetry datagram into a StateMap. It is pure
// and total: no I/O, no shared state, never fails - malformed fields are
// logged and skipped rather than aborting the whole packet.
func parseState(raw []byte) StateMap {
	text := strings.TrimRight(string(raw), " \t\r\n\x00")

	if text == "ok" {
		return StateMap{}
	}

	sm := make(StateMap)
	for _, field := range strings.Split(text, ";") {
		if field == "" {
			continue
		}
		parts := strings.SplitN(field, ":", 2)
		if len(parts) < 2 {
			continue
		}
		key, value := parts[0], parts[1]

		kind, known := stateFieldKinds[key]
		if !known {
			sm[key] = value
			continue
		}

		switch kind {
		case fieldInt:
			n, err := strconv.Atoi(value)
			if err != nil {
				Log.Debug().Str("field", key).Str("value", value).Err(err).Msg("skipping malformed int state field")
				continue
			}
			sm[key] = n
		case fieldFloat:
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				Log.Debug().Str("field", key).Str("value", value).Err(err).Msg("skipping malformed float state field")
				continue
			}
			sm[key] = f
		}
	}
	return sm
}
