// state_test.go

package tello

import (
	"testing"
)

func TestParseStateOK(t *testing.T) {
	sm := parseState([]byte("ok"))
	if len(sm) != 0 {
		t.Fatalf("expected empty map for \"ok\", got %v", sm)
	}
}

func TestParseStateTypedFields(t *testing.T) {
	raw := "mid:-1;x:0;y:0;z:0;pitch:0;roll:1;yaw:-2;vgx:0;vgy:0;vgz:0;templ:60;temph:65;tof:10;h:0;bat:88;baro:96.50;time:12;agx:-1.00;agy:2.00;agz:-998.00;mpry:0,0,0;\r\n"
	sm := parseState([]byte(raw))

	wantInt := map[string]int{
		"mid": -1, "x": 0, "y": 0, "z": 0, "pitch": 0, "roll": 1, "yaw": -2,
		"vgx": 0, "vgy": 0, "vgz": 0, "templ": 60, "temph": 65, "tof": 10,
		"h": 0, "bat": 88, "time": 12,
	}
	for k, want := range wantInt {
		got, ok := sm[k].(int)
		if !ok {
			t.Fatalf("field %q: want int %d, got %#v", k, want, sm[k])
		}
		if got != want {
			t.Fatalf("field %q: want %d, got %d", k, want, got)
		}
	}

	wantFloat := map[string]float64{"baro": 96.50, "agx": -1.00, "agy": 2.00, "agz": -998.00}
	for k, want := range wantFloat {
		got, ok := sm[k].(float64)
		if !ok {
			t.Fatalf("field %q: want float64 %v, got %#v", k, want, sm[k])
		}
		if got != want {
			t.Fatalf("field %q: want %v, got %v", k, want, got)
		}
	}

	if _, ok := sm["mpry"].(string); !ok {
		t.Fatalf("mpry: want raw string, got %#v", sm["mpry"])
	}
}

func TestParseStateUnknownKeyKeptAsString(t *testing.T) {
	sm := parseState([]byte("mid:1;widget:frobnicate;"))
	v, ok := sm["widget"].(string)
	if !ok || v != "frobnicate" {
		t.Fatalf("want unknown field kept as raw string, got %#v", sm["widget"])
	}
}

func TestParseStateMalformedFieldSkippedNotFatal(t *testing.T) {
	sm := parseState([]byte("mid:1;bat:notanumber;h:5;"))
	if _, ok := sm["bat"]; ok {
		t.Fatalf("malformed bat field should have been dropped, got %#v", sm["bat"])
	}
	if v, ok := sm["mid"].(int); !ok || v != 1 {
		t.Fatalf("mid should still have parsed, got %#v", sm["mid"])
	}
	if v, ok := sm["h"].(int); !ok || v != 5 {
		t.Fatalf("h should still have parsed after a malformed neighbour, got %#v", sm["h"])
	}
}

func TestParseStateEmptyFieldsIgnored(t *testing.T) {
	sm := parseState([]byte(";;mid:1;;"))
	if len(sm) != 1 {
		t.Fatalf("want exactly one field parsed, got %v", sm)
	}
}
