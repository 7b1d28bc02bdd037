package profile

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/chrissnell/diveprofile/internal/dive"
	"github.com/chrissnell/diveprofile/internal/log"
)

func TestDepthAt(t *testing.T) {
	pi := Info{Entries: []Entry{{0, 0}, {10, 5}, {20, 12}}}

	tests := []struct {
		name     string
		sec      int
		expected int
		found    bool
	}{
		{name: "first entry", sec: 0, expected: 0, found: true},
		{name: "exact match", sec: 10, expected: 5, found: true},
		{name: "last entry", sec: 20, expected: 12, found: true},
		{name: "between entries", sec: 15, found: false},
		{name: "before start", sec: -1, found: false},
		{name: "after end", sec: 21, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			depth, err := pi.DepthAt(tt.sec)
			if tt.found {
				if err != nil {
					t.Fatalf("DepthAt(%d) error: %v", tt.sec, err)
				}
				if depth != tt.expected {
					t.Errorf("DepthAt(%d) = %d, expected %d", tt.sec, depth, tt.expected)
				}
				return
			}
			if !errors.Is(err, ErrDepthNotFound) {
				t.Errorf("DepthAt(%d) error = %v, expected ErrDepthNotFound", tt.sec, err)
			}
		})
	}
}

func TestDepthAtEveryEntry(t *testing.T) {
	var pi Info
	for s := 0; s < 500; s += 2 {
		pi.Entries = append(pi.Entries, Entry{Sec: s, DepthMM: s * 7})
	}
	for _, e := range pi.Entries {
		if d, err := pi.DepthAt(e.Sec); err != nil || d != e.DepthMM {
			t.Fatalf("DepthAt(%d) = %d, %v; expected %d", e.Sec, d, err, e.DepthMM)
		}
		if _, err := pi.DepthAt(e.Sec + 1); !errors.Is(err, ErrDepthNotFound) {
			t.Fatalf("DepthAt(%d) found a depth for an absent time", e.Sec+1)
		}
	}
}

func TestDepthAtLogsMiss(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	log.SetLogger(zap.New(core))
	defer log.SetLogger(zap.NewNop())

	pi := Info{Entries: []Entry{{0, 0}, {10, 5}}}
	if _, err := pi.DepthAt(5); err == nil {
		t.Fatal("expected error")
	}
	if logs.Len() != 1 {
		t.Fatalf("logged %d entries, expected 1", logs.Len())
	}
	if got := logs.All()[0].ContextMap()["sec"]; got != int64(5) {
		t.Errorf("logged sec = %v, expected 5", got)
	}
}

func TestFromComputer(t *testing.T) {
	dc := &dive.Computer{Samples: []dive.Sample{{Time: 0, DepthMM: 0}, {Time: 30, DepthMM: 9000}, {Time: 60, DepthMM: 1000}}}
	pi := FromComputer(dc)

	first, last := pi.Bounds()
	if first != 0 || last != 60 {
		t.Errorf("Bounds() = %d, %d", first, last)
	}
	if pi.MaxDepth() != 9000 {
		t.Errorf("MaxDepth() = %d", pi.MaxDepth())
	}
}
