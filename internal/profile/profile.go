// Package profile holds the plotted depth-over-time series of a dive and
// answers depth queries against it.
package profile

import (
	"errors"
	"sort"

	"github.com/chrissnell/diveprofile/internal/dive"
	"github.com/chrissnell/diveprofile/internal/log"
)

// ErrDepthNotFound is returned when no plot entry exists at the requested time.
var ErrDepthNotFound = errors.New("no plot entry at event time")

// Entry is one plotted point.
type Entry struct {
	Sec     int `json:"sec"`
	DepthMM int `json:"depth_mm"`
}

// Info is the plot data of a dive computer, ordered by time.
type Info struct {
	Entries []Entry
}

// FromComputer builds plot info from the samples of a dive computer.
func FromComputer(dc *dive.Computer) Info {
	pi := Info{Entries: make([]Entry, len(dc.Samples))}
	for i, s := range dc.Samples {
		pi.Entries[i] = Entry{Sec: s.Time, DepthMM: s.DepthMM}
	}
	return pi
}

// DepthAt returns the depth plotted at exactly sec. Times between entries
// are not interpolated.
func (pi Info) DepthAt(sec int) (int, error) {
	i := sort.Search(len(pi.Entries), func(i int) bool {
		return pi.Entries[i].Sec >= sec
	})
	if i == len(pi.Entries) || pi.Entries[i].Sec != sec {
		log.Warnw("can't find a spot in the plot data", "sec", sec, "entries", len(pi.Entries))
		return 0, ErrDepthNotFound
	}
	return pi.Entries[i].DepthMM, nil
}

// Bounds returns the first and last plotted times.
func (pi Info) Bounds() (first, last int) {
	if len(pi.Entries) == 0 {
		return 0, 0
	}
	return pi.Entries[0].Sec, pi.Entries[len(pi.Entries)-1].Sec
}

// MaxDepth returns the deepest plotted depth.
func (pi Info) MaxDepth() int {
	maxDepth := 0
	for _, e := range pi.Entries {
		if e.DepthMM > maxDepth {
			maxDepth = e.DepthMM
		}
	}
	return maxDepth
}
