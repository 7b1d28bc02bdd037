// Package dive holds the dive log data model consumed by the profile view:
// dives, dive computers, cylinders and the events they record.
package dive

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chrissnell/diveprofile/pkg/gas"
)

// EventType is the sample event type as numbered by libdivecomputer.
type EventType int

const (
	EventNone EventType = iota
	EventDecoStop
	EventRBT
	EventAscent
	EventCeiling
	EventWorkload
	EventTransmitter
	EventViolation
	EventBookmark
	EventSurface
	EventSafetyStop
	EventGasChange
	EventSafetyStopVoluntary
	EventSafetyStopMandatory
	EventDeepStop
	EventCeilingSafetyStop
	EventFloor
	EventDiveTime
	EventMaxDepth
	EventOLF
	EventPO2
	EventAirTime
	EventRGBM
	EventHeading
	EventTissueLevel
	EventGasChange2
)

var eventTypeNames = map[EventType]string{
	EventNone:                "none",
	EventDecoStop:            "decostop",
	EventRBT:                 "rbt",
	EventAscent:              "ascent",
	EventCeiling:             "ceiling",
	EventWorkload:            "workload",
	EventTransmitter:         "transmitter",
	EventViolation:           "violation",
	EventBookmark:            "bookmark",
	EventSurface:             "surface",
	EventSafetyStop:          "safetystop",
	EventGasChange:           "gaschange",
	EventSafetyStopVoluntary: "safetystop_voluntary",
	EventSafetyStopMandatory: "safetystop_mandatory",
	EventDeepStop:            "deepstop",
	EventCeilingSafetyStop:   "ceiling_safetystop",
	EventFloor:               "floor",
	EventDiveTime:            "divetime",
	EventMaxDepth:            "maxdepth",
	EventOLF:                 "olf",
	EventPO2:                 "po2",
	EventAirTime:             "airtime",
	EventRGBM:                "rgbm",
	EventHeading:             "heading",
	EventTissueLevel:         "tissuelevel",
	EventGasChange2:          "gaschange2",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return strconv.Itoa(int(t))
}

// ParseEventType accepts either a type name or its numeric value.
func ParseEventType(s string) (EventType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return EventNone, nil
	}
	for t, name := range eventTypeNames {
		if name == s {
			return t, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return EventNone, fmt.Errorf("unknown event type %q", s)
	}
	return EventType(n), nil
}

// Mode is the breathing configuration of the diver.
type Mode int

const (
	OC Mode = iota
	CCR
	PSCR
	Freedive
)

var modeNames = []string{"Open circuit", "CCR", "pSCR", "Freedive"}

// Name returns the untranslated display name of the mode.
func (m Mode) Name() string {
	if m < 0 || int(m) >= len(modeNames) {
		return strconv.Itoa(int(m))
	}
	return modeNames[m]
}

// EventGas is the gas attached to a gas-change event.
type EventGas struct {
	Mix gas.Mix
	// Index is the zero-based cylinder index, or -1 when the computer did
	// not report one.
	Index int
}

// Event is a single marker recorded by a dive computer.
type Event struct {
	Name  string
	Time  int // seconds from dive start
	Value int
	Type  EventType
	Flags Flags
	Gas   EventGas
}

// IsGasChange reports whether the event switches the breathing gas.
func (e *Event) IsGasChange() bool {
	return e.Type == EventGasChange || e.Type == EventGasChange2
}

// Severity returns the severity field of the event flags.
func (e *Event) Severity() int {
	return e.Flags.Severity()
}
