package dive

import "strings"

// Flags is the per-event bitfield reported by the dive computer. The low
// two bits mark the begin/end of a condition. Bits 2-4 carry a severity.
type Flags uint32

const (
	FlagBegin Flags = 1 << 0
	FlagEnd   Flags = 1 << 1

	SeverityShift       = 2
	SeverityMask  Flags = 7 << SeverityShift
)

// Severity levels as stored in the severity field.
const (
	SeverityNone  = 0
	SeverityState = 1
	SeverityInfo  = 2
	SeverityWarn  = 3
	SeverityAlarm = 4
)

// Has checks whether every bit of f is set.
func (fl Flags) Has(f Flags) bool {
	return fl&f == f
}

// Severity extracts the severity field.
func (fl Flags) Severity() int {
	return int((fl & SeverityMask) >> SeverityShift)
}

// WithSeverity returns a copy with the severity field replaced.
func (fl Flags) WithSeverity(sev int) Flags {
	return (fl &^ SeverityMask) | (Flags(sev)<<SeverityShift)&SeverityMask
}

// String returns a comma-separated description of the set bits.
func (fl Flags) String() string {
	var parts []string
	if fl.Has(FlagBegin) {
		parts = append(parts, "begin")
	}
	if fl.Has(FlagEnd) {
		parts = append(parts, "end")
	}
	switch fl.Severity() {
	case SeverityState:
		parts = append(parts, "state")
	case SeverityInfo:
		parts = append(parts, "info")
	case SeverityWarn:
		parts = append(parts, "warning")
	case SeverityAlarm:
		parts = append(parts, "alarm")
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, ", ")
}
