// Package civil models a timezone-aware civil timestamp and the calendar
// primitives needed to move between calendar fields and epoch seconds.
//
// A Time carries both representations at once: the y/m/d h:i:s.us fields a
// human reads, and the epoch-seconds value (SSE) the machine compares. The
// two are kept consistent through UpdateTS (fields -> epoch) and
// UpdateFromSSE (epoch -> fields); SSEUpToDate records whether SSE currently
// matches the fields.
package civil

import "math"

// Units used throughout the calendar math
const (
	SecsPerHour = 3600
	SecsPerDay  = 86400
	USecsPerSec = 1000000
)

// DST is the daylight-saving state of an instant
type DST int8

// DST states; Unknown means the source did not say
const (
	DSTUnknown DST = -1
	DSTOff     DST = 0
	DSTOn      DST = 1
)

// dstSeconds returns the extra offset seconds implied by the DST flag
func dstSeconds(d DST) int64 {
	if d == DSTOn {
		return SecsPerHour
	}
	return 0
}

// ZoneKind discriminates the three zone descriptor flavors
type ZoneKind uint8

// Zone descriptor kinds
const (
	// ZoneOffset is a fixed numeric UTC offset, e.g. +02:00
	ZoneOffset ZoneKind = iota + 1
	// ZoneAbbr is an abbreviation with a standard offset and a DST flag, e.g. EDT
	ZoneAbbr
	// ZoneID is a named database identifier with a transition table, e.g. America/New_York
	ZoneID
)

// OffsetInfo is the result of a transition-table lookup
type OffsetInfo struct {
	// Offset is the UTC offset in seconds east at the queried instant
	Offset int64
	// Transition is the epoch second at which the offset period containing
	// the queried instant began; math.MinInt64 when unknown
	Transition int64
	// DST reports whether daylight saving is active at the queried instant
	DST bool
}

// NoTransition is the Transition value when no boundary precedes the instant
const NoTransition = math.MinInt64

// OffsetTable is the read-only transition lookup a named zone carries.
// Lookup always returns a usable Offset/DST pair; ok is false when the
// queried instant predates the zone's recorded transition history, in which
// case Transition is NoTransition and callers skip boundary corrections.
type OffsetTable interface {
	Name() string
	Lookup(sse int64) (info OffsetInfo, ok bool)
}

// Zone describes which timezone flavor an instant lives in
type Zone struct {
	Kind ZoneKind
	// Name is the database identifier for ZoneID, the abbreviation for ZoneAbbr
	Name string
	// Table is the transition lookup; required for ZoneID, nil otherwise
	Table OffsetTable
}

// MustTable returns the transition table or panics; a named zone without its
// table is an upstream consistency bug, not a condition to paper over
func (z Zone) MustTable() OffsetTable {
	if z.Table == nil {
		panic("civil: named zone " + z.Name + " has no offset table")
	}
	return z.Table
}

// Time is a timezone-aware civil timestamp.
// Calendar fields are signed and may be transiently out of range between a
// mutation and the next Normalize/UpdateTS call.
type Time struct {
	Y, M, D int64
	H, I, S int64
	US      int64

	// SSE is the signed epoch-seconds value of the instant
	SSE int64
	// Z is the UTC offset in seconds east applied at SSE.
	// For ZoneAbbr this is the standard offset; DST adds an hour on top.
	Z int64
	// DST is the daylight-saving state at SSE
	DST DST

	Zone Zone

	// SSEUpToDate marks SSE as consistent with the calendar fields
	SSEUpToDate bool
}

// Clone returns a deep value copy owned by the caller
func (t *Time) Clone() *Time {
	c := *t
	return &c
}

// Compare orders two instants by epoch seconds, breaking ties on microseconds.
// Returns -1, 0, or +1.
func Compare(a, b *Time) int {
	switch {
	case a.SSE < b.SSE:
		return -1
	case a.SSE > b.SSE:
		return 1
	case a.US < b.US:
		return -1
	case a.US > b.US:
		return 1
	}
	return 0
}

// SameZone reports whether two instants resolve to the same effective zone:
// equal offsets for fixed/abbreviation kinds, equal names for identifiers
func SameZone(a, b *Time) bool {
	if a.Zone.Kind != b.Zone.Kind {
		return false
	}
	if a.Zone.Kind == ZoneOffset || a.Zone.Kind == ZoneAbbr {
		return a.Z == b.Z
	}
	return a.Zone.Name == b.Zone.Name
}

// SameNamedZone reports whether both instants carry the same named identifier
func SameNamedZone(a, b *Time) bool {
	return a.Zone.Kind == ZoneID && b.Zone.Kind == ZoneID && a.Zone.Name == b.Zone.Name
}

// EpochDays returns the epoch-day number of the calendar date
func (t *Time) EpochDays() int64 {
	return EpochDaysFromCivil(t.Y, t.M, t.D)
}

// DecimalHour folds the time of day into a single decimal-hour value,
// keeping the sign of the hour field
func (t *Time) DecimalHour() float64 {
	if t.H >= 0 {
		return float64(t.H) + float64(t.I)/60 + float64(t.S)/3600 + float64(t.US)/3600000000
	}
	return float64(t.H) - float64(t.I)/60 - float64(t.S)/3600 - float64(t.US)/3600000000
}
