// Package interval implements calendrical differences between civil instants
// and the application of such differences back onto instants.
//
// A diff produces both a field-wise decomposition (years down to
// microseconds) and an authoritative whole-day count; applying an interval
// supports two modes, one that works through the calendar fields and one
// that treats clock units as elapsed epoch seconds.
package interval

import (
	"math"

	"chrono/internal/core/civil"
)

// DaysUnset marks the Days field of an interval that was not produced by a
// diff, where no whole-day count applies
const DaysUnset = math.MinInt64

// Interval is a signed calendrical difference.
//
// The numeric fields are always non-negative after a diff; Invert records
// the direction. Days is the total whole days elapsed between the two
// instants, independent of the y/m/d decomposition.
//
// Weekday and Special are alternate relative forms an interval built by hand
// may carry; a diff never sets them.
type Interval struct {
	Y, M, D int64
	H, I, S int64
	US      int64

	Invert bool
	Days   int64

	Weekday *civil.WeekdayRel
	Special *civil.SpecialRel
}

// New returns a zero interval with no day count
func New() *Interval {
	return &Interval{Days: DaysUnset}
}

// Clone returns a deep copy owned by the caller
func (iv *Interval) Clone() *Interval {
	c := *iv
	if iv.Weekday != nil {
		wd := *iv.Weekday
		c.Weekday = &wd
	}
	if iv.Special != nil {
		sp := *iv.Special
		c.Special = &sp
	}
	return &c
}

// rel builds the transient delta for an epoch recomputation, scaling the
// numeric fields by bias. Weekday/Special are deep-copied so the adjustment
// never writes back into the interval.
func (iv *Interval) rel(bias int64) *civil.Rel {
	r := &civil.Rel{
		Y:  iv.Y * bias,
		M:  iv.M * bias,
		D:  iv.D * bias,
		H:  iv.H * bias,
		I:  iv.I * bias,
		S:  iv.S * bias,
		US: iv.US * bias,
	}
	return r
}
