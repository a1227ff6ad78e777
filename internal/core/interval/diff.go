package interval

import (
	"chrono/internal/core/civil"
)

// Diff returns the calendrical difference between one and two.
//
// When both instants live in the same named zone the difference is computed
// on the wall-clock fields with transition-aware corrections; otherwise a
// coarser epoch-based subtraction is used. The magnitude fields of the
// result are non-negative; Invert records whether one was the later instant.
// Neither input is mutated.
func Diff(one, two *civil.Time) *Interval {
	one = one.Clone()
	two = two.Clone()

	if civil.SameNamedZone(one, two) {
		return diffSameZone(one, two)
	}

	iv := New()
	one, two = sortOldToNew(one, two, iv)

	iv.Y = two.Y - one.Y
	iv.M = two.M - one.M
	iv.D = two.D - one.D
	iv.H = two.H - one.H
	// without a shared transition table the DST hour is rolled in directly,
	// but only for sides that do not carry their own table
	if one.Zone.Kind != civil.ZoneID {
		iv.H += dstHours(one.DST)
	}
	if two.Zone.Kind != civil.ZoneID {
		iv.H -= dstHours(two.DST)
	}
	iv.I = two.I - one.I
	iv.S = two.S - one.S - two.Z + one.Z
	iv.US = two.US - one.US

	iv.Days = DiffDays(one, two)

	relNormalize(normalizeBase(iv, one, two), iv)

	return iv
}

// diffSameZone subtracts wall-clock fields and repairs the result around
// offset transitions of the shared zone
func diffSameZone(one, two *civil.Time) *Interval {
	iv := New()
	one, two = sortOldToNew(one, two, iv)

	// offset change between the two instants, split into clock parts
	dstCorr := two.Z - one.Z
	dstHCorr := dstCorr / civil.SecsPerHour
	dstMCorr := (dstCorr % civil.SecsPerHour) / 60

	iv.Y = two.Y - one.Y
	iv.M = two.M - one.M
	iv.D = two.D - one.D
	iv.H = two.H - one.H
	iv.I = two.I - one.I
	iv.S = two.S - one.S
	iv.US = two.US - one.US

	iv.Days = DiffDays(one, two)

	// wall order and epoch order can disagree inside a fall-back overlap;
	// rebuild the clock part from the real elapsed seconds and flip direction
	if two.SSE < one.SSE {
		flipped := abs64(iv.I*60 + iv.S - dstCorr)
		iv.H = flipped / civil.SecsPerHour
		iv.I = (flipped - iv.H*civil.SecsPerHour) / 60
		iv.S = flipped % 60
		iv.Invert = !iv.Invert
	}

	relNormalize(normalizeBase(iv, one, two), iv)

	tbl := two.Zone.MustTable()
	switch {
	case one.DST == civil.DSTOn && two.DST == civil.DSTOff:
		// fall back: within a day of the transition the raw subtraction
		// double-counts the repeated hour
		if two.SSE-one.SSE+dstCorr < civil.SecsPerDay {
			iv.H -= dstHCorr
			iv.I -= dstMCorr
		}
	case one.DST == civil.DSTOff && two.DST == civil.DSTOn:
		// spring forward: the skipped hour inflates the wall difference
		info, ok := tbl.Lookup(two.SSE)
		if ok &&
			!(one.SSE+civil.SecsPerDay > info.Transition && one.SSE+civil.SecsPerDay <= info.Transition+dstCorr) &&
			two.SSE >= info.Transition &&
			(two.SSE-one.SSE+dstCorr)%civil.SecsPerDay > two.SSE-info.Transition {
			iv.H -= dstHCorr
			iv.I -= dstMCorr
		}
	case two.SSE-one.SSE >= civil.SecsPerDay:
		// multi-day span ending just before a transition boundary
		info, ok := tbl.Lookup(two.SSE - two.Z)
		if ok {
			corr := one.Z - info.Offset
			if two.SSE >= info.Transition-corr && two.SSE < info.Transition {
				iv.D--
				iv.H = 24
			}
		}
	}

	return iv
}

// DiffDays returns the whole days elapsed between two instants. Same-zone
// pairs are measured on the calendar with a time-of-day adjustment;
// otherwise raw epoch seconds decide.
func DiffDays(one, two *civil.Time) int64 {
	if !civil.SameZone(one, two) {
		return abs64(one.SSE-two.SSE) / civil.SecsPerDay
	}

	earliest, latest := one, two
	if civil.Compare(one, two) >= 0 {
		earliest, latest = two, one
	}

	days := abs64(one.EpochDays() - two.EpochDays())
	// the last day only counts once the clock has come around
	if latest.DecimalHour() < earliest.DecimalHour() && days > 0 {
		days--
	}
	return days
}

// sortOldToNew returns the two instants in ascending order, marking the
// interval inverted when they had to swap. Same-named-zone pairs order on
// the wall-clock fields; everything else orders on the epoch value.
func sortOldToNew(one, two *civil.Time, iv *Interval) (*civil.Time, *civil.Time) {
	if civil.SameNamedZone(one, two) {
		if wallAfter(one, two) {
			iv.Invert = true
			return two, one
		}
		return one, two
	}

	if civil.Compare(one, two) > 0 {
		iv.Invert = true
		return two, one
	}
	return one, two
}

// wallAfter reports whether a is after b on the calendar fields alone
func wallAfter(a, b *civil.Time) bool {
	switch {
	case a.Y != b.Y:
		return a.Y > b.Y
	case a.M != b.M:
		return a.M > b.M
	case a.D != b.D:
		return a.D > b.D
	case a.H != b.H:
		return a.H > b.H
	case a.I != b.I:
		return a.I > b.I
	case a.S != b.S:
		return a.S > b.S
	}
	return a.US > b.US
}

// normalizeBase picks the anchor date relative carries resolve against.
// Inverted intervals anchor on the earlier instant, which is why an
// inverted diff can carry a different day count than its forward twin.
func normalizeBase(iv *Interval, one, two *civil.Time) *civil.Time {
	if iv.Invert {
		return one
	}
	return two
}

// relNormalize carries overflowed interval fields into the next higher unit,
// resolving day carries against the real month lengths around base.
// base is a working copy and gets its anchor month walked during the carry.
func relNormalize(base *civil.Time, iv *Interval) {
	civil.RangeLimit(0, civil.USecsPerSec, civil.USecsPerSec, &iv.US, &iv.S)
	civil.RangeLimit(0, 60, 60, &iv.S, &iv.I)
	civil.RangeLimit(0, 60, 60, &iv.I, &iv.H)
	civil.RangeLimit(0, 24, 24, &iv.H, &iv.D)
	civil.RangeLimit(0, 12, 12, &iv.M, &iv.Y)

	rangeLimitDaysRelative(&base.Y, &base.M, iv)
	civil.RangeLimit(0, 12, 12, &iv.M, &iv.Y)
}

// rangeLimitDaysRelative borrows months into the day field until it is
// non-negative. Forward intervals borrow the month before the anchor and
// walk backwards; inverted ones borrow the anchor month and walk forwards.
func rangeLimitDaysRelative(baseY, baseM *int64, iv *Interval) {
	civil.RangeLimit(1, 13, 12, baseM, baseY)

	if !iv.Invert {
		for iv.D < 0 {
			y, m := *baseY, *baseM-1
			if m < 1 {
				m = 12
				y--
			}
			iv.D += civil.DaysInMonth(y, m)
			iv.M--

			*baseM = *baseM - 1
			if *baseM < 1 {
				*baseM = 12
				*baseY = *baseY - 1
			}
		}
		return
	}

	for iv.D < 0 {
		iv.D += civil.DaysInMonth(*baseY, *baseM)
		iv.M--

		*baseM = *baseM + 1
		if *baseM > 12 {
			*baseM = 1
			*baseY = *baseY + 1
		}
	}
}

func dstHours(d civil.DST) int64 {
	if d == civil.DSTOn {
		return 1
	}
	return 0
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
