package civil

// A 400-year Gregorian cycle, used to fast-forward huge day counts
const (
	daysPerLeapPeriod  = 146097
	yearsPerLeapPeriod = 400
)

// RangeLimit carries *a into [start,end) in steps of adj, accumulating the
// carry on *b. Floor semantics: a value below start borrows from *b, so e.g.
// microsecond -500000 becomes 500000 with one second borrowed.
func RangeLimit(start, end, adj int64, a, b *int64) {
	if *a < start {
		n := (start-*a-1)/adj + 1
		*b -= n
		*a += adj * n
	}
	if *a >= end {
		*b += *a / adj
		*a -= adj * (*a / adj)
	}
}

// rangeLimitDays carries an out-of-range day-of-month one month at a time,
// reporting whether another pass is needed
func rangeLimitDays(y, m, d *int64) bool {
	// jump whole leap-year periods in one go
	if *d >= daysPerLeapPeriod || *d <= -daysPerLeapPeriod {
		*y += yearsPerLeapPeriod * (*d / daysPerLeapPeriod)
		*d -= daysPerLeapPeriod * (*d / daysPerLeapPeriod)
	}

	RangeLimit(1, 13, 12, m, y)

	daysThisMonth := DaysInMonth(*y, *m)

	lastMonth := *m - 1
	lastYear := *y
	if lastMonth < 1 {
		lastMonth += 12
		lastYear--
	}
	daysLastMonth := DaysInMonth(lastYear, lastMonth)

	if *d <= 0 {
		*d += daysLastMonth
		(*m)--
		return true
	}
	if *d > daysThisMonth {
		*d -= daysThisMonth
		(*m)++
		return true
	}
	return false
}

// Normalize carries overflowed fields into the next higher unit in strict
// us -> s -> i -> h -> d, then m -> y order, then resolves day-of-month
// against real month lengths. A day past the end of its month rolls into the
// following month (2023-01-31 plus one month normalizes to 2023-03-03).
func (t *Time) Normalize() {
	RangeLimit(0, USecsPerSec, USecsPerSec, &t.US, &t.S)
	RangeLimit(0, 60, 60, &t.S, &t.I)
	RangeLimit(0, 60, 60, &t.I, &t.H)
	RangeLimit(0, 24, 24, &t.H, &t.D)
	RangeLimit(1, 13, 12, &t.M, &t.Y)

	for rangeLimitDays(&t.Y, &t.M, &t.D) {
	}
	RangeLimit(1, 13, 12, &t.M, &t.Y)
}
