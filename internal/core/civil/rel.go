package civil

// WeekdayRel moves an instant to a target weekday ("next tuesday").
// Day is the target, 0 = Sunday. Behavior selects the stepping rule:
// 0 advances to the target even when already on it, 1 stays put when already
// on it, 2 moves within the current week.
type WeekdayRel struct {
	Day      int64
	Behavior int
}

// SpecialKind enumerates the special-relative variants
type SpecialKind uint8

// Special-relative kinds
const (
	// SpecialWeekdays steps Amount weekdays, skipping weekends in either direction
	SpecialWeekdays SpecialKind = iota + 1
	// SpecialFirstDayOfMonth snaps to the first day of the (possibly shifted) month
	SpecialFirstDayOfMonth
	// SpecialLastDayOfMonth snaps to the last day of the (possibly shifted) month
	SpecialLastDayOfMonth
)

// SpecialRel is a special-relative adjustment; Amount is only meaningful for
// SpecialWeekdays
type SpecialRel struct {
	Kind   SpecialKind
	Amount int64
}

// Rel is a transient relative delta applied during an epoch recomputation.
// It lives on the stack of the operation applying it, never on the Time
// itself, so applying an interval stays reentrant.
//
// Weekday and Special are the tagged alternate representations; when either
// is set it takes part in the adjustment alongside the numeric fields.
type Rel struct {
	Y, M, D int64
	H, I, S int64
	US      int64

	Weekday *WeekdayRel
	Special *SpecialRel
}
