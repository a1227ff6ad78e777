package civil

// UpdateTS recomputes SSE (and, for named zones, Z/DST) from the calendar
// fields, first folding in the pending relative delta when one is given.
// Idempotent when rel is nil.
func UpdateTS(t *Time, rel *Rel) {
	if rel != nil {
		adjustRelative(t, rel)
		adjustSpecial(t, rel)
	} else {
		t.Normalize()
	}

	// wall seconds first, then shift by the zone offset
	t.SSE = t.EpochDays()*SecsPerDay + HMSToSeconds(t.H, t.I, t.S)
	t.SSE += adjustTimezone(t)
	t.SSEUpToDate = true
}

// UpdateFromSSE rewrites the calendar fields from SSE. For named zones the
// offset and DST state are re-derived from the transition table so the
// instant stays internally consistent. Succeeds for any finite epoch value.
func UpdateFromSSE(t *Time) {
	sse := t.SSE
	switch t.Zone.Kind {
	case ZoneOffset:
		setCivilFromUnix(t, t.SSE+t.Z)
	case ZoneAbbr:
		setCivilFromUnix(t, t.SSE+t.Z+dstSeconds(t.DST))
	case ZoneID:
		info, _ := t.Zone.MustTable().Lookup(t.SSE)
		t.Z = info.Offset
		t.DST = boolDST(info.DST)
		setCivilFromUnix(t, t.SSE+info.Offset)
	default:
		setCivilFromUnix(t, t.SSE)
	}
	t.SSE = sse
	t.SSEUpToDate = true
}

// ApplyZone re-derives the offset and DST state for t.SSE from tbl and makes
// the instant a named-zone instant of that table
func ApplyZone(t *Time, tbl OffsetTable) {
	info, _ := tbl.Lookup(t.SSE)
	t.Zone = Zone{Kind: ZoneID, Name: tbl.Name(), Table: tbl}
	t.Z = info.Offset
	t.DST = boolDST(info.DST)
}

func boolDST(on bool) DST {
	if on {
		return DSTOn
	}
	return DSTOff
}

// adjustRelative folds the numeric delta and the weekday / first-last-day
// variants into the calendar fields
func adjustRelative(t *Time, rel *Rel) {
	if rel.Weekday != nil {
		adjustWeekday(t, rel)
	}
	t.Normalize()

	t.US += rel.US
	t.S += rel.S
	t.I += rel.I
	t.H += rel.H
	t.D += rel.D
	t.M += rel.M
	t.Y += rel.Y

	if rel.Special != nil {
		switch rel.Special.Kind {
		case SpecialFirstDayOfMonth:
			t.D = 1
		case SpecialLastDayOfMonth:
			// day zero of next month, resolved by Normalize below
			t.D = 0
			t.M++
		}
	}

	t.Normalize()
}

// adjustWeekday moves the date to the relative target weekday
func adjustWeekday(t *Time, rel *Rel) {
	wd := rel.Weekday
	dow := DayOfWeek(t.Y, t.M, t.D)

	if wd.Behavior == 2 {
		// "this week" semantics: the current week runs Sunday..Saturday
		if dow == 0 && wd.Day != 0 {
			wd.Day -= 7
		}
		if wd.Day == 0 && dow != 0 {
			wd.Day = 7
		}
		t.D -= dow
		t.D += wd.Day
		return
	}

	difference := wd.Day - dow
	if (rel.D < 0 && difference < 0) || (rel.D >= 0 && difference <= -int64(wd.Behavior)) {
		difference += 7
	}
	if wd.Day >= 0 {
		t.D += difference
	} else {
		t.D -= 7 - (abs64(wd.Day) - dow)
	}
}

// adjustSpecial handles the weekday-count stepping variant
func adjustSpecial(t *Time, rel *Rel) {
	if rel.Special != nil && rel.Special.Kind == SpecialWeekdays {
		adjustSpecialWeekdays(t, rel.Special.Amount)
	}
	t.Normalize()
}

// adjustSpecialWeekdays steps count weekdays from the current date, treating
// Saturday and Sunday as non-days in both directions
func adjustSpecialWeekdays(t *Time, count int64) {
	dow := DayOfWeek(t.Y, t.M, t.D)

	// whole increments of 5 weekdays are exactly a week
	t.D += (count / 5) * 7

	rem := count % 5

	if count > 0 {
		if rem == 0 {
			// head back to Friday when we stop on the weekend
			if dow == 0 {
				t.D -= 2
			} else if dow == 6 {
				t.D--
			}
		} else if dow == 6 {
			// landed on Saturday with work left: continue from Sunday
			t.D++
		} else if dow+rem > 5 {
			// stepping past Friday: hop the weekend
			t.D += 2
		}
	} else {
		if rem == 0 && dow == 0 {
			t.D -= 2
		} else if dow == 0 {
			// starting on Sunday: step back to Saturday and continue
			t.D--
		} else if dow+rem < 1 {
			// stepping past Monday: hop the weekend
			t.D -= 2
		}
	}

	t.D += rem
}

// adjustTimezone returns the seconds to add to wall seconds to reach UTC
// epoch seconds, resolving named zones against their transition table.
// For named zones it also stamps the resolved Z/DST onto the instant.
func adjustTimezone(t *Time) int64 {
	switch t.Zone.Kind {
	case ZoneOffset:
		return -t.Z
	case ZoneAbbr:
		return -t.Z - dstSeconds(t.DST)
	case ZoneID:
		tbl := t.Zone.MustTable()
		// two-step resolution: guess the offset at the wall value, then
		// refine at the guessed UTC instant
		before, _ := tbl.Lookup(t.SSE)
		after, _ := tbl.Lookup(t.SSE - before.Offset)
		t.Z = after.Offset
		t.DST = boolDST(after.DST)

		// a wall time inside a spring-forward gap keeps the pre-transition
		// offset, which lands it on the later side after reconversion
		inGap := t.SSE-after.Offset >= after.Transition+(before.Offset-after.Offset) &&
			t.SSE-after.Offset < after.Transition
		if before.Offset != after.Offset && !inGap {
			return -after.Offset
		}
		return -before.Offset
	}
	return 0
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
