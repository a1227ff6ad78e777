package civil

// Month lengths, 1-indexed
var (
	daysInMonth     = [13]int64{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	daysInMonthLeap = [13]int64{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
)

// IsLeap reports whether y is a Gregorian leap year
func IsLeap(y int64) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

// DaysInMonth returns the length of month m in year y; m must be in [1,12]
func DaysInMonth(y, m int64) int64 {
	if IsLeap(y) {
		return daysInMonthLeap[m]
	}
	return daysInMonth[m]
}

// EpochDaysFromCivil converts a calendar date to an epoch-day number
// (days since 1970-01-01, negative before it). Hinnant's days_from_civil.
func EpochDaysFromCivil(y, m, d int64) int64 {
	if m <= 2 {
		y--
	}
	var era int64
	if y >= 0 {
		era = y / 400
	} else {
		era = (y - 399) / 400
	}
	yoe := y - era*400
	var mp int64
	if m > 2 {
		mp = m - 3
	} else {
		mp = m + 9
	}
	doy := (153*mp+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// CivilFromEpochDays is the inverse of EpochDaysFromCivil
func CivilFromEpochDays(z int64) (y, m, d int64) {
	z += 719468
	var era int64
	if z >= 0 {
		era = z / 146097
	} else {
		era = (z - 146096) / 146097
	}
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y = yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d = doy - (153*mp+2)/5 + 1
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return y, m, d
}

// DayOfWeek returns the weekday of a calendar date, 0 = Sunday
func DayOfWeek(y, m, d int64) int64 {
	// 1970-01-01 was a Thursday
	dow := (EpochDaysFromCivil(y, m, d) + 4) % 7
	if dow < 0 {
		dow += 7
	}
	return dow
}

// HMSToSeconds folds a time of day into seconds
func HMSToSeconds(h, i, s int64) int64 {
	return h*SecsPerHour + i*60 + s
}

// floorDiv divides with floor semantics so negative inputs round toward -inf
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// setCivilFromUnix rewrites the calendar fields from a shifted epoch value;
// microseconds are left untouched
func setCivilFromUnix(t *Time, secs int64) {
	days := floorDiv(secs, SecsPerDay)
	rem := secs - days*SecsPerDay
	t.Y, t.M, t.D = CivilFromEpochDays(days)
	t.H = rem / SecsPerHour
	t.I = (rem % SecsPerHour) / 60
	t.S = rem % 60
}
