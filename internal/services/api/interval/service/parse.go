package service

import (
	"fmt"
	"strconv"
	"strings"

	"chrono/internal/core/civil"
	"chrono/internal/core/interval"
	perr "chrono/internal/platform/errors"
	"chrono/internal/services/api/interval/domain"
)

// parseStamp turns a wire stamp into a fully resolved civil instant
func (s *Svc) parseStamp(in domain.Stamp) (*civil.Time, error) {
	t := &civil.Time{DST: civil.DSTUnknown}

	if err := parseValue(in.Value, t); err != nil {
		return nil, err
	}

	switch {
	case in.Zone != "":
		z, err := s.zones.Load(in.Zone)
		if err != nil {
			return nil, perr.InvalidArgf("unknown zone %q", in.Zone)
		}
		t.Zone = civil.Zone{Kind: civil.ZoneID, Name: z.Name(), Table: z}
	case in.Offset != "":
		off, err := ParseOffset(in.Offset)
		if err != nil {
			return nil, err
		}
		t.Z = off
		if in.Abbr != "" {
			t.Zone = civil.Zone{Kind: civil.ZoneAbbr, Name: in.Abbr}
			t.DST = civil.DSTOff
			if in.DST != nil && *in.DST {
				t.DST = civil.DSTOn
			}
		} else {
			t.Zone = civil.Zone{Kind: civil.ZoneOffset, Name: in.Offset}
		}
	default:
		t.Zone = civil.Zone{Kind: civil.ZoneOffset, Name: "UTC"}
	}

	// resolve the epoch value, then settle the fields on the resolved side
	// of any transition the wall value straddles
	civil.UpdateTS(t, nil)
	civil.UpdateFromSSE(t)
	return t, nil
}

// parseValue reads an ISO8601 wall value with optional fractional seconds
func parseValue(val string, t *civil.Time) error {
	if dot := strings.IndexByte(val, '.'); dot >= 0 {
		frac := val[dot+1:]
		val = val[:dot]
		if len(frac) == 0 || len(frac) > 6 {
			return perr.Validationf("fractional seconds must have 1 to 6 digits")
		}
		for len(frac) < 6 {
			frac += "0"
		}
		us, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return perr.Validationf("fractional seconds must be numeric")
		}
		t.US = us
	}

	if _, err := fmt.Sscanf(val, "%d-%d-%dT%d:%d:%d", &t.Y, &t.M, &t.D, &t.H, &t.I, &t.S); err != nil {
		return perr.Validationf("value must look like 2006-01-02T15:04:05")
	}
	return nil
}

// ParseOffset reads a fixed UTC offset into seconds east.
// Accepts Z, +hh, +hhmm and +hh:mm forms.
func ParseOffset(in string) (int64, error) {
	if in == "Z" || in == "z" {
		return 0, nil
	}
	if len(in) < 3 || (in[0] != '+' && in[0] != '-') {
		return 0, perr.Validationf("offset must look like +02:00")
	}

	body := strings.Replace(in[1:], ":", "", 1)
	if len(body) != 2 && len(body) != 4 {
		return 0, perr.Validationf("offset must look like +02:00")
	}

	h, err := strconv.ParseInt(body[:2], 10, 64)
	if err != nil {
		return 0, perr.Validationf("offset must look like +02:00")
	}
	var m int64
	if len(body) == 4 {
		if m, err = strconv.ParseInt(body[2:], 10, 64); err != nil || m > 59 {
			return 0, perr.Validationf("offset must look like +02:00")
		}
	}

	secs := h*civil.SecsPerHour + m*60
	if in[0] == '-' {
		secs = -secs
	}
	return secs, nil
}

// formatOffset renders seconds east as +hh:mm
func formatOffset(secs int64) string {
	sign := "+"
	if secs < 0 {
		sign = "-"
		secs = -secs
	}
	return fmt.Sprintf("%s%02d:%02d", sign, secs/civil.SecsPerHour, (secs%civil.SecsPerHour)/60)
}

// formatStamp renders a resolved instant for the wire
func formatStamp(t *civil.Time) domain.StampResult {
	val := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", t.Y, t.M, t.D, t.H, t.I, t.S)
	if t.US != 0 {
		val += fmt.Sprintf(".%06d", t.US)
	}

	out := domain.StampResult{
		Value: val,
		DST:   t.DST == civil.DSTOn,
		Epoch: t.SSE,
	}

	off := t.Z
	switch t.Zone.Kind {
	case civil.ZoneID:
		out.Zone = t.Zone.Name
	case civil.ZoneAbbr:
		out.Abbr = t.Zone.Name
		if t.DST == civil.DSTOn {
			off += civil.SecsPerHour
		}
	}
	out.Offset = formatOffset(off)
	return out
}

// specialKinds maps wire names onto the core variants
var specialKinds = map[string]civil.SpecialKind{
	"weekdays":           civil.SpecialWeekdays,
	"first_day_of_month": civil.SpecialFirstDayOfMonth,
	"last_day_of_month":  civil.SpecialLastDayOfMonth,
}

// toInterval turns a wire interval into the core representation
func toInterval(in domain.IntervalDTO) (*interval.Interval, error) {
	iv := interval.New()
	iv.Y = in.Years
	iv.M = in.Months
	iv.D = in.Days
	iv.H = in.Hours
	iv.I = in.Minutes
	iv.S = in.Seconds
	iv.US = in.Microseconds
	iv.Invert = in.Invert

	if in.Weekday != nil {
		iv.Weekday = &civil.WeekdayRel{Day: in.Weekday.Day, Behavior: in.Weekday.Behavior}
	}
	if in.Special != nil {
		kind, ok := specialKinds[in.Special.Kind]
		if !ok {
			return nil, perr.Validationf("unknown special kind %q", in.Special.Kind)
		}
		iv.Special = &civil.SpecialRel{Kind: kind, Amount: in.Special.Amount}
	}
	return iv, nil
}

// fromInterval renders a diff result for the wire
func fromInterval(iv *interval.Interval) domain.IntervalDTO {
	out := domain.IntervalDTO{
		Years:        iv.Y,
		Months:       iv.M,
		Days:         iv.D,
		Hours:        iv.H,
		Minutes:      iv.I,
		Seconds:      iv.S,
		Microseconds: iv.US,
		Invert:       iv.Invert,
	}
	if iv.Days != interval.DaysUnset {
		days := iv.Days
		out.TotalDays = &days
	}
	return out
}
