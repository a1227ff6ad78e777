// Package domain holds DTOs for interval http and service contracts
package domain

// Timestamps travel as ISO8601 wall values without an offset suffix;
// the zone fields say how to anchor them

// Stamp is a civil timestamp plus its timezone reference.
// Zone wins when set; otherwise Offset (optionally labelled with Abbr)
// anchors the value, and an empty zone reference means UTC.
type Stamp struct {
	Value string `json:"value" validate:"required" example:"2023-03-12T01:30:00"`

	// Zone is an IANA identifier with full transition history
	Zone string `json:"zone,omitempty" example:"America/New_York"`

	// Offset is a fixed UTC offset
	Offset string `json:"offset,omitempty" validate:"omitempty,utcoffset" example:"+02:00"`

	// Abbr labels a fixed-offset stamp with an abbreviation; DST marks
	// whether summer time is in effect on top of the standard offset
	Abbr string `json:"abbr,omitempty" example:"EST"`
	DST  *bool  `json:"dst,omitempty" example:"false"`
}

// WeekdayDTO is the relative-weekday interval variant
type WeekdayDTO struct {
	// Day is the target weekday, 0 = Sunday
	Day int64 `json:"day" validate:"min=0,max=6" example:"2"`
	// Behavior 0 always advances, 1 stays put when already on the target,
	// 2 moves within the current week
	Behavior int `json:"behavior" validate:"min=0,max=2" example:"0"`
}

// SpecialDTO is the special interval variant
type SpecialDTO struct {
	Kind string `json:"kind" validate:"required,oneof=weekdays first_day_of_month last_day_of_month" example:"weekdays"`
	// Amount is the weekday count for kind weekdays
	Amount int64 `json:"amount,omitempty" example:"3"`
}

// IntervalDTO is the field-wise interval representation. Magnitudes are
// non-negative on diff output with Invert carrying the direction.
type IntervalDTO struct {
	Years        int64 `json:"years" example:"1"`
	Months       int64 `json:"months" example:"2"`
	Days         int64 `json:"days" example:"3"`
	Hours        int64 `json:"hours" example:"4"`
	Minutes      int64 `json:"minutes" example:"5"`
	Seconds      int64 `json:"seconds" example:"6"`
	Microseconds int64 `json:"microseconds" example:"0"`

	Invert bool `json:"invert,omitempty" example:"false"`

	// TotalDays is the authoritative whole-day count on diff output,
	// independent of the field decomposition; absent on hand-built intervals
	TotalDays *int64 `json:"total_days,omitempty" example:"428"`

	Weekday *WeekdayDTO `json:"weekday,omitempty"`
	Special *SpecialDTO `json:"special,omitempty"`
}

// DiffInput asks for the difference between two stamps
type DiffInput struct {
	One Stamp `json:"one"`
	Two Stamp `json:"two"`
}

// DaysResult carries a bare whole-day count
type DaysResult struct {
	Days int64 `json:"days" example:"428"`
}

// ApplyInput applies an interval to a base stamp.
// Mode absolute resolves the delta through the calendar fields; mode wall
// treats clock units as elapsed seconds. Direction defaults to add.
type ApplyInput struct {
	Base      Stamp       `json:"base"`
	Interval  IntervalDTO `json:"interval"`
	Mode      string      `json:"mode" validate:"required,oneof=absolute wall" example:"absolute"`
	Direction string      `json:"direction,omitempty" validate:"omitempty,oneof=add sub" example:"add"`
}

// StampResult is a resolved instant on the way out
type StampResult struct {
	Value string `json:"value" example:"2023-03-12T03:30:00"`
	Zone  string `json:"zone,omitempty" example:"America/New_York"`
	Abbr  string `json:"abbr,omitempty" example:"EDT"`
	// Offset is the effective UTC offset at the instant
	Offset string `json:"offset" example:"-04:00"`
	DST    bool   `json:"dst" example:"true"`
	Epoch  int64  `json:"epoch" example:"1678606200"`
}
