package interval

import (
	"chrono/internal/core/civil"
)

// Add applies iv to t through the calendar fields: the delta is stamped as a
// relative adjustment and resolved by a full epoch recomputation, so date
// units keep the wall clock across offset transitions. Inverted intervals
// subtract. Returns a new instant; t is not mutated.
func Add(t *civil.Time, iv *Interval) *civil.Time {
	r := t.Clone()

	var rel *civil.Rel
	if iv.Weekday != nil || iv.Special != nil {
		// relative variants carry the interval verbatim, direction included
		rel = iv.rel(1)
		attachVariants(rel, iv)
	} else {
		rel = iv.rel(bias(iv))
	}

	civil.UpdateTS(r, rel)
	civil.UpdateFromSSE(r)
	return r
}

// Sub applies iv to t in the opposite direction. Weekday and special
// variants do not invert meaningfully and are ignored; only the numeric
// fields are applied, negated.
func Sub(t *civil.Time, iv *Interval) *civil.Time {
	r := t.Clone()

	civil.UpdateTS(r, iv.rel(-bias(iv)))
	civil.UpdateFromSSE(r)
	return r
}

// AddWall applies iv to t treating clock units as elapsed time: year, month
// and day move through the calendar fields, while hours, minutes, seconds
// and microseconds shift the epoch value directly. Adding 24 hours therefore
// lands exactly 86400 seconds later even across a transition. Returns a new
// instant; t is not mutated.
func AddWall(t *civil.Time, iv *Interval) *civil.Time {
	return applyWall(t, iv, 1)
}

// SubWall is AddWall in the opposite direction
func SubWall(t *civil.Time, iv *Interval) *civil.Time {
	return applyWall(t, iv, -1)
}

func applyWall(t *civil.Time, iv *Interval, direction int64) *civil.Time {
	r := t.Clone()

	if iv.Weekday != nil || iv.Special != nil {
		rel := iv.rel(1)
		attachVariants(rel, iv)

		civil.UpdateTS(r, rel)
		civil.UpdateFromSSE(r)
	} else {
		b := bias(iv) * direction

		if iv.Y != 0 || iv.M != 0 || iv.D != 0 {
			civil.UpdateTS(r, &civil.Rel{Y: iv.Y * b, M: iv.M * b, D: iv.D * b})
		}

		if iv.US == 0 {
			r.SSE += b * civil.HMSToSeconds(iv.H, iv.I, iv.S)
			civil.UpdateFromSSE(r)
		} else {
			// fold the sub-second part into whole seconds first, then patch
			// the remainder back in after the epoch shift
			tmp := iv.Clone()
			civil.RangeLimit(0, civil.USecsPerSec, civil.USecsPerSec, &tmp.US, &tmp.S)

			r.SSE += b * civil.HMSToSeconds(tmp.H, tmp.I, tmp.S)
			civil.UpdateFromSSE(r)
			r.US += tmp.US * b

			r.Normalize()
			civil.UpdateTS(r, nil)
		}
		r.Normalize()
	}

	// the epoch moved, so a named zone's offset/DST must be re-derived
	if r.Zone.Kind == civil.ZoneID {
		civil.ApplyZone(r, r.Zone.MustTable())
	}
	return r
}

// bias is the sign the numeric fields are applied with
func bias(iv *Interval) int64 {
	if iv.Invert {
		return -1
	}
	return 1
}

// attachVariants deep-copies the relative variants onto rel so the
// adjustment never mutates the interval
func attachVariants(rel *civil.Rel, iv *Interval) {
	if iv.Weekday != nil {
		wd := *iv.Weekday
		rel.Weekday = &wd
	}
	if iv.Special != nil {
		sp := *iv.Special
		rel.Special = &sp
	}
}
