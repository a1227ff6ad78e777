// Package service contains the interval calculation workflows
package service

import (
	"context"

	"chrono/internal/core/interval"
	"chrono/internal/core/tzdb"
	perr "chrono/internal/platform/errors"
	"chrono/internal/services/api/interval/domain"
)

// Service defines the interval service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the interval service
type Svc struct {
	zones *tzdb.Provider
}

// New constructs an interval service
func New(zones *tzdb.Provider) *Svc {
	if zones == nil {
		panic("interval.Service requires a non nil zone provider")
	}
	return &Svc{zones: zones}
}

// Diff returns the calendrical difference between the two stamps
func (s *Svc) Diff(_ context.Context, in domain.DiffInput) (domain.IntervalDTO, error) {
	one, err := s.parseStamp(in.One)
	if err != nil {
		return domain.IntervalDTO{}, perr.WithField(err, "one")
	}
	two, err := s.parseStamp(in.Two)
	if err != nil {
		return domain.IntervalDTO{}, perr.WithField(err, "two")
	}

	return fromInterval(interval.Diff(one, two)), nil
}

// DiffDays returns only the whole-day count between the two stamps
func (s *Svc) DiffDays(_ context.Context, in domain.DiffInput) (domain.DaysResult, error) {
	one, err := s.parseStamp(in.One)
	if err != nil {
		return domain.DaysResult{}, perr.WithField(err, "one")
	}
	two, err := s.parseStamp(in.Two)
	if err != nil {
		return domain.DaysResult{}, perr.WithField(err, "two")
	}

	return domain.DaysResult{Days: interval.DiffDays(one, two)}, nil
}

// Apply moves the base stamp by the given interval
func (s *Svc) Apply(_ context.Context, in domain.ApplyInput) (domain.StampResult, error) {
	base, err := s.parseStamp(in.Base)
	if err != nil {
		return domain.StampResult{}, perr.WithField(err, "base")
	}
	iv, err := toInterval(in.Interval)
	if err != nil {
		return domain.StampResult{}, err
	}

	sub := in.Direction == "sub"

	var out = base
	switch in.Mode {
	case "absolute":
		if sub {
			out = interval.Sub(base, iv)
		} else {
			out = interval.Add(base, iv)
		}
	case "wall":
		if sub {
			out = interval.SubWall(base, iv)
		} else {
			out = interval.AddWall(base, iv)
		}
	default:
		return domain.StampResult{}, perr.Validationf("mode must be absolute or wall")
	}

	return formatStamp(out), nil
}
