package module

import (
	"context"

	"chrono/internal/services/api/interval/domain"
	intervalsvc "chrono/internal/services/api/interval/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptIntervalPort struct{ svc intervalsvc.Service }

// Diff returns the calendrical difference between the two stamps
func (a adaptIntervalPort) Diff(ctx context.Context, in domain.DiffInput) (domain.IntervalDTO, error) {
	return a.svc.Diff(ctx, in)
}

// DiffDays returns only the whole-day count between the two stamps
func (a adaptIntervalPort) DiffDays(ctx context.Context, in domain.DiffInput) (domain.DaysResult, error) {
	return a.svc.DiffDays(ctx, in)
}

// Apply moves the base stamp by the given interval
func (a adaptIntervalPort) Apply(ctx context.Context, in domain.ApplyInput) (domain.StampResult, error) {
	return a.svc.Apply(ctx, in)
}
