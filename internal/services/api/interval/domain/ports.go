package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Diff(ctx context.Context, in DiffInput) (IntervalDTO, error)
	DiffDays(ctx context.Context, in DiffInput) (DaysResult, error)
	Apply(ctx context.Context, in ApplyInput) (StampResult, error)
}
