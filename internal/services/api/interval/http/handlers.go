// Package http provides http transport for interval calculations
package http

import (
	stdhttp "net/http"

	"chrono/internal/modkit/httpkit"
	"chrono/internal/services/api/interval/domain"
	svc "chrono/internal/services/api/interval/service"
)

// Register mounts interval endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// field-wise difference between two stamps
	httpkit.PostJSON[domain.DiffInput](r, "/diff", h.diff)

	// whole-day count only
	httpkit.PostJSON[domain.DiffInput](r, "/days", h.days)

	// move a stamp by an interval
	httpkit.PostJSON[domain.ApplyInput](r, "/apply", h.apply)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /interval/diff Interval intervalDiff
// @Summary Difference between two civil timestamps
// @Tags Interval
// @Accept json
// @Produce json
// @Param payload body domain.DiffInput true "Stamps"
// @Success 200 {object} domain.IntervalDTO "ok"
// @Router /interval/diff [post]
func (h *handlers) diff(r *stdhttp.Request, in domain.DiffInput) (any, error) {
	return h.svc.Diff(r.Context(), in)
}

// swagger:route POST /interval/days Interval intervalDays
// @Summary Whole days between two civil timestamps
// @Tags Interval
// @Accept json
// @Produce json
// @Param payload body domain.DiffInput true "Stamps"
// @Success 200 {object} domain.DaysResult "ok"
// @Router /interval/days [post]
func (h *handlers) days(r *stdhttp.Request, in domain.DiffInput) (any, error) {
	return h.svc.DiffDays(r.Context(), in)
}

// swagger:route POST /interval/apply Interval intervalApply
// @Summary Apply an interval to a civil timestamp
// @Tags Interval
// @Accept json
// @Produce json
// @Param payload body domain.ApplyInput true "Base and interval"
// @Success 200 {object} domain.StampResult "ok"
// @Router /interval/apply [post]
func (h *handlers) apply(r *stdhttp.Request, in domain.ApplyInput) (any, error) {
	return h.svc.Apply(r.Context(), in)
}
