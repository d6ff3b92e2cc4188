// Package schedule decides whether a requested date window collides
// with a bus's existing pending/approved reservations. It is pure: the
// caller supplies the reservation windows, nothing is read or written.
package schedule

import (
	"strings"

	"github.com/campusfleet/reservation-service/internal/model"
)

type Result struct {
	Available bool
	Conflicts []model.Window
	Message   string
}

// Check tests the window [start, end] against existing reservation
// windows, in reservation order.
//
// A genuine round trip (end != start) conflicts with an existing
// window when the existing departure falls inside the request, the
// existing return falls inside the request, or the existing window
// fully contains the request. A single-day check (end == start) is a
// point-in-interval test instead. The two forms are intentionally kept
// as separate code paths; see the boundary tests before merging them.
func Check(start, end model.Date, existing []model.Window) Result {
	var conflicts []model.Window
	if !end.Equal(start) {
		req := model.Window{Start: start, End: end}
		for _, w := range existing {
			if req.Contains(w.Start) || req.Contains(w.End) ||
				(!w.Start.After(start) && !w.End.Before(end)) {
				conflicts = append(conflicts, w)
			}
		}
	} else {
		for _, w := range existing {
			if w.Contains(start) {
				conflicts = append(conflicts, w)
			}
		}
	}

	if len(conflicts) > 0 {
		return Result{
			Conflicts: conflicts,
			Message:   bookedMessage(conflicts),
		}
	}

	msg := "Bus is available on " + start.String()
	if !end.Equal(start) {
		msg = "Bus is available from " + start.String() + " to " + end.String()
	}
	return Result{Available: true, Message: msg}
}

func bookedMessage(conflicts []model.Window) string {
	spans := make([]string, 0, len(conflicts))
	for _, w := range conflicts {
		spans = append(spans, w.String())
	}
	return "Bus is already booked on: " + strings.Join(spans, ", ")
}
