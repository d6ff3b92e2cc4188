// Package admission validates a reservation draft before creation.
// Every rule is checked and every failure collected, so a requester
// sees all problems with the draft at once; only checks whose inputs
// are missing are skipped.
package admission

import (
	"time"

	"github.com/campusfleet/reservation-service/internal/model"
)

const (
	// LeadTime is the minimum gap between submission and departure.
	LeadTime = 72 * time.Hour
	// MaxPassengers is the per-bus passenger ceiling.
	MaxPassengers = 30
	// BlackoutWeekday bars both departure and return.
	BlackoutWeekday = time.Sunday

	earliestLayout = "January 02, 2006 3:04 PM"
)

// Validate applies the field rules to the draft and returns the
// ordered reason list, empty when the draft is clean. Resource
// eligibility and conflict-freedom are checked by the caller against
// storage and appended after these.
func Validate(req model.CreateReservationRequest, now time.Time) []string {
	var reasons []string

	if req.Purpose == "" {
		reasons = append(reasons, "Purpose is required")
	}
	if req.Destination == "" {
		reasons = append(reasons, "Destination is required")
	}
	if req.ReservationDate == nil {
		reasons = append(reasons, "Departure date is required")
	}
	if req.ReservationTime == "" {
		reasons = append(reasons, "Departure time is required")
	}
	if req.ReturnDate == nil {
		reasons = append(reasons, "Return date is required - the bus needs to know when to pick you up")
	}
	if req.ReturnTime == "" {
		reasons = append(reasons, "Return time is required - specify when to be picked up from destination")
	}

	if req.ReservationDate != nil {
		departure := req.ReservationDate.At(req.ReservationTime)
		if departure.Before(now.Add(LeadTime)) {
			earliest := now.Add(LeadTime)
			reasons = append(reasons,
				"Reservations must be made at least 3 days (72 hours) in advance. Earliest available date: "+
					earliest.Format(earliestLayout))
		}
		if !departure.After(now) {
			reasons = append(reasons, "Cannot reserve for past dates")
		}
		if req.ReservationDate.Weekday() == BlackoutWeekday {
			reasons = append(reasons, "Reservations on Sundays are not allowed")
		}
	}
	if req.ReturnDate != nil && req.ReturnDate.Weekday() == BlackoutWeekday {
		reasons = append(reasons, "Return date cannot be on Sunday")
	}

	if req.ReturnDate != nil && req.ReservationDate != nil {
		if req.ReturnDate.Before(*req.ReservationDate) {
			reasons = append(reasons, "Return date cannot be before departure date")
		}
		if req.ReturnDate.Equal(*req.ReservationDate) &&
			req.ReturnTime != "" && req.ReservationTime != "" &&
			!req.ReturnTime.After(req.ReservationTime) {
			reasons = append(reasons, "Return time must be after departure time on same-day trips")
		}
	}

	if req.PassengerCount < 1 {
		reasons = append(reasons, "Valid passenger count is required")
	} else if req.PassengerCount > MaxPassengers {
		reasons = append(reasons, "Maximum of 30 passengers per bus")
	}

	if req.BusID == 0 {
		reasons = append(reasons, "Please select a bus")
	}

	return reasons
}
