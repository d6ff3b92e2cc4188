package model

import (
	"time"
)

type BusStatus string

const (
	BusAvailable   BusStatus = "available"
	BusUnavailable BusStatus = "unavailable"
)

// Bus is a bookable vehicle. Deleted marks a soft retirement: the row
// stays addressable for history but is excluded from active listings
// and new admissions.
type Bus struct {
	ID        int64      `json:"id" db:"id"`
	BusName   string     `json:"busName" db:"bus_name"`
	PlateNo   string     `json:"plateNo" db:"plate_no"`
	Capacity  int        `json:"capacity" db:"capacity"`
	Status    BusStatus  `json:"status" db:"status"`
	Deleted   bool       `json:"deleted" db:"deleted"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

type Reservation struct {
	ID              int64      `json:"-" db:"id"`
	ReservationUID  string     `json:"reservationUid" db:"reservation_uid"`
	Username        string     `json:"username" db:"username"`
	BusID           int64      `json:"busId" db:"bus_id"`
	DriverID        *int64     `json:"driverId,omitempty" db:"driver_id"`
	Purpose         string     `json:"purpose" db:"purpose"`
	Destination     string     `json:"destination" db:"destination"`
	ReservationDate Date       `json:"reservationDate" db:"reservation_date"`
	ReservationTime TimeOfDay  `json:"reservationTime" db:"reservation_time"`
	ReturnDate      Date       `json:"returnDate" db:"return_date"`
	ReturnTime      TimeOfDay  `json:"returnTime" db:"return_time"`
	PassengerCount  int        `json:"passengerCount" db:"passenger_count"`
	Status          Status     `json:"status" db:"status"`
	AdminNotes      *string    `json:"adminNotes,omitempty" db:"admin_notes"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty" db:"approved_at"`
}

// DepartureAt is the combined departure instant.
func (r Reservation) DepartureAt() time.Time {
	return r.ReservationDate.At(r.ReservationTime)
}

// Window is the inclusive date span the reservation occupies its bus.
func (r Reservation) Window() Window {
	return NewWindow(r.ReservationDate, &r.ReturnDate)
}

// Window is an inclusive [Start, End] date span.
type Window struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// NewWindow normalizes a missing or zero return date to a single-day
// span, mirroring COALESCE(return_date, reservation_date).
func NewWindow(start Date, ret *Date) Window {
	if ret == nil || ret.IsZero() {
		return Window{Start: start, End: start}
	}
	return Window{Start: start, End: *ret}
}

func (w Window) String() string {
	if w.Start.Equal(w.End) {
		return w.Start.String()
	}
	return w.Start.String() + " to " + w.End.String()
}

func (w Window) Contains(d Date) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

type CreateReservationRequest struct {
	Purpose         string    `json:"purpose"`
	Destination     string    `json:"destination"`
	ReservationDate *Date     `json:"reservationDate"`
	ReservationTime TimeOfDay `json:"reservationTime"`
	ReturnDate      *Date     `json:"returnDate"`
	ReturnTime      TimeOfDay `json:"returnTime"`
	PassengerCount  int       `json:"passengerCount"`
	BusID           int64     `json:"busId"`
	Username        string    `json:"-"`
}

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

type DecisionRequest struct {
	Decision Decision `json:"decision" validate:"required,oneof=approve reject"`
	Notes    string   `json:"notes" validate:"required_if=Decision reject"`
	DriverID *int64   `json:"driverId"`
	BusID    *int64   `json:"busId"`
}

type CreateBusRequest struct {
	BusName  string    `json:"busName" validate:"required"`
	PlateNo  string    `json:"plateNo" validate:"required"`
	Capacity int       `json:"capacity" validate:"required,gt=0"`
	Status   BusStatus `json:"status" validate:"omitempty,oneof=available unavailable"`
}

type UpdateBusRequest struct {
	BusName  string    `json:"busName" validate:"required"`
	PlateNo  string    `json:"plateNo" validate:"required"`
	Capacity int       `json:"capacity" validate:"required,gt=0"`
	Status   BusStatus `json:"status" validate:"required,oneof=available unavailable"`
}

type SetBusStatusRequest struct {
	Status BusStatus `json:"status" validate:"required,oneof=available unavailable"`
}

type AvailabilityResponse struct {
	Available     bool     `json:"available"`
	BusID         int64    `json:"busId"`
	BusName       string   `json:"busName"`
	Date          Date     `json:"date"`
	ReturnDate    *Date    `json:"returnDate,omitempty"`
	ConflictCount int      `json:"conflictCount"`
	Conflicts     []Window `json:"conflicts"`
	Message       string   `json:"message"`
}
