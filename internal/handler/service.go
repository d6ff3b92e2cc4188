package handler

import (
	"context"

	"github.com/campusfleet/reservation-service/internal/model"
	"github.com/campusfleet/reservation-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type ReservationService interface {
	CheckAvailability(ctx context.Context, busID int64, date model.Date, returnDate *model.Date) (model.AvailabilityResponse, error)
	CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error)
	GetReservations(ctx context.Context, username string) ([]model.Reservation, error)
	ListReservations(ctx context.Context) ([]model.Reservation, error)
	CancelReservation(ctx context.Context, username, uid string) (model.Reservation, error)
	DecideReservation(ctx context.Context, uid string, req model.DecisionRequest) (model.Reservation, error)

	CreateBus(ctx context.Context, req model.CreateBusRequest) (model.Bus, error)
	UpdateBus(ctx context.Context, id int64, req model.UpdateBusRequest) (model.Bus, error)
	GetBus(ctx context.Context, id int64) (model.Bus, error)
	ListBuses(ctx context.Context, retired bool) ([]model.Bus, error)
	SetBusStatus(ctx context.Context, id int64, status model.BusStatus) (model.Bus, error)
	RetireBus(ctx context.Context, id int64) (model.Bus, error)
	RestoreBus(ctx context.Context, id int64) (model.Bus, error)
}

var _ ReservationService = (*service.Service)(nil)
