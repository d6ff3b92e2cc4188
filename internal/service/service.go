package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/campusfleet/reservation-service/internal/admission"
	"github.com/campusfleet/reservation-service/internal/clock"
	"github.com/campusfleet/reservation-service/internal/errs"
	"github.com/campusfleet/reservation-service/internal/model"
	"github.com/campusfleet/reservation-service/internal/repository"
	"github.com/campusfleet/reservation-service/internal/schedule"
	"github.com/campusfleet/reservation-service/pkg/kafka"
)

type Service struct {
	log   *zap.Logger
	repo  repository.Repository
	queue kafka.Enqueuer
	clock clock.Clock
}

func NewService(repo repository.Repository, queue kafka.Enqueuer, clk clock.Clock, log *zap.Logger) *Service {
	return &Service{
		log:   log,
		repo:  repo,
		queue: queue,
		clock: clk,
	}
}

// CheckAvailability is the advisory pre-submission check. It carries
// no authority: admission re-derives the same answer inside its own
// transaction.
func (s *Service) CheckAvailability(ctx context.Context, busID int64, date model.Date, returnDate *model.Date) (model.AvailabilityResponse, error) {
	var (
		bus     model.Bus
		windows []model.Window
	)
	gg, gctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		var err error
		bus, err = s.repo.GetBus(gctx, busID)
		return err
	})
	gg.Go(func() error {
		var err error
		windows, err = s.repo.ActiveWindows(gctx, busID)
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.AvailabilityResponse{}, err
	}

	resp := model.AvailabilityResponse{
		BusID:      busID,
		BusName:    bus.BusName,
		Date:       date,
		ReturnDate: returnDate,
		Conflicts:  []model.Window{},
	}

	if bus.Status == model.BusUnavailable {
		resp.Message = errs.ErrBusDisabled.Error()
		return resp, nil
	}

	end := date
	if returnDate != nil && !returnDate.IsZero() {
		end = *returnDate
	}
	result := schedule.Check(date, end, windows)
	resp.Available = result.Available
	resp.Message = result.Message
	if len(result.Conflicts) > 0 {
		resp.Conflicts = result.Conflicts
		resp.ConflictCount = len(result.Conflicts)
	}
	return resp, nil
}

// CreateReservation admits a reservation draft. Field rules are
// validated first with every failure collected; a clean draft then
// goes through the atomic admission transaction. Failures caused by
// the bus itself are folded into the same reason list so the requester
// always sees the full picture.
func (s *Service) CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error) {
	now := s.clock.Now()
	reasons := admission.Validate(req, now)

	if len(reasons) == 0 {
		draft := model.Reservation{
			ReservationUID:  uuid.NewString(),
			Username:        req.Username,
			BusID:           req.BusID,
			Purpose:         req.Purpose,
			Destination:     req.Destination,
			ReservationDate: *req.ReservationDate,
			ReservationTime: req.ReservationTime,
			ReturnDate:      *req.ReturnDate,
			ReturnTime:      req.ReturnTime,
			PassengerCount:  req.PassengerCount,
			Status:          model.StatusPending,
		}
		created, err := s.repo.AdmitReservation(ctx, draft)
		if err != nil {
			switch {
			case errors.Is(err, errs.ErrNotFound):
				return model.Reservation{}, &errs.ValidationError{Reasons: []string{"Selected bus does not exist"}}
			case errors.Is(err, errs.ErrBusRetired), errors.Is(err, errs.ErrBusDisabled):
				return model.Reservation{}, &errs.ValidationError{Reasons: []string{err.Error()}}
			}
			return model.Reservation{}, err
		}
		return created, nil
	}

	if req.BusID != 0 && req.ReservationDate != nil {
		more, err := s.eligibilityReasons(ctx, req)
		if err != nil {
			s.log.Warn("eligibility pre-check", zap.Error(err))
		} else {
			reasons = append(reasons, more...)
		}
	}
	return model.Reservation{}, &errs.ValidationError{Reasons: reasons}
}

// eligibilityReasons reproduces the bus and conflict checks read-only,
// for drafts that already failed field validation and will not be
// inserted anyway.
func (s *Service) eligibilityReasons(ctx context.Context, req model.CreateReservationRequest) ([]string, error) {
	bus, err := s.repo.GetBus(ctx, req.BusID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return []string{"Selected bus does not exist"}, nil
		}
		return nil, err
	}
	if bus.Deleted {
		return []string{errs.ErrBusRetired.Error()}, nil
	}
	if bus.Status == model.BusUnavailable {
		return []string{errs.ErrBusDisabled.Error()}, nil
	}

	windows, err := s.repo.ActiveWindows(ctx, req.BusID)
	if err != nil {
		return nil, err
	}
	end := *req.ReservationDate
	if req.ReturnDate != nil {
		end = *req.ReturnDate
	}
	if result := schedule.Check(*req.ReservationDate, end, windows); !result.Available {
		return []string{result.Message}, nil
	}
	return nil, nil
}

func (s *Service) GetReservations(ctx context.Context, username string) ([]model.Reservation, error) {
	return s.repo.ListReservationsByUser(ctx, username)
}

func (s *Service) ListReservations(ctx context.Context) ([]model.Reservation, error) {
	return s.repo.ListReservations(ctx)
}

// CancelReservation is requester-initiated and only legal while the
// reservation is still pending and its departure lies in the future.
func (s *Service) CancelReservation(ctx context.Context, username, uid string) (model.Reservation, error) {
	now := s.clock.Now()
	res, err := s.repo.GetReservationByUID(ctx, uid)
	if err != nil {
		return model.Reservation{}, err
	}
	if res.Username != username {
		return model.Reservation{}, errs.ErrNotFound
	}
	if !res.Status.CanTransition(model.StatusCancelled) {
		return model.Reservation{}, &errs.StateTransitionError{From: res.Status, To: model.StatusCancelled}
	}
	if !res.DepartureAt().After(now) {
		return model.Reservation{}, &errs.StateTransitionError{
			From:   res.Status,
			To:     model.StatusCancelled,
			Reason: "departure has already passed",
		}
	}

	updated, err := s.repo.CancelReservation(ctx, res.ID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			// Lost the race against a concurrent decision.
			return model.Reservation{}, &errs.StateTransitionError{
				From:   res.Status,
				To:     model.StatusCancelled,
				Reason: "reservation is no longer pending",
			}
		}
		return model.Reservation{}, err
	}
	s.emitTransition(updated, res.Status)
	return updated, nil
}

// DecideReservation applies an administrative approve or reject to a
// pending reservation; approval may also bind the driver or rebind
// the bus.
func (s *Service) DecideReservation(ctx context.Context, uid string, req model.DecisionRequest) (model.Reservation, error) {
	to := model.StatusApproved
	if req.Decision == model.DecisionReject {
		to = model.StatusRejected
		if strings.TrimSpace(req.Notes) == "" {
			return model.Reservation{}, &errs.ValidationError{Reasons: []string{"Rejection reason is required"}}
		}
	}

	res, err := s.repo.GetReservationByUID(ctx, uid)
	if err != nil {
		return model.Reservation{}, err
	}
	if !res.Status.CanTransition(to) {
		return model.Reservation{}, &errs.StateTransitionError{From: res.Status, To: to}
	}

	p := repository.DecideParams{
		To:        to,
		DriverID:  req.DriverID,
		BusID:     req.BusID,
		DecidedAt: s.clock.Now(),
	}
	if req.Notes != "" {
		notes := req.Notes
		p.Notes = &notes
	}
	updated, err := s.repo.DecideReservation(ctx, res.ID, p)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Reservation{}, &errs.StateTransitionError{
				From:   res.Status,
				To:     to,
				Reason: "reservation is no longer pending",
			}
		}
		return model.Reservation{}, err
	}
	s.emitTransition(updated, res.Status)
	return updated, nil
}

// emitTransition publishes the committed transition for notification
// dispatch. Publishing happens outside the storage transaction and a
// failure never rolls the transition back.
func (s *Service) emitTransition(res model.Reservation, from model.Status) {
	if s.queue == nil {
		return
	}
	event := kafka.EventReservation{
		ReservationUID: res.ReservationUID,
		Username:       res.Username,
		BusID:          res.BusID,
		From:           string(from),
		To:             string(res.Status),
		At:             s.clock.Now(),
	}
	if err := s.queue.Enqueue(kafka.TopicReservationEvents, event); err != nil {
		s.log.Error("enqueue reservation event",
			zap.String("reservationUid", res.ReservationUID), zap.Error(err))
	}
}

func (s *Service) CreateBus(ctx context.Context, req model.CreateBusRequest) (model.Bus, error) {
	return s.repo.CreateBus(ctx, req)
}

func (s *Service) UpdateBus(ctx context.Context, id int64, req model.UpdateBusRequest) (model.Bus, error) {
	return s.repo.UpdateBus(ctx, id, req)
}

func (s *Service) GetBus(ctx context.Context, id int64) (model.Bus, error) {
	return s.repo.GetBus(ctx, id)
}

func (s *Service) ListBuses(ctx context.Context, retired bool) ([]model.Bus, error) {
	return s.repo.ListBuses(ctx, retired)
}

func (s *Service) SetBusStatus(ctx context.Context, id int64, status model.BusStatus) (model.Bus, error) {
	return s.repo.SetBusStatus(ctx, id, status)
}

func (s *Service) RetireBus(ctx context.Context, id int64) (model.Bus, error) {
	return s.repo.RetireBus(ctx, id)
}

func (s *Service) RestoreBus(ctx context.Context, id int64) (model.Bus, error) {
	return s.repo.RestoreBus(ctx, id)
}
