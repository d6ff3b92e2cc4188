package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusfleet/reservation-service/internal/clock"
	"github.com/campusfleet/reservation-service/internal/errs"
	"github.com/campusfleet/reservation-service/internal/model"
	"github.com/campusfleet/reservation-service/internal/repository"
	mock_repository "github.com/campusfleet/reservation-service/internal/repository/mocks"
	"github.com/campusfleet/reservation-service/internal/service"
	"github.com/campusfleet/reservation-service/pkg/kafka"
)

// Saturday morning; +72h lands on Tuesday morning.
var now = time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)

type fakeQueue struct {
	events []kafka.EventReservation
	err    error
}

func (q *fakeQueue) Enqueue(topic string, v any) error {
	if topic != kafka.TopicReservationEvents {
		panic("unexpected topic " + topic)
	}
	if event, ok := v.(kafka.EventReservation); ok {
		q.events = append(q.events, event)
	}
	return q.err
}

func newService(t *testing.T) (*service.Service, *mock_repository.MockRepository, *fakeQueue) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := mock_repository.NewMockRepository(ctrl)
	queue := &fakeQueue{}
	svc := service.NewService(repo, queue, clock.NewFixed(now), zap.NewNop())
	return svc, repo, queue
}

func datePtr(year int, month time.Month, day int) *model.Date {
	d := model.NewDate(year, month, day)
	return &d
}

func validRequest() model.CreateReservationRequest {
	return model.CreateReservationRequest{
		Purpose:         "Campus tour",
		Destination:     "Science Park",
		ReservationDate: datePtr(2024, time.June, 10),
		ReservationTime: "09:00",
		ReturnDate:      datePtr(2024, time.June, 11),
		ReturnTime:      "17:00",
		PassengerCount:  12,
		BusID:           1,
		Username:        "alice",
	}
}

func pendingReservation() model.Reservation {
	return model.Reservation{
		ID:              7,
		ReservationUID:  "res-uid-7",
		Username:        "alice",
		BusID:           1,
		Purpose:         "Campus tour",
		Destination:     "Science Park",
		ReservationDate: model.NewDate(2024, time.June, 10),
		ReservationTime: "09:00",
		ReturnDate:      model.NewDate(2024, time.June, 11),
		ReturnTime:      "17:00",
		PassengerCount:  12,
		Status:          model.StatusPending,
	}
}

func TestCreateReservation_Admitted(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newService(t)
	req := validRequest()

	repo.EXPECT().AdmitReservation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, draft model.Reservation) (model.Reservation, error) {
			require.NotEmpty(t, draft.ReservationUID)
			require.Equal(t, "alice", draft.Username)
			require.Equal(t, int64(1), draft.BusID)
			require.Equal(t, model.StatusPending, draft.Status)
			require.True(t, draft.ReservationDate.Equal(*req.ReservationDate))
			draft.ID = 7
			return draft, nil
		})

	created, err := svc.CreateReservation(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, int64(7), created.ID)
	require.Equal(t, model.StatusPending, created.Status)
}

func TestCreateReservation_AdmissionErrorMapping(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name    string
		repoErr error
		reasons []string
	}{
		{
			name:    "bus does not exist",
			repoErr: errs.ErrNotFound,
			reasons: []string{"Selected bus does not exist"},
		},
		{
			name:    "bus retired",
			repoErr: errs.ErrBusRetired,
			reasons: []string{"Selected bus is no longer in service"},
		},
		{
			name:    "bus disabled",
			repoErr: errs.ErrBusDisabled,
			reasons: []string{"Bus is currently disabled in system by administrator"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo, _ := newService(t)
			repo.EXPECT().AdmitReservation(gomock.Any(), gomock.Any()).
				Return(model.Reservation{}, tt.repoErr)

			_, err := svc.CreateReservation(context.Background(), validRequest())
			var verr *errs.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.reasons, verr.Reasons)
		})
	}
}

func TestCreateReservation_ConflictPassesThrough(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newService(t)

	conflict := &errs.ConflictError{
		Windows: []model.Window{{Start: model.NewDate(2024, time.June, 10), End: model.NewDate(2024, time.June, 11)}},
		Message: "Bus is already booked on: 2024-06-10 to 2024-06-11",
	}
	repo.EXPECT().AdmitReservation(gomock.Any(), gomock.Any()).
		Return(model.Reservation{}, conflict)

	_, err := svc.CreateReservation(context.Background(), validRequest())
	var cerr *errs.ConflictError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, conflict.Message, cerr.Message)
	require.Len(t, cerr.Windows, 1)
}

// A draft that fails field rules still reports bus-level problems so
// the requester sees everything at once.
func TestCreateReservation_ReasonsEnriched(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newService(t)

	req := validRequest()
	req.PassengerCount = 31

	deletedAt := now
	repo.EXPECT().GetBus(gomock.Any(), int64(1)).
		Return(model.Bus{ID: 1, Deleted: true, DeletedAt: &deletedAt}, nil)

	_, err := svc.CreateReservation(context.Background(), req)
	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{
		"Maximum of 30 passengers per bus",
		"Selected bus is no longer in service",
	}, verr.Reasons)
}

func TestCreateReservation_ReasonsEnrichedWithConflict(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newService(t)

	req := validRequest()
	req.Purpose = ""

	repo.EXPECT().GetBus(gomock.Any(), int64(1)).
		Return(model.Bus{ID: 1, Status: model.BusAvailable}, nil)
	repo.EXPECT().ActiveWindows(gomock.Any(), int64(1)).
		Return([]model.Window{{Start: model.NewDate(2024, time.June, 11), End: model.NewDate(2024, time.June, 12)}}, nil)

	_, err := svc.CreateReservation(context.Background(), req)
	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{
		"Purpose is required",
		"Bus is already booked on: 2024-06-11 to 2024-06-12",
	}, verr.Reasons)
}

func TestCancelReservation(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo, queue := newService(t)

		res := pendingReservation()
		cancelled := res
		cancelled.Status = model.StatusCancelled

		repo.EXPECT().GetReservationByUID(gomock.Any(), "res-uid-7").Return(res, nil)
		repo.EXPECT().CancelReservation(gomock.Any(), int64(7)).Return(cancelled, nil)

		updated, err := svc.CancelReservation(context.Background(), "alice", "res-uid-7")
		require.NoError(t, err)
		require.Equal(t, model.StatusCancelled, updated.Status)

		require.Len(t, queue.events, 1)
		require.Equal(t, "pending", queue.events[0].From)
		require.Equal(t, "cancelled", queue.events[0].To)
		require.Equal(t, "res-uid-7", queue.events[0].ReservationUID)
	})

	t.Run("foreign reservation reads as not found", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		repo.EXPECT().GetReservationByUID(gomock.Any(), "res-uid-7").Return(pendingReservation(), nil)

		_, err := svc.CancelReservation(context.Background(), "mallory", "res-uid-7")
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("terminal status", func(t *testing.T) {
		t.Parallel()
		svc, repo, queue := newService(t)
		res := pendingReservation()
		res.Status = model.StatusApproved
		repo.EXPECT().GetReservationByUID(gomock.Any(), "res-uid-7").Return(res, nil)

		_, err := svc.CancelReservation(context.Background(), "alice", "res-uid-7")
		var serr *errs.StateTransitionError
		require.ErrorAs(t, err, &serr)
		require.Equal(t, model.StatusApproved, serr.From)
		require.Empty(t, queue.events)
	})

	t.Run("departure already passed", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		res := pendingReservation()
		res.ReservationDate = model.NewDate(2024, time.May, 20)
		res.ReturnDate = model.NewDate(2024, time.May, 21)
		repo.EXPECT().GetReservationByUID(gomock.Any(), "res-uid-7").Return(res, nil)

		_, err := svc.CancelReservation(context.Background(), "alice", "res-uid-7")
		var serr *errs.StateTransitionError
		require.ErrorAs(t, err, &serr)
		require.Equal(t, "departure has already passed", serr.Reason)
	})

	t.Run("lost race against a decision", func(t *testing.T) {
		t.Parallel()
		svc, repo, queue := newService(t)
		repo.EXPECT().GetReservationByUID(gomock.Any(), "res-uid-7").Return(pendingReservation(), nil)
		repo.EXPECT().CancelReservation(gomock.Any(), int64(7)).Return(model.Reservation{}, errs.ErrNotFound)

		_, err := svc.CancelReservation(context.Background(), "alice", "res-uid-7")
		var serr *errs.StateTransitionError
		require.ErrorAs(t, err, &serr)
		require.Equal(t, "reservation is no longer pending", serr.Reason)
		require.Empty(t, queue.events)
	})
}

func TestDecideReservation(t *testing.T) {
	t.Parallel()

	t.Run("approve", func(t *testing.T) {
		t.Parallel()
		svc, repo, queue := newService(t)

		res := pendingReservation()
		driverID := int64(3)
		approved := res
		approved.Status = model.StatusApproved
		approved.DriverID = &driverID

		repo.EXPECT().GetReservationByUID(gomock.Any(), "res-uid-7").Return(res, nil)
		repo.EXPECT().DecideReservation(gomock.Any(), int64(7), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, p repository.DecideParams) (model.Reservation, error) {
				require.Equal(t, model.StatusApproved, p.To)
				require.Equal(t, &driverID, p.DriverID)
				require.Nil(t, p.Notes)
				require.Equal(t, now, p.DecidedAt)
				return approved, nil
			})

		updated, err := svc.DecideReservation(context.Background(), "res-uid-7", model.DecisionRequest{
			Decision: model.DecisionApprove,
			DriverID: &driverID,
		})
		require.NoError(t, err)
		require.Equal(t, model.StatusApproved, updated.Status)

		require.Len(t, queue.events, 1)
		require.Equal(t, "approved", queue.events[0].To)
	})

	t.Run("reject requires notes", func(t *testing.T) {
		t.Parallel()
		svc, _, queue := newService(t)

		_, err := svc.DecideReservation(context.Background(), "res-uid-7", model.DecisionRequest{
			Decision: model.DecisionReject,
			Notes:    "   ",
		})
		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, []string{"Rejection reason is required"}, verr.Reasons)
		require.Empty(t, queue.events)
	})

	t.Run("reject records notes", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)

		res := pendingReservation()
		rejected := res
		rejected.Status = model.StatusRejected

		repo.EXPECT().GetReservationByUID(gomock.Any(), "res-uid-7").Return(res, nil)
		repo.EXPECT().DecideReservation(gomock.Any(), int64(7), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, p repository.DecideParams) (model.Reservation, error) {
				require.Equal(t, model.StatusRejected, p.To)
				require.NotNil(t, p.Notes)
				require.Equal(t, "bus in maintenance", *p.Notes)
				return rejected, nil
			})

		updated, err := svc.DecideReservation(context.Background(), "res-uid-7", model.DecisionRequest{
			Decision: model.DecisionReject,
			Notes:    "bus in maintenance",
		})
		require.NoError(t, err)
		require.Equal(t, model.StatusRejected, updated.Status)
	})

	t.Run("terminal status", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		res := pendingReservation()
		res.Status = model.StatusCancelled
		repo.EXPECT().GetReservationByUID(gomock.Any(), "res-uid-7").Return(res, nil)

		_, err := svc.DecideReservation(context.Background(), "res-uid-7", model.DecisionRequest{Decision: model.DecisionApprove})
		var serr *errs.StateTransitionError
		require.ErrorAs(t, err, &serr)
		require.Equal(t, model.StatusCancelled, serr.From)
		require.Equal(t, model.StatusApproved, serr.To)
	})

	t.Run("lost race against a cancellation", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		repo.EXPECT().GetReservationByUID(gomock.Any(), "res-uid-7").Return(pendingReservation(), nil)
		repo.EXPECT().DecideReservation(gomock.Any(), int64(7), gomock.Any()).
			Return(model.Reservation{}, errs.ErrNotFound)

		_, err := svc.DecideReservation(context.Background(), "res-uid-7", model.DecisionRequest{Decision: model.DecisionApprove})
		var serr *errs.StateTransitionError
		require.ErrorAs(t, err, &serr)
		require.Equal(t, "reservation is no longer pending", serr.Reason)
	})
}

func TestCheckAvailability(t *testing.T) {
	t.Parallel()

	t.Run("free window", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)

		repo.EXPECT().GetBus(gomock.Any(), int64(1)).
			Return(model.Bus{ID: 1, BusName: "Bus 12", Status: model.BusAvailable}, nil)
		repo.EXPECT().ActiveWindows(gomock.Any(), int64(1)).Return(nil, nil)

		resp, err := svc.CheckAvailability(context.Background(), 1, model.NewDate(2024, time.June, 10), datePtr(2024, time.June, 11))
		require.NoError(t, err)
		require.True(t, resp.Available)
		require.Equal(t, "Bus 12", resp.BusName)
		require.Equal(t, "Bus is available from 2024-06-10 to 2024-06-11", resp.Message)
		require.Empty(t, resp.Conflicts)
	})

	t.Run("conflicting window", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)

		busy := model.Window{Start: model.NewDate(2024, time.June, 11), End: model.NewDate(2024, time.June, 12)}
		repo.EXPECT().GetBus(gomock.Any(), int64(1)).
			Return(model.Bus{ID: 1, BusName: "Bus 12", Status: model.BusAvailable}, nil)
		repo.EXPECT().ActiveWindows(gomock.Any(), int64(1)).Return([]model.Window{busy}, nil)

		resp, err := svc.CheckAvailability(context.Background(), 1, model.NewDate(2024, time.June, 10), datePtr(2024, time.June, 11))
		require.NoError(t, err)
		require.False(t, resp.Available)
		require.Equal(t, []model.Window{busy}, resp.Conflicts)
		require.Equal(t, 1, resp.ConflictCount)
	})

	t.Run("disabled bus short-circuits", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)

		repo.EXPECT().GetBus(gomock.Any(), int64(1)).
			Return(model.Bus{ID: 1, BusName: "Bus 12", Status: model.BusUnavailable}, nil)
		repo.EXPECT().ActiveWindows(gomock.Any(), int64(1)).Return(nil, nil)

		resp, err := svc.CheckAvailability(context.Background(), 1, model.NewDate(2024, time.June, 10), nil)
		require.NoError(t, err)
		require.False(t, resp.Available)
		require.Equal(t, errs.ErrBusDisabled.Error(), resp.Message)
	})

	t.Run("unknown bus", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)

		repo.EXPECT().GetBus(gomock.Any(), int64(99)).Return(model.Bus{}, errs.ErrNotFound)
		repo.EXPECT().ActiveWindows(gomock.Any(), int64(99)).Return(nil, nil).AnyTimes()

		_, err := svc.CheckAvailability(context.Background(), 99, model.NewDate(2024, time.June, 10), nil)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

// Publish failures are logged, never surfaced to the caller.
func TestTransitionEventFailureIsSwallowed(t *testing.T) {
	t.Parallel()
	svc, repo, queue := newService(t)
	queue.err = errs.ErrNotFound

	res := pendingReservation()
	cancelled := res
	cancelled.Status = model.StatusCancelled
	repo.EXPECT().GetReservationByUID(gomock.Any(), "res-uid-7").Return(res, nil)
	repo.EXPECT().CancelReservation(gomock.Any(), int64(7)).Return(cancelled, nil)

	updated, err := svc.CancelReservation(context.Background(), "alice", "res-uid-7")
	require.NoError(t, err)
	require.Equal(t, model.StatusCancelled, updated.Status)
}
