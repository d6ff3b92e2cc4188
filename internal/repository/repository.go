package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/campusfleet/reservation-service/internal/errs"
	"github.com/campusfleet/reservation-service/internal/model"
	"github.com/campusfleet/reservation-service/internal/schedule"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	CreateBus(ctx context.Context, req model.CreateBusRequest) (model.Bus, error)
	UpdateBus(ctx context.Context, id int64, req model.UpdateBusRequest) (model.Bus, error)
	GetBus(ctx context.Context, id int64) (model.Bus, error)
	ListBuses(ctx context.Context, retired bool) ([]model.Bus, error)
	SetBusStatus(ctx context.Context, id int64, status model.BusStatus) (model.Bus, error)
	RetireBus(ctx context.Context, id int64) (model.Bus, error)
	RestoreBus(ctx context.Context, id int64) (model.Bus, error)

	ActiveWindows(ctx context.Context, busID int64) ([]model.Window, error)
	AdmitReservation(ctx context.Context, res model.Reservation) (model.Reservation, error)
	GetReservationByUID(ctx context.Context, uid string) (model.Reservation, error)
	ListReservationsByUser(ctx context.Context, username string) ([]model.Reservation, error)
	ListReservations(ctx context.Context) ([]model.Reservation, error)
	CancelReservation(ctx context.Context, id int64) (model.Reservation, error)
	DecideReservation(ctx context.Context, id int64, p DecideParams) (model.Reservation, error)
}

type DecideParams struct {
	To        model.Status
	Notes     *string
	DriverID  *int64
	BusID     *int64
	DecidedAt time.Time
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	busesTableName        = `buses`
	reservationsTableName = `reservations`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var busColumns = []string{
	"id", "bus_name", "plate_no", "capacity", "status", "deleted", "deleted_at", "created_at",
}

var reservationColumns = []string{
	"id", "reservation_uid", "username", "bus_id", "driver_id", "purpose", "destination",
	"reservation_date", "reservation_time", "return_date", "return_time",
	"passenger_count", "status", "admin_notes", "created_at", "approved_at",
}

func (r *repository) CreateBus(ctx context.Context, req model.CreateBusRequest) (model.Bus, error) {
	status := req.Status
	if status == "" {
		status = model.BusAvailable
	}
	q, args, err := qb.Insert(busesTableName).
		Columns("bus_name", "plate_no", "capacity", "status", "deleted").
		Values(req.BusName, req.PlateNo, req.Capacity, status, false).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Bus{}, err
	}
	var bus model.Bus
	if err := r.db.GetContext(ctx, &bus, q, args...); err != nil {
		r.log.Error("CreateBus", zap.String("q", q), zap.Any("args", args))
		return model.Bus{}, err
	}
	return bus, nil
}

func (r *repository) UpdateBus(ctx context.Context, id int64, req model.UpdateBusRequest) (model.Bus, error) {
	q, args, err := qb.Update(busesTableName).
		Set("bus_name", req.BusName).
		Set("plate_no", req.PlateNo).
		Set("capacity", req.Capacity).
		Set("status", req.Status).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Bus{}, err
	}
	var bus model.Bus
	if err := r.db.GetContext(ctx, &bus, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Bus{}, errs.ErrNotFound
		}
		return model.Bus{}, err
	}
	return bus, nil
}

func (r *repository) GetBus(ctx context.Context, id int64) (model.Bus, error) {
	q, args, err := qb.Select(busColumns...).
		From(busesTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Bus{}, err
	}
	var bus model.Bus
	if err := r.db.GetContext(ctx, &bus, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Bus{}, errs.ErrNotFound
		}
		return model.Bus{}, err
	}
	return bus, nil
}

func (r *repository) ListBuses(ctx context.Context, retired bool) ([]model.Bus, error) {
	q, args, err := qb.Select(busColumns...).
		From(busesTableName).
		Where(sq.Eq{"deleted": retired}).
		OrderBy("bus_name").
		ToSql()
	if err != nil {
		return nil, err
	}
	var buses []model.Bus
	if err := r.db.SelectContext(ctx, &buses, q, args...); err != nil {
		return nil, err
	}
	return buses, nil
}

func (r *repository) SetBusStatus(ctx context.Context, id int64, status model.BusStatus) (model.Bus, error) {
	q, args, err := qb.Update(busesTableName).
		Set("status", status).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Bus{}, err
	}
	var bus model.Bus
	if err := r.db.GetContext(ctx, &bus, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Bus{}, errs.ErrNotFound
		}
		return model.Bus{}, err
	}
	return bus, nil
}

// RetireBus soft-deletes the bus unless pending or approved
// reservations still reference it. The bus row is locked so a
// concurrent admission cannot slip in between the check and the flag.
func (r *repository) RetireBus(ctx context.Context, id int64) (model.Bus, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Bus{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	var busID int64
	if err := tx.GetContext(ctx, &busID,
		`select id from buses where id = $1 for update`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Bus{}, errs.ErrNotFound
		}
		return model.Bus{}, err
	}

	var blocking []int64
	if err := tx.SelectContext(ctx, &blocking,
		`select id from reservations
		 where bus_id = $1 and status in ('pending', 'approved')
		 order by id`, id); err != nil {
		return model.Bus{}, err
	}
	if len(blocking) > 0 {
		return model.Bus{}, &errs.RetireBlockedError{BlockingIDs: blocking}
	}

	var bus model.Bus
	if err := tx.GetContext(ctx, &bus,
		`update buses set deleted = true, deleted_at = now()
		 where id = $1 returning *`, id); err != nil {
		return model.Bus{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Bus{}, err
	}
	return bus, nil
}

func (r *repository) RestoreBus(ctx context.Context, id int64) (model.Bus, error) {
	var bus model.Bus
	err := r.db.GetContext(ctx, &bus,
		`update buses set deleted = false, deleted_at = NULL
		 where id = $1 returning *`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Bus{}, errs.ErrNotFound
		}
		return model.Bus{}, err
	}
	return bus, nil
}

type windowRow struct {
	ReservationDate model.Date  `db:"reservation_date"`
	ReturnDate      *model.Date `db:"return_date"`
}

func (r *repository) ActiveWindows(ctx context.Context, busID int64) ([]model.Window, error) {
	return activeWindows(ctx, r.db, busID)
}

func activeWindows(ctx context.Context, q sqlx.QueryerContext, busID int64) ([]model.Window, error) {
	var rows []windowRow
	if err := sqlx.SelectContext(ctx, q, &rows,
		`select reservation_date, return_date from reservations
		 where bus_id = $1 and status in ('pending', 'approved')
		 order by id`, busID); err != nil {
		return nil, err
	}
	windows := make([]model.Window, 0, len(rows))
	for _, row := range rows {
		windows = append(windows, model.NewWindow(row.ReservationDate, row.ReturnDate))
	}
	return windows, nil
}

// AdmitReservation is the authoritative admission unit: it locks the
// bus row, re-checks eligibility and conflict-freedom against the
// locked snapshot and inserts, all in one transaction. Of two
// concurrent overlapping admissions exactly one commits; the other
// sees a fresh conflict here.
func (r *repository) AdmitReservation(ctx context.Context, res model.Reservation) (model.Reservation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Reservation{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	var bus model.Bus
	if err := tx.GetContext(ctx, &bus,
		`select * from buses where id = $1 for update`, res.BusID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, errs.ErrNotFound
		}
		return model.Reservation{}, err
	}
	if bus.Deleted {
		return model.Reservation{}, errs.ErrBusRetired
	}
	if bus.Status == model.BusUnavailable {
		return model.Reservation{}, errs.ErrBusDisabled
	}

	windows, err := activeWindows(ctx, tx, res.BusID)
	if err != nil {
		return model.Reservation{}, err
	}
	result := schedule.Check(res.ReservationDate, res.ReturnDate, windows)
	if !result.Available {
		return model.Reservation{}, &errs.ConflictError{
			Windows: result.Conflicts,
			Message: result.Message,
		}
	}

	q, args, err := qb.Insert(reservationsTableName).
		Columns("reservation_uid", "username", "bus_id", "driver_id", "purpose", "destination",
			"reservation_date", "reservation_time", "return_date", "return_time",
			"passenger_count", "status").
		Values(res.ReservationUID, res.Username, res.BusID, nil, res.Purpose, res.Destination,
			res.ReservationDate, res.ReservationTime, res.ReturnDate, res.ReturnTime,
			res.PassengerCount, res.Status).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var created model.Reservation
	if err := tx.GetContext(ctx, &created, q, args...); err != nil {
		if isExclusionViolation(err) {
			return model.Reservation{}, &errs.ConflictError{
				Message: "Bus is already booked for the requested dates",
			}
		}
		r.log.Error("AdmitReservation", zap.String("q", q), zap.Any("args", args))
		return model.Reservation{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Reservation{}, err
	}
	return created, nil
}

func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation
}

func (r *repository) GetReservationByUID(ctx context.Context, uid string) (model.Reservation, error) {
	q, args, err := qb.Select(reservationColumns...).
		From(reservationsTableName).
		Where(sq.Eq{"reservation_uid": uid}).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var res model.Reservation
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, errs.ErrNotFound
		}
		return model.Reservation{}, err
	}
	return res, nil
}

func (r *repository) ListReservationsByUser(ctx context.Context, username string) ([]model.Reservation, error) {
	q, args, err := qb.Select(reservationColumns...).
		From(reservationsTableName).
		Where(sq.Eq{"username": username}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Reservation
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ListReservations(ctx context.Context) ([]model.Reservation, error) {
	q, args, err := qb.Select(reservationColumns...).
		From(reservationsTableName).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Reservation
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// CancelReservation flips a still-pending reservation to cancelled.
// The status guard in the where clause makes a lost race visible as
// ErrNotFound, which the service turns into a transition error.
func (r *repository) CancelReservation(ctx context.Context, id int64) (model.Reservation, error) {
	var res model.Reservation
	err := r.db.GetContext(ctx, &res,
		`update reservations set status = 'cancelled'
		 where id = $1 and status = 'pending'
		 returning *`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, errs.ErrNotFound
		}
		return model.Reservation{}, err
	}
	return res, nil
}

func (r *repository) DecideReservation(ctx context.Context, id int64, p DecideParams) (model.Reservation, error) {
	b := qb.Update(reservationsTableName).
		Set("status", p.To).
		Set("approved_at", p.DecidedAt)
	if p.Notes != nil {
		b = b.Set("admin_notes", *p.Notes)
	}
	if p.DriverID != nil {
		b = b.Set("driver_id", *p.DriverID)
	}
	if p.BusID != nil {
		b = b.Set("bus_id", *p.BusID)
	}
	q, args, err := b.
		Where(sq.Eq{"id": id, "status": model.StatusPending}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var res model.Reservation
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, errs.ErrNotFound
		}
		// Rebinding the bus can collide with its existing bookings.
		if isExclusionViolation(err) {
			return model.Reservation{}, &errs.ConflictError{
				Message: "Bus is already booked for the requested dates",
			}
		}
		r.log.Error("DecideReservation", zap.String("q", q), zap.Any("args", args))
		return model.Reservation{}, err
	}
	return res, nil
}
