package handler

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/campusfleet/reservation-service/internal/errs"
	"github.com/campusfleet/reservation-service/internal/model"
	"github.com/campusfleet/reservation-service/pkg/auth"
	"github.com/campusfleet/reservation-service/pkg/validate"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	reservationSvc ReservationService
	log            *zap.Logger
}

func New(reservationSrv ReservationService, log *zap.Logger) *Handler {
	return &Handler{
		reservationSvc: reservationSrv,
		log:            log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig()),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
		auth.AuthContext,
	)

	api.GET("/availability", h.CheckAvailability)
	api.GET("/buses", h.ListBuses)
	api.GET("/reservations", h.GetReservations)
	api.POST("/reservations", h.CreateReservation)
	api.POST("/reservations/:reservationUid/cancel", h.CancelReservation)

	admin := api.Group("", auth.AdminOnly)
	admin.GET("/admin/reservations", h.ListReservations)
	admin.POST("/reservations/:reservationUid/decision", h.DecideReservation)
	admin.POST("/buses", h.CreateBus)
	admin.PUT("/buses/:id", h.UpdateBus)
	admin.PATCH("/buses/:id/status", h.SetBusStatus)
	admin.DELETE("/buses/:id", h.RetireBus)
	admin.POST("/buses/:id/restore", h.RestoreBus)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) CheckAvailability(c echo.Context) error {
	busIDRaw := c.QueryParam("busId")
	dateRaw := c.QueryParam("date")
	if busIDRaw == "" || dateRaw == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required parameters: date and busId")
	}
	busID, err := strconv.ParseInt(busIDRaw, 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "busId must be an integer")
	}
	date, err := model.ParseDate(dateRaw)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	var returnDate *model.Date
	if raw := c.QueryParam("returnDate"); raw != "" {
		parsed, err := model.ParseDate(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "returnDate must be YYYY-MM-DD")
		}
		returnDate = &parsed
	}

	resp, err := h.reservationSvc.CheckAvailability(c.Request().Context(), busID, date, returnDate)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Bus does not exist in system")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, resp)
}

type reasonsResponse struct {
	Reasons []string `json:"reasons"`
}

type conflictResponse struct {
	Reasons   []string       `json:"reasons"`
	Conflicts []model.Window `json:"conflicts"`
}

func (h *Handler) CreateReservation(c echo.Context) error {
	var req model.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	userName, err := auth.UserName(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	req.Username = userName

	resp, err := h.reservationSvc.CreateReservation(c.Request().Context(), req)
	if err != nil {
		var vErr *errs.ValidationError
		if errors.As(err, &vErr) {
			return c.JSON(http.StatusBadRequest, reasonsResponse{Reasons: vErr.Reasons})
		}
		var cErr *errs.ConflictError
		if errors.As(err, &cErr) {
			conflicts := cErr.Windows
			if conflicts == nil {
				conflicts = []model.Window{}
			}
			return c.JSON(http.StatusConflict, conflictResponse{
				Reasons:   []string{cErr.Error()},
				Conflicts: conflicts,
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) GetReservations(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	rsv, err := h.reservationSvc.GetReservations(ctx, userName)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rsv)
}

func (h *Handler) ListReservations(c echo.Context) error {
	rsv, err := h.reservationSvc.ListReservations(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rsv)
}

func (h *Handler) CancelReservation(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	reservationUid := c.Param("reservationUid")
	if reservationUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reservationUid is empty")
	}
	res, err := h.reservationSvc.CancelReservation(ctx, userName, reservationUid)
	if err != nil {
		return h.reservationError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) DecideReservation(c echo.Context) error {
	reservationUid := c.Param("reservationUid")
	if reservationUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reservationUid is empty")
	}
	var req model.DecisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	res, err := h.reservationSvc.DecideReservation(c.Request().Context(), reservationUid, req)
	if err != nil {
		return h.reservationError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) reservationError(c echo.Context, err error) error {
	var stErr *errs.StateTransitionError
	if errors.As(err, &stErr) {
		return c.JSON(http.StatusConflict, echo.Map{"message": stErr.Error()})
	}
	var vErr *errs.ValidationError
	if errors.As(err, &vErr) {
		return c.JSON(http.StatusBadRequest, reasonsResponse{Reasons: vErr.Reasons})
	}
	if errors.Is(err, errs.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (h *Handler) ListBuses(c echo.Context) error {
	retired := c.QueryParam("retired") == "true"
	buses, err := h.reservationSvc.ListBuses(c.Request().Context(), retired)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, buses)
}

func (h *Handler) CreateBus(c echo.Context) error {
	var req model.CreateBusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	bus, err := h.reservationSvc.CreateBus(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, bus)
}

func (h *Handler) UpdateBus(c echo.Context) error {
	id, err := busIDParam(c)
	if err != nil {
		return err
	}
	var req model.UpdateBusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	bus, err := h.reservationSvc.UpdateBus(c.Request().Context(), id, req)
	if err != nil {
		return h.busError(err)
	}
	return c.JSON(http.StatusOK, bus)
}

func (h *Handler) SetBusStatus(c echo.Context) error {
	id, err := busIDParam(c)
	if err != nil {
		return err
	}
	var req model.SetBusStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	bus, err := h.reservationSvc.SetBusStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return h.busError(err)
	}
	return c.JSON(http.StatusOK, bus)
}

func (h *Handler) RetireBus(c echo.Context) error {
	id, err := busIDParam(c)
	if err != nil {
		return err
	}
	bus, err := h.reservationSvc.RetireBus(c.Request().Context(), id)
	if err != nil {
		var rbErr *errs.RetireBlockedError
		if errors.As(err, &rbErr) {
			return c.JSON(http.StatusConflict, echo.Map{
				"message":     rbErr.Error(),
				"blockingIds": rbErr.BlockingIDs,
			})
		}
		return h.busError(err)
	}
	return c.JSON(http.StatusOK, bus)
}

func (h *Handler) RestoreBus(c echo.Context) error {
	id, err := busIDParam(c)
	if err != nil {
		return err
	}
	bus, err := h.reservationSvc.RestoreBus(c.Request().Context(), id)
	if err != nil {
		return h.busError(err)
	}
	return c.JSON(http.StatusOK, bus)
}

func (h *Handler) busError(err error) error {
	if errors.Is(err, errs.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func busIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}
	return id, nil
}
