package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/bike-rental/pkg/kafka"
	mw "github.com/Astemirdum/bike-rental/pkg/middleware"
	"github.com/Astemirdum/bike-rental/pkg/validate"
	_ "github.com/Astemirdum/bike-rental/reservation/docs"
	"github.com/Astemirdum/bike-rental/reservation/internal/booking"
	"github.com/Astemirdum/bike-rental/reservation/internal/errs"
	"github.com/Astemirdum/bike-rental/reservation/internal/model"
)

type Handler struct {
	reservationSvc ReservationService
	events         EventLog
	log            *zap.Logger
}

func New(reservationSvc ReservationService, events EventLog, log *zap.Logger) *Handler {
	return &Handler{
		reservationSvc: reservationSvc,
		events:         events,
		log:            log.Named("handler"),
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

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		mw.NewRateLimiter(apiRPS),
	)

	api.GET("/bikes", h.ListBikes)
	api.GET("/bikes/:bikeId", h.GetBike)

	api.POST("/rentals", h.CreateReservation)
	api.GET("/rentals/all", h.ListAll)
	api.GET("/rentals/count", h.Count)
	api.DELETE("/rentals", h.Reset)
	api.POST("/rentals/end", h.EndReservation)
	api.POST("/rentals/:rentalId/end", h.EndReservationByID)
	api.GET("/rentals/bike/:bikeId", h.ListActiveByBike)
	api.GET("/rentals/bike/:bikeId/availability", h.CheckAvailability)
	api.GET("/rentals/user/:userId", h.ListByUser)

	return e
}

// httpError maps a ledger error onto its status code.
func httpError(err error) *echo.HTTPError {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrInvalidInterval), errors.Is(err, errs.ErrTooShort):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrBikeNotFound), errors.Is(err, errs.ErrNoOpenReservation):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	}
	return echo.NewHTTPError(code, err.Error())
}

func intParam(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return v, nil
}

func (h *Handler) emit(ev kafka.EventRental) {
	if h.events == nil {
		return
	}
	if err := h.events.Log(ev); err != nil {
		h.log.Warn("event log", zap.String("type", string(ev.Type)), zap.Error(err))
	}
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// ListBikes
// @Summary  List bikes
// @Tags     bikes
// @Produce  json
// @Param    category  query     string  false  "bike category"
// @Success  200       {array}   model.Bike
// @Router   /bikes [get]
func (h *Handler) ListBikes(c echo.Context) error {
	bikes, err := h.reservationSvc.ListBikes(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bikes)
}

// GetBike
// @Summary  Get bike
// @Tags     bikes
// @Produce  json
// @Param    bikeId  path      int  true  "bike id"
// @Success  200     {object}  model.Bike
// @Failure  404     {object}  echo.HTTPError
// @Router   /bikes/{bikeId} [get]
func (h *Handler) GetBike(c echo.Context) error {
	bikeID, err := intParam(c, "bikeId")
	if err != nil {
		return err
	}
	bike, err := h.reservationSvc.GetBike(c.Request().Context(), bikeID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bike)
}

// CreateReservation
// @Summary  Book a bike for [startTime, endTime)
// @Tags     rentals
// @Accept   json
// @Produce  json
// @Param    request  body      model.CreateReservationRequest  true  "reservation"
// @Success  200      {object}  model.Reservation
// @Failure  400      {object}  echo.HTTPError
// @Failure  404      {object}  echo.HTTPError
// @Failure  409      {object}  echo.HTTPError
// @Router   /rentals [post]
func (h *Handler) CreateReservation(c echo.Context) error {
	var req model.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !req.StartTime.Before(req.EndTime) {
		return httpError(errs.ErrInvalidInterval)
	}
	if req.EndTime.Sub(req.StartTime) < model.MinRentalDuration {
		return httpError(errs.ErrTooShort)
	}

	res, err := h.reservationSvc.CreateReservation(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}

	ev := kafka.NewEvent(kafka.EventReservationCreated)
	ev.ReservationID, ev.BikeID, ev.UserID = res.ID, res.BikeID, res.UserID
	h.emit(ev)

	return c.JSON(http.StatusOK, res)
}

// CheckAvailability
// @Summary  Check whether a window is free on a bike
// @Tags     rentals
// @Produce  json
// @Param    bikeId  path      int     true  "bike id"
// @Param    start   query     string  true  "RFC3339 start"
// @Param    end     query     string  true  "RFC3339 end"
// @Success  200     {object}  model.Availability
// @Failure  400     {object}  echo.HTTPError
// @Router   /rentals/bike/{bikeId}/availability [get]
func (h *Handler) CheckAvailability(c echo.Context) error {
	bikeID, err := intParam(c, "bikeId")
	if err != nil {
		return err
	}
	start, err := time.Parse(time.RFC3339, c.QueryParam("start"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid start")
	}
	end, err := time.Parse(time.RFC3339, c.QueryParam("end"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid end")
	}
	av, err := h.reservationSvc.CheckAvailability(c.Request().Context(), bikeID, booking.Window{Start: start, End: end})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, av)
}

// ListActiveByBike
// @Summary  Open, non-expired reservations of a bike
// @Tags     rentals
// @Produce  json
// @Param    bikeId  path     int  true  "bike id"
// @Success  200     {array}  model.Reservation
// @Router   /rentals/bike/{bikeId} [get]
func (h *Handler) ListActiveByBike(c echo.Context) error {
	bikeID, err := intParam(c, "bikeId")
	if err != nil {
		return err
	}
	list, err := h.reservationSvc.ListActiveByBike(c.Request().Context(), bikeID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

// EndReservation
// @Summary  End the current rental of a bike
// @Tags     rentals
// @Accept   json
// @Produce  json
// @Param    request  body      model.EndReservationRequest  true  "bike"
// @Success  200      {object}  model.Reservation
// @Failure  404      {object}  echo.HTTPError
// @Router   /rentals/end [post]
func (h *Handler) EndReservation(c echo.Context) error {
	var req model.EndReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.reservationSvc.EndReservation(c.Request().Context(), req.BikeID)
	if err != nil {
		return httpError(err)
	}
	h.emitEnded(res)
	return c.JSON(http.StatusOK, res)
}

// EndReservationByID
// @Summary  End a rental by id
// @Tags     rentals
// @Produce  json
// @Param    rentalId  path      int  true  "rental id"
// @Success  200       {object}  model.Reservation
// @Failure  404       {object}  echo.HTTPError
// @Router   /rentals/{rentalId}/end [post]
func (h *Handler) EndReservationByID(c echo.Context) error {
	id, err := intParam(c, "rentalId")
	if err != nil {
		return err
	}
	res, err := h.reservationSvc.EndReservationByID(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	h.emitEnded(res)
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) emitEnded(res model.Reservation) {
	ev := kafka.NewEvent(kafka.EventReservationEnded)
	ev.ReservationID, ev.BikeID, ev.UserID, ev.TotalCost = res.ID, res.BikeID, res.UserID, res.TotalCost
	h.emit(ev)
}

// ListByUser
// @Summary  Rentals of a user, newest first
// @Tags     rentals
// @Produce  json
// @Param    userId  path     string  true  "user id"
// @Success  200     {array}  model.ReservationWithBike
// @Router   /rentals/user/{userId} [get]
func (h *Handler) ListByUser(c echo.Context) error {
	userID := c.Param("userId")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty userId")
	}
	list, err := h.reservationSvc.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

// ListAll
// @Summary  All rentals, newest first
// @Tags     rentals
// @Produce  json
// @Success  200  {array}  model.ReservationWithBike
// @Router   /rentals/all [get]
func (h *Handler) ListAll(c echo.Context) error {
	list, err := h.reservationSvc.ListAll(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

// Count
// @Summary  Number of stored rentals
// @Tags     rentals
// @Produce  json
// @Success  200  {object}  model.Count
// @Router   /rentals/count [get]
func (h *Handler) Count(c echo.Context) error {
	n, err := h.reservationSvc.CountReservations(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, model.Count{Count: n})
}

// Reset
// @Summary  Delete every rental
// @Tags     rentals
// @Produce  json
// @Success  200  {object}  model.ResetResult
// @Router   /rentals [delete]
func (h *Handler) Reset(c echo.Context) error {
	n, err := h.reservationSvc.ResetReservations(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	h.emit(kafka.NewEvent(kafka.EventReservationsReset))
	return c.JSON(http.StatusOK, model.ResetResult{Deleted: n})
}
