package service

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/bike-rental/pkg/lock"
	"github.com/Astemirdum/bike-rental/reservation/internal/booking"
	"github.com/Astemirdum/bike-rental/reservation/internal/errs"
	"github.com/Astemirdum/bike-rental/reservation/internal/model"
	"github.com/Astemirdum/bike-rental/reservation/internal/repository"
)

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	locker lock.Locker
	now    func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo repository.Repository, locker lock.Locker, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:    log.Named("service"),
		repo:   repo,
		locker: locker,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func bikeLockKey(bikeID int) string {
	return "bike:" + strconv.Itoa(bikeID)
}

func (s *Service) ListBikes(ctx context.Context, category string) ([]model.Bike, error) {
	return s.repo.ListBikes(ctx, category)
}

func (s *Service) GetBike(ctx context.Context, id int) (model.Bike, error) {
	return s.repo.GetBike(ctx, id)
}

// CreateReservation books [StartTime, EndTime) on the bike unless an open,
// non-expired reservation already overlaps it.
func (s *Service) CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error) {
	window := booking.Window{Start: req.StartTime, End: req.EndTime}
	if err := window.Validate(); err != nil {
		return model.Reservation{}, errs.ErrInvalidInterval
	}
	if _, err := s.repo.GetBike(ctx, req.BikeID); err != nil {
		return model.Reservation{}, err
	}

	unlock, err := s.locker.Lock(ctx, bikeLockKey(req.BikeID))
	if err != nil {
		if ctx.Err() != nil {
			return model.Reservation{}, errors.Wrap(err, "lock bike")
		}
		// the repository's advisory lock still serializes writers of this bike
		s.log.Warn("bike lock unavailable", zap.Int("bikeId", req.BikeID), zap.Error(err))
		unlock = func() {}
	}
	defer unlock()

	now := s.now()
	res, err := s.repo.CreateReservation(ctx, req, now, func(active []model.Reservation) error {
		if !booking.IsAvailable(req.BikeID, window, active, now) {
			return errs.ErrConflict
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errs.ErrConflict) {
			s.log.Info("booking conflict",
				zap.Int("bikeId", req.BikeID),
				zap.Time("start", req.StartTime),
				zap.Time("end", req.EndTime))
		}
		return model.Reservation{}, err
	}
	return res, nil
}

// CheckAvailability answers whether window could be booked on the bike right now,
// listing the reservations in the way.
func (s *Service) CheckAvailability(ctx context.Context, bikeID int, window booking.Window) (model.Availability, error) {
	if err := window.Validate(); err != nil {
		return model.Availability{}, errs.ErrInvalidInterval
	}
	if _, err := s.repo.GetBike(ctx, bikeID); err != nil {
		return model.Availability{}, err
	}
	now := s.now()
	active, err := s.repo.GetActiveReservations(ctx, bikeID, now)
	if err != nil {
		return model.Availability{}, err
	}
	conflicts := booking.Conflicts(bikeID, window, active, now)
	if conflicts == nil {
		conflicts = []model.Reservation{}
	}
	return model.Availability{
		BikeID:    bikeID,
		StartTime: window.Start,
		EndTime:   window.End,
		Available: booking.IsAvailable(bikeID, window, active, now),
		Conflicts: conflicts,
	}, nil
}

func (s *Service) ListActiveByBike(ctx context.Context, bikeID int) ([]model.Reservation, error) {
	return s.repo.GetActiveReservations(ctx, bikeID, s.now())
}

// EndReservation finalizes the earliest-start open reservation of the bike.
func (s *Service) EndReservation(ctx context.Context, bikeID int) (model.Reservation, error) {
	return s.end(ctx, model.EndSelector{BikeID: bikeID})
}

func (s *Service) EndReservationByID(ctx context.Context, reservationID int) (model.Reservation, error) {
	return s.end(ctx, model.EndSelector{ReservationID: reservationID})
}

func (s *Service) end(ctx context.Context, sel model.EndSelector) (model.Reservation, error) {
	now := s.now()
	res, err := s.repo.EndReservation(ctx, sel, now, func(r model.Reservation, bike model.Bike) float64 {
		return booking.TotalCost(r.StartTime, now, bike.PricePerHour)
	})
	if err != nil {
		return model.Reservation{}, err
	}
	s.log.Debug("reservation ended", zap.Int("id", res.ID), zap.Int("bikeId", res.BikeID))
	return res, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]model.ReservationWithBike, error) {
	return s.repo.ListReservationsByUser(ctx, userID)
}

func (s *Service) ListAll(ctx context.Context) ([]model.ReservationWithBike, error) {
	return s.repo.ListReservations(ctx)
}

func (s *Service) CountReservations(ctx context.Context) (int, error) {
	return s.repo.CountReservations(ctx)
}

// ResetReservations deletes every reservation.
func (s *Service) ResetReservations(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteReservations(ctx)
	if err != nil {
		return 0, err
	}
	s.log.Warn("reservations reset", zap.Int64("deleted", n))
	return n, nil
}
