package handler

import (
	"context"

	"github.com/Astemirdum/bike-rental/reservation/internal/booking"
	"github.com/Astemirdum/bike-rental/reservation/internal/model"
	"github.com/Astemirdum/bike-rental/reservation/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type ReservationService interface {
	ListBikes(ctx context.Context, category string) ([]model.Bike, error)
	GetBike(ctx context.Context, id int) (model.Bike, error)
	CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error)
	CheckAvailability(ctx context.Context, bikeID int, window booking.Window) (model.Availability, error)
	ListActiveByBike(ctx context.Context, bikeID int) ([]model.Reservation, error)
	EndReservation(ctx context.Context, bikeID int) (model.Reservation, error)
	EndReservationByID(ctx context.Context, reservationID int) (model.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]model.ReservationWithBike, error)
	ListAll(ctx context.Context) ([]model.ReservationWithBike, error)
	CountReservations(ctx context.Context) (int, error)
	ResetReservations(ctx context.Context) (int64, error)
}

var _ ReservationService = (*service.Service)(nil)
