package model

import (
	"time"
)

// MinRentalDuration is the shortest window a customer may book.
const MinRentalDuration = 30 * time.Minute

type Bike struct {
	ID           int     `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Description  string  `json:"description" db:"description"`
	PricePerHour float64 `json:"pricePerHour" db:"price_per_hour"`
	Category     string  `json:"category" db:"category"`
	Image        string  `json:"image" db:"image"`
}

// Reservation is open while EndTime is nil and finalized once EndTime and TotalCost are set.
type Reservation struct {
	ID              int        `json:"id" db:"id"`
	BikeID          int        `json:"bikeId" db:"bike_id"`
	UserID          string     `json:"userId" db:"user_id"`
	CustomerName    *string    `json:"customerName,omitempty" db:"customer_name"`
	StartTime       time.Time  `json:"startTime" db:"start_time"`
	ExpectedEndTime *time.Time `json:"expectedEndTime,omitempty" db:"expected_end_time"`
	EndTime         *time.Time `json:"endTime,omitempty" db:"end_time"`
	TotalCost       *float64   `json:"totalCost,omitempty" db:"total_cost"`
	CreatedAt       time.Time  `json:"-" db:"created_at"`
}

func (r Reservation) IsOpen() bool {
	return r.EndTime == nil
}

type ReservationWithBike struct {
	Reservation `json:",inline"`
	Bike        Bike `json:"bike"`
}

type CreateReservationRequest struct {
	BikeID       int       `json:"bikeId" validate:"required,gt=0"`
	UserID       string    `json:"userId" validate:"required,max=128"`
	CustomerName string    `json:"customerName" validate:"omitempty,max=128"`
	StartTime    time.Time `json:"startTime" validate:"required"`
	EndTime      time.Time `json:"endTime" validate:"required"`
}

type EndReservationRequest struct {
	BikeID int `json:"bikeId" validate:"required,gt=0"`
}

// EndSelector picks the reservation to finalize: by id when ReservationID is set,
// otherwise the earliest-start open reservation of BikeID.
type EndSelector struct {
	BikeID        int
	ReservationID int
}

type Availability struct {
	BikeID    int           `json:"bikeId"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Available bool          `json:"available"`
	Conflicts []Reservation `json:"conflicts"`
}

type Count struct {
	Count int `json:"count"`
}

type ResetResult struct {
	Deleted int64 `json:"deleted"`
}
