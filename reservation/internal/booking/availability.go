package booking

import (
	"time"

	"github.com/Astemirdum/bike-rental/reservation/internal/model"
)

// Occupancy is the window a reservation holds. Legacy reservations without an
// expected end hold the bike indefinitely.
func Occupancy(r model.Reservation) Window {
	w := Window{Start: r.StartTime}
	if r.ExpectedEndTime != nil {
		w.End = *r.ExpectedEndTime
	}
	return w
}

// Blocking reports whether r still takes part in availability decisions at now:
// it is not finalized and its expected end is not in the past.
func Blocking(r model.Reservation, now time.Time) bool {
	if !r.IsOpen() {
		return false
	}
	return r.ExpectedEndTime == nil || r.ExpectedEndTime.After(now)
}

// Conflicts returns the reservations of bikeID that block candidate at now.
func Conflicts(bikeID int, candidate Window, existing []model.Reservation, now time.Time) []model.Reservation {
	var out []model.Reservation
	for _, r := range existing {
		if r.BikeID != bikeID || !Blocking(r, now) {
			continue
		}
		if Occupancy(r).Overlaps(candidate) {
			out = append(out, r)
		}
	}
	return out
}

// IsAvailable reports whether candidate can be booked on bikeID given the existing
// reservations. An invalid candidate is never available.
func IsAvailable(bikeID int, candidate Window, existing []model.Reservation, now time.Time) bool {
	if candidate.Validate() != nil {
		return false
	}
	return len(Conflicts(bikeID, candidate, existing, now)) == 0
}

// Active filters the reservations that are open and not expired at now.
func Active(existing []model.Reservation, now time.Time) []model.Reservation {
	out := make([]model.Reservation, 0, len(existing))
	for _, r := range existing {
		if Blocking(r, now) {
			out = append(out, r)
		}
	}
	return out
}
