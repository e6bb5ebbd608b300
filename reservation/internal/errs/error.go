package errs

import (
	"errors"
)

var (
	ErrBikeNotFound      = errors.New("bike not found")
	ErrNoOpenReservation = errors.New("no active rental found for this bike")
	ErrInvalidInterval   = errors.New("start time must be before end time")
	ErrTooShort          = errors.New("rental must last at least 30 minutes")
	ErrConflict          = errors.New("bike is already booked for the selected time")
)
