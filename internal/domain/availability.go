package domain

import (
	"time"

	"github.com/LimoB/clinic-booking-service/pkg/types"
)

// Availability status labels exposed to API clients
const (
	AvailabilityStatusAvailable    = "Available"
	AvailabilityStatusFullyBooked  = "Fully Booked"
	AvailabilityStatusNotAvailable = "Not Available"
)

// AvailabilityResult is the derived read-model for one doctor on one date.
// FullyBooked and NotAvailableToday are mutually exclusive: the first means
// the doctor works that day but has no openings, the second means the weekday
// is not a working day at all.
type AvailabilityResult struct {
	Date              time.Time
	DoctorID          int64
	AvailableSlots    []types.TimeString
	FullyBooked       bool
	NotAvailableToday bool
}

// Status returns the human-readable status label for the result
func (r *AvailabilityResult) Status() string {
	switch {
	case r.NotAvailableToday:
		return AvailabilityStatusNotAvailable
	case r.FullyBooked:
		return AvailabilityStatusFullyBooked
	default:
		return AvailabilityStatusAvailable
	}
}
