package domain

import (
	"fmt"
	"time"

	"github.com/LimoB/clinic-booking-service/pkg/types"
)

// DoctorSchedule represents a doctor's bookable configuration: the weekdays
// the doctor works, the working-hour anchors (each anchor starts one 60-minute
// block of slots) and the slot duration.
type DoctorSchedule struct {
	DoctorID            int64
	WorkingDays         []string // weekday names, e.g. ["Monday", "Wednesday"]
	WorkingHourAnchors  []types.TimeString
	SlotDurationMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultSchedule returns the configuration applied when a doctor has no
// schedule row yet: no working days, no anchors, default slot duration.
func DefaultSchedule(doctorID int64) *DoctorSchedule {
	return &DoctorSchedule{
		DoctorID:            doctorID,
		WorkingDays:         []string{},
		WorkingHourAnchors:  []types.TimeString{},
		SlotDurationMinutes: DefaultSlotDurationMinutes,
	}
}

// WorksOn reports whether the given weekday is one of the doctor's working days
func (s *DoctorSchedule) WorksOn(weekday time.Weekday) bool {
	name := weekday.String()
	for _, day := range s.WorkingDays {
		if day == name {
			return true
		}
	}
	return false
}

// Validate checks that the schedule is internally consistent: known weekday
// names, well-formed anchors and an allowed slot duration.
func (s *DoctorSchedule) Validate() error {
	for _, day := range s.WorkingDays {
		if !IsValidWeekday(day) {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidWorkingDay, day)
		}
	}

	for _, anchor := range s.WorkingHourAnchors {
		if err := anchor.Validate(); err != nil {
			return fmt.Errorf("%w: anchor %q: %v", ErrInvalidAnchor, anchor, err)
		}
	}

	if !IsAllowedSlotDuration(s.SlotDurationMinutes) {
		return fmt.Errorf("%w: %d minutes", ErrInvalidSlotDuration, s.SlotDurationMinutes)
	}

	return nil
}

// IsValidWeekday reports whether name is a full English weekday name
func IsValidWeekday(name string) bool {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == name {
			return true
		}
	}
	return false
}

// IsAllowedSlotDuration reports whether the duration is one of the supported
// values (must divide the 60-minute anchor block evenly)
func IsAllowedSlotDuration(minutes int) bool {
	for _, allowed := range AllowedSlotDurations {
		if minutes == allowed {
			return true
		}
	}
	return false
}
