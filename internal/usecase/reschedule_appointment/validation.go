package reschedule_appointment

import (
	"fmt"
	"time"

	"github.com/LimoB/clinic-booking-service/internal/domain"
	"github.com/LimoB/clinic-booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentId must be positive", ErrInvalidInput)
	}

	if !domain.IsValidRole(req.Actor.Role) {
		return fmt.Errorf("%w: unknown actor role %q", ErrInvalidInput, req.Actor.Role)
	}

	if req.NewDate.IsZero() {
		return fmt.Errorf("%w: newDate is required", ErrInvalidInput)
	}

	if req.NewTimeSlot.IsZero() {
		return fmt.Errorf("%w: newTimeSlot is required", ErrInvalidInput)
	}

	// Валидируем формат времени слота
	if err := req.NewTimeSlot.Validate(); err != nil {
		return fmt.Errorf("%w: invalid newTimeSlot format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDate проверяет, что новая дата записи не в прошлом
func validateDate(newDate time.Time, now time.Time) error {
	dateOnly := time.Date(newDate.Year(), newDate.Month(), newDate.Day(), 0, 0, 0, 0, newDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return fmt.Errorf("%w: newDate must not be in the past", ErrInvalidInput)
	}
	return nil
}

// slotOffered проверяет, что слот входит в сетку расписания врача
func slotOffered(candidates []types.TimeString, slot types.TimeString) bool {
	for _, candidate := range candidates {
		if candidate == slot {
			return true
		}
	}
	return false
}
