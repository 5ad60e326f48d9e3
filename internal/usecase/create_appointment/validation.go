package create_appointment

import (
	"fmt"
	"time"

	"github.com/LimoB/clinic-booking-service/internal/domain"
	"github.com/LimoB/clinic-booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	missing := missingFields(req)
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %v", ErrInvalidInput, missing)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userId must be positive", ErrInvalidInput)
	}

	if req.DoctorID <= 0 {
		return fmt.Errorf("%w: doctorId must be positive", ErrInvalidInput)
	}

	// Валидируем формат времени слота
	if err := req.TimeSlot.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeSlot format: %v", ErrInvalidInput, err)
	}

	if req.PaymentMethod != domain.PaymentMethodCash && req.PaymentMethod != domain.PaymentMethodCard {
		return fmt.Errorf("%w: paymentMethod must be one of [%s, %s]",
			ErrInvalidInput, domain.PaymentMethodCash, domain.PaymentMethodCard)
	}

	if req.TotalAmount < 0 {
		return fmt.Errorf("%w: totalAmount must not be negative", ErrInvalidInput)
	}

	return nil
}

// missingFields возвращает список незаполненных обязательных полей
func missingFields(req *Request) []string {
	var missing []string

	if req.UserID == 0 {
		missing = append(missing, "userId")
	}
	if req.DoctorID == 0 {
		missing = append(missing, "doctorId")
	}
	if req.AppointmentDate.IsZero() {
		missing = append(missing, "appointmentDate")
	}
	if req.TimeSlot.IsZero() {
		missing = append(missing, "timeSlot")
	}
	if req.PaymentMethod == "" {
		missing = append(missing, "paymentMethod")
	}

	return missing
}

// validateDate проверяет, что дата записи не в прошлом
func validateDate(appointmentDate time.Time, now time.Time) error {
	if isDateInPast(appointmentDate, now) {
		return fmt.Errorf("%w: appointmentDate must not be in the past", ErrInvalidInput)
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

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
