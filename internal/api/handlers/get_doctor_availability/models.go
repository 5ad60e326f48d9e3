package get_doctor_availability

import "github.com/LimoB/clinic-booking-service/internal/domain"

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	DoctorID          int64    `json:"doctorId"`
	Date              string   `json:"date"`   // "2026-09-15"
	Status            string   `json:"status"` // "Available" | "Fully Booked" | "Not Available"
	AvailableSlots    []string `json:"availableSlots"`
	FullyBooked       bool     `json:"fullyBooked"`
	NotAvailableToday bool     `json:"notAvailableToday"`
}

// FromAvailabilityResult конвертирует результат расчёта в HTTP response
func FromAvailabilityResult(result *domain.AvailabilityResult) *AvailabilityResponse {
	slots := make([]string, len(result.AvailableSlots))
	for i, slot := range result.AvailableSlots {
		slots[i] = slot.String()
	}

	return &AvailabilityResponse{
		DoctorID:          result.DoctorID,
		Date:              result.Date.Format(domain.DateFormat),
		Status:            result.Status(),
		AvailableSlots:    slots,
		FullyBooked:       result.FullyBooked,
		NotAvailableToday: result.NotAvailableToday,
	}
}
