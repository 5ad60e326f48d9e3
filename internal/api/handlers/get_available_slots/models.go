package get_available_slots

import "github.com/LimoB/clinic-booking-service/internal/domain"

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	DoctorID       int64    `json:"doctorId"`
	Date           string   `json:"date"`           // "2026-09-15"
	AvailableSlots []string `json:"availableSlots"` // ["09:00", "10:00"]
}

// FromAvailabilityResult конвертирует результат расчёта в HTTP response
func FromAvailabilityResult(result *domain.AvailabilityResult) *AvailableSlotsResponse {
	slots := make([]string, len(result.AvailableSlots))
	for i, slot := range result.AvailableSlots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		DoctorID:       result.DoctorID,
		Date:           result.Date.Format(domain.DateFormat),
		AvailableSlots: slots,
	}
}
