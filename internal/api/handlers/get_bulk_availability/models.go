package get_bulk_availability

import "github.com/LimoB/clinic-booking-service/internal/domain"

// DoctorAvailabilityStatus статус доступности одного врача
type DoctorAvailabilityStatus struct {
	DoctorID    int64 `json:"doctorId"`
	FullyBooked bool  `json:"fullyBooked"`
}

// BulkAvailabilityResponse HTTP response model
type BulkAvailabilityResponse struct {
	Date    string                     `json:"date"` // "2026-09-15"
	Doctors []DoctorAvailabilityStatus `json:"doctors"`
}

// FromAvailabilityResults конвертирует результаты расчёта в HTTP response
func FromAvailabilityResults(date string, results []*domain.AvailabilityResult) *BulkAvailabilityResponse {
	doctors := make([]DoctorAvailabilityStatus, len(results))
	for i, result := range results {
		doctors[i] = DoctorAvailabilityStatus{
			DoctorID:    result.DoctorID,
			FullyBooked: result.FullyBooked,
		}
	}

	return &BulkAvailabilityResponse{
		Date:    date,
		Doctors: doctors,
	}
}
