package reschedule_appointment

import (
	"time"

	"github.com/LimoB/clinic-booking-service/internal/domain"
	rescheduleAppointment "github.com/LimoB/clinic-booking-service/internal/usecase/reschedule_appointment"
	"github.com/LimoB/clinic-booking-service/pkg/types"
)

// RescheduleAppointmentRequest HTTP request model
type RescheduleAppointmentRequest struct {
	NewDate     string `json:"newDate"`     // "2026-09-20"
	NewTimeSlot string `json:"newTimeSlot"` // "11:00"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	DoctorID        int64   `json:"doctorId"`
	AppointmentDate string  `json:"appointmentDate"`
	TimeSlot        string  `json:"timeSlot"`
	Status          string  `json:"status"`
	PaymentMethod   string  `json:"paymentMethod"`
	TotalAmount     float64 `json:"totalAmount"`
	WasRescheduled  bool    `json:"wasRescheduled"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleAppointmentRequest) ToUseCaseRequest(actor domain.Actor, appointmentID int64) (*rescheduleAppointment.Request, error) {
	newDate, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, err
	}

	newTimeSlot, err := types.NewTimeStringFromString(r.NewTimeSlot)
	if err != nil {
		return nil, err
	}

	return &rescheduleAppointment.Request{
		Actor:         actor,
		AppointmentID: appointmentID,
		NewDate:       newDate,
		NewTimeSlot:   newTimeSlot,
	}, nil
}

// FromDomainAppointment конвертирует domain модель в HTTP response
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              appt.ID,
		UserID:          appt.UserID,
		DoctorID:        appt.DoctorID,
		AppointmentDate: appt.AppointmentDate.Format(domain.DateFormat),
		TimeSlot:        appt.TimeSlot.String(),
		Status:          string(appt.Status),
		PaymentMethod:   appt.PaymentMethod,
		TotalAmount:     appt.TotalAmount,
		WasRescheduled:  appt.WasRescheduled,
		CreatedAt:       appt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       appt.UpdatedAt.Format(time.RFC3339),
	}
}
