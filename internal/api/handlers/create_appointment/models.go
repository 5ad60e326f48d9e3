package create_appointment

import (
	"time"

	"github.com/LimoB/clinic-booking-service/internal/domain"
	createAppointment "github.com/LimoB/clinic-booking-service/internal/usecase/create_appointment"
	"github.com/LimoB/clinic-booking-service/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	UserID          int64   `json:"userId,omitempty"` // учитывается только для admin
	DoctorID        int64   `json:"doctorId"`
	AppointmentDate string  `json:"appointmentDate"` // "2026-09-15"
	TimeSlot        string  `json:"timeSlot"`        // "10:00"
	PaymentMethod   string  `json:"paymentMethod"`   // "cash" | "card"
	TotalAmount     float64 `json:"totalAmount"`
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
// Пациент всегда записывает сам себя; admin может указать userId в теле
func (r *CreateAppointmentRequest) ToUseCaseRequest(actor domain.Actor) (*createAppointment.Request, error) {
	appointmentDate, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	timeSlot, err := types.NewTimeStringFromString(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	userID := actor.ID
	if actor.IsAdmin() && r.UserID > 0 {
		userID = r.UserID
	}

	return &createAppointment.Request{
		UserID:          userID,
		DoctorID:        r.DoctorID,
		AppointmentDate: appointmentDate,
		TimeSlot:        timeSlot,
		PaymentMethod:   r.PaymentMethod,
		TotalAmount:     r.TotalAmount,
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
