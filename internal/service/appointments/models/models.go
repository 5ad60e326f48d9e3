package models

import (
	"errors"
	"time"

	"github.com/LimoB/clinic-booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	Actor              domain.Actor
	CancellationReason string
}

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	Actor  domain.Actor
	Status string
}

// GetUserAppointmentsRequest запрос на получение записей пациента
type GetUserAppointmentsRequest struct {
	Actor  domain.Actor
	UserID int64
	Status *string
}

// GetDoctorAppointmentsRequest запрос на получение записей врача
type GetDoctorAppointmentsRequest struct {
	Actor           domain.Actor
	DoctorID        int64
	Date            *time.Time
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetDoctorAppointmentsRequest) ToDomainFilter() (domain.DoctorAppointmentsFilter, error) {
	filter := domain.DoctorAppointmentsFilter{
		DoctorID:        r.DoctorID,
		Date:            r.Date,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи на приём
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	DoctorID        int64   `json:"doctorId"`
	AppointmentDate string  `json:"appointmentDate"` // "2026-09-15"
	TimeSlot        string  `json:"timeSlot"`        // "10:00"
	Status          string  `json:"status"`
	PaymentMethod   string  `json:"paymentMethod"`
	TotalAmount     float64 `json:"totalAmount"`
	WasRescheduled  bool    `json:"wasRescheduled"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:                 a.ID,
		UserID:             a.UserID,
		DoctorID:           a.DoctorID,
		AppointmentDate:    a.AppointmentDate.Format(domain.DateFormat),
		TimeSlot:           a.TimeSlot.String(),
		Status:             string(a.Status),
		PaymentMethod:      a.PaymentMethod,
		TotalAmount:        a.TotalAmount,
		WasRescheduled:     a.WasRescheduled,
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	if appointments == nil {
		return &AppointmentListResponse{
			Appointments: []AppointmentResponse{},
		}
	}

	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, len(appointments)),
	}

	for i, appointment := range appointments {
		if apptResp := FromDomainAppointment(appointment); apptResp != nil {
			resp.Appointments[i] = *apptResp
		}
	}

	return resp
}

// ToDomainAppointmentStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)

	validStatuses := []domain.AppointmentStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCancelled,
		domain.StatusCompleted,
		domain.StatusFailed,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
