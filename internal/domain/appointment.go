package domain

import (
	"time"

	"github.com/LimoB/clinic-booking-service/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
	StatusFailed    AppointmentStatus = "failed"
)

// PaymentMethod названия способов оплаты, принимаемых при создании записи
const (
	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
)

// Appointment represents a patient's appointment with a doctor
type Appointment struct {
	ID              int64
	UserID          int64 // пациент, создавший запись
	DoctorID        int64
	AppointmentDate time.Time // дата приёма (без времени)
	TimeSlot        types.TimeString
	Status          AppointmentStatus
	PaymentMethod   string
	TotalAmount     float64
	WasRescheduled  bool

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its slot.
// Cancelled and failed appointments release the slot.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusFailed
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the appointment can be moved to another slot
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// DoctorAppointmentsFilter фильтр для выборки записей врача
type DoctorAppointmentsFilter struct {
	DoctorID        int64              // Обязательный параметр
	Date            *time.Time         // Конкретная дата приёма (опционально)
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые и failed записи
	ExcludeID       *int64             // Исключить запись по ID (для reschedule)
}
