package create_appointment

import (
	"context"
	"time"

	"github.com/LimoB/clinic-booking-service/internal/domain"
	"github.com/LimoB/clinic-booking-service/internal/integrations/notifications"
	"github.com/LimoB/clinic-booking-service/internal/integrations/payments"
)

// AppointmentRepository интерфейс репозитория записей на приём
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByDoctorWithFilter(ctx context.Context, filter domain.DoctorAppointmentsFilter) ([]*domain.Appointment, error)
}

// ScheduleRepository интерфейс репозитория расписаний врачей
type ScheduleRepository interface {
	GetByDoctorID(ctx context.Context, doctorID int64) (*domain.DoctorSchedule, error)
}

// PaymentServiceClient интерфейс клиента для PaymentService
type PaymentServiceClient interface {
	CreatePaymentRecord(ctx context.Context, request *payments.CreatePaymentRequest) (*payments.PaymentRecord, error)
}

// NotificationServiceClient интерфейс клиента для NotificationService
type NotificationServiceClient interface {
	Send(ctx context.Context, notification *notifications.AppointmentNotification) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
