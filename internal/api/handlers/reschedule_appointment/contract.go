package reschedule_appointment

import (
	"context"

	"github.com/LimoB/clinic-booking-service/internal/domain"
	rescheduleAppointment "github.com/LimoB/clinic-booking-service/internal/usecase/reschedule_appointment"
)

type RescheduleAppointmentUseCase interface {
	Execute(ctx context.Context, req *rescheduleAppointment.Request) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
