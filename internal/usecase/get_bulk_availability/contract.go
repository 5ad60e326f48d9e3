package get_bulk_availability

import (
	"context"

	"github.com/LimoB/clinic-booking-service/internal/domain"
	"github.com/LimoB/clinic-booking-service/internal/usecase/get_availability"
)

// AvailabilityProvider интерфейс расчёта доступности для одного врача
type AvailabilityProvider interface {
	Execute(ctx context.Context, req *get_availability.Request) (*domain.AvailabilityResult, error)
}

// ScheduleRepository интерфейс репозитория расписаний врачей
type ScheduleRepository interface {
	ListDoctorIDs(ctx context.Context) ([]int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
