package schedule

import (
	"context"

	"github.com/LimoB/clinic-booking-service/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний врачей
type ScheduleRepository interface {
	GetByDoctorID(ctx context.Context, doctorID int64) (*domain.DoctorSchedule, error)
	Upsert(ctx context.Context, schedule *domain.DoctorSchedule) (*domain.DoctorSchedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
