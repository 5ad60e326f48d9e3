package get_doctor_availability

import (
	"context"

	"github.com/LimoB/clinic-booking-service/internal/domain"
	getAvailability "github.com/LimoB/clinic-booking-service/internal/usecase/get_availability"
)

type GetAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getAvailability.Request) (*domain.AvailabilityResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
