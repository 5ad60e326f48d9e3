package get_bulk_availability

import (
	"context"

	"github.com/LimoB/clinic-booking-service/internal/domain"
	getBulkAvailability "github.com/LimoB/clinic-booking-service/internal/usecase/get_bulk_availability"
)

type GetBulkAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getBulkAvailability.Request) ([]*domain.AvailabilityResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
