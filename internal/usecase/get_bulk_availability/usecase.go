package get_bulk_availability

import (
	"context"
	"fmt"
	"sync"

	"github.com/LimoB/clinic-booking-service/internal/domain"
	"github.com/LimoB/clinic-booking-service/internal/usecase/get_availability"
	"github.com/LimoB/clinic-booking-service/pkg/types"
)

// maxConcurrentDoctors ограничивает число параллельных расчётов доступности,
// чтобы не исчерпать пул соединений БД при большом списке врачей
const maxConcurrentDoctors = 8

// UseCase use case массового расчёта доступности по списку врачей
type UseCase struct {
	availability AvailabilityProvider
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availability AvailabilityProvider, scheduleRepo ScheduleRepository, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Execute выполняет расчёт доступности для каждого врача параллельно.
// Порядок результатов соответствует порядку врачей в запросе.
// Ошибка по одному врачу не прерывает расчёт по остальным: для такого
// врача возвращается пустой результат без доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) ([]*domain.AvailabilityResult, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetBulkAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Если список врачей не задан, рассчитываем по всем врачам с расписанием
	doctorIDs := req.DoctorIDs
	if len(doctorIDs) == 0 {
		ids, err := uc.scheduleRepo.ListDoctorIDs(ctx)
		if err != nil {
			uc.logger.Error("GetBulkAvailability: failed to list doctor ids: %v", err)
			return nil, fmt.Errorf("%w: failed to list doctor ids: %v", ErrInternal, err)
		}
		doctorIDs = ids
	}

	uc.logger.Info("GetBulkAvailability: date=%s, doctors=%d",
		req.Date.Format(domain.DateFormat), len(doctorIDs))

	results := make([]*domain.AvailabilityResult, len(doctorIDs))

	// 3. Параллельный расчёт с ограничением числа одновременных запросов
	var wg sync.WaitGroup
	sem := make(chan struct{}, maxConcurrentDoctors)

	for i, doctorID := range doctorIDs {
		wg.Add(1)
		go func(idx int, id int64) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			result, err := uc.availability.Execute(ctx, &get_availability.Request{
				DoctorID: id,
				Date:     req.Date,
			})
			if err != nil {
				// Ошибка по одному врачу не должна ронять весь расчёт
				uc.logger.Warn("GetBulkAvailability: failed to get availability for doctor id=%d: %v", id, err)
				results[idx] = emptyResult(id, req)
				return
			}

			results[idx] = result
		}(i, doctorID)
	}

	wg.Wait()

	return results, nil
}

// emptyResult возвращает результат-заглушку для врача, по которому расчёт не удался
func emptyResult(doctorID int64, req *Request) *domain.AvailabilityResult {
	return &domain.AvailabilityResult{
		Date:           req.Date,
		DoctorID:       doctorID,
		AvailableSlots: []types.TimeString{},
	}
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	for _, id := range req.DoctorIDs {
		if id <= 0 {
			return fmt.Errorf("%w: doctor ids must be positive", ErrInvalidInput)
		}
	}

	return nil
}
