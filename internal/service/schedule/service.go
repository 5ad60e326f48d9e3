package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/LimoB/clinic-booking-service/internal/domain"
	scheduleRepo "github.com/LimoB/clinic-booking-service/internal/infra/storage/schedule"
	"github.com/LimoB/clinic-booking-service/internal/service/schedule/models"
)

// Service сервис для работы с расписаниями врачей
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Get возвращает расписание врача
// Если расписание не настроено, возвращает дефолтное (без рабочих дней, слоты по 60 минут)
func (s *Service) Get(ctx context.Context, doctorID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("Get: fetching schedule for doctor=%d", doctorID)

	if doctorID <= 0 {
		return nil, fmt.Errorf("%w: doctorId must be positive", ErrInvalidInput)
	}

	schedule, err := s.scheduleRepo.GetByDoctorID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Info("Get: schedule for doctor=%d not configured, using default", doctorID)
			return models.FromDomainSchedule(domain.DefaultSchedule(doctorID)), nil
		}
		s.logger.Error("Get: repository error for doctor=%d: %v", doctorID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched schedule for doctor=%d", doctorID)
	return models.FromDomainSchedule(schedule), nil
}

// Update создает или обновляет расписание врача
// Доступно администратору и самому врачу
func (s *Service) Update(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: updating schedule for doctor=%d by actor=%d(%s)",
		req.DoctorID, req.Actor.ID, req.Actor.Role)

	if req.DoctorID <= 0 {
		return nil, fmt.Errorf("%w: doctorId must be positive", ErrInvalidInput)
	}

	if !req.Actor.CanManageSchedule(req.DoctorID) {
		s.logger.Warn("Update: access denied for actor=%d(%s) to doctor=%d",
			req.Actor.ID, req.Actor.Role, req.DoctorID)
		return nil, ErrAccessDenied
	}

	schedule := req.ToDomainSchedule()
	if err := schedule.Validate(); err != nil {
		s.logger.Warn("Update: invalid schedule for doctor=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.scheduleRepo.Upsert(ctx, schedule)
	if err != nil {
		s.logger.Error("Update: repository error for doctor=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated schedule for doctor=%d", req.DoctorID)
	return models.FromDomainSchedule(updated), nil
}
