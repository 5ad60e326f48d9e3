package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/LimoB/clinic-booking-service/internal/domain"
	scheduleRepo "github.com/LimoB/clinic-booking-service/internal/infra/storage/schedule"
	"github.com/LimoB/clinic-booking-service/pkg/types"
)

// UseCase use case расчёта доступных слотов врача на дату.
// Операция только читает данные и идемпотентна, безопасна для
// конкурентных вызовов.
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		logger:          logger,
	}
}

// Execute выполняет use case расчёта доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.AvailabilityResult, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем расписание врача
	schedule, err := uc.scheduleRepo.GetByDoctorID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Warn("GetAvailability: doctor id=%d not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("GetAvailability: failed to get schedule for doctor id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 3. Проверяем, работает ли врач в этот день недели.
	// "Не работает сегодня" и "полностью занят" - разные состояния:
	// клиент показывает их по-разному.
	if !schedule.WorksOn(req.Date.Weekday()) {
		uc.logger.Info("GetAvailability: doctor id=%d does not work on %s",
			req.DoctorID, req.Date.Weekday())
		return &domain.AvailabilityResult{
			Date:              req.Date,
			DoctorID:          req.DoctorID,
			AvailableSlots:    []types.TimeString{},
			FullyBooked:       false,
			NotAvailableToday: true,
		}, nil
	}

	// 4. Генерируем все потенциальные слоты из anchors
	candidateSlots, err := domain.GenerateSlots(schedule.WorkingHourAnchors, schedule.SlotDurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailability: schedule misconfigured for doctor id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: %v", ErrScheduleMisconfigured, err)
	}

	// Врач работает в этот день, но anchors не настроены - считаем день
	// полностью занятым, а не закрытым
	if len(candidateSlots) == 0 {
		uc.logger.Warn("GetAvailability: doctor id=%d has no working hour anchors", req.DoctorID)
		return &domain.AvailabilityResult{
			Date:              req.Date,
			DoctorID:          req.DoctorID,
			AvailableSlots:    []types.TimeString{},
			FullyBooked:       true,
			NotAvailableToday: false,
		}, nil
	}

	// 5. Получаем активные записи врача на эту дату
	filter := domain.DoctorAppointmentsFilter{
		DoctorID:        req.DoctorID,
		Date:            &req.Date,
		IncludeInactive: false, // Отменённые записи освобождают слот
	}

	appointments, err := uc.appointmentRepo.GetByDoctorWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments for doctor id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Вычитаем занятые слоты, сохраняя порядок candidateSlots
	availableSlots := subtractBookedSlots(candidateSlots, appointments)

	uc.logger.Info("GetAvailability: doctor=%d, date=%s, %d of %d slots available",
		req.DoctorID, req.Date.Format(domain.DateFormat), len(availableSlots), len(candidateSlots))

	return &domain.AvailabilityResult{
		Date:              req.Date,
		DoctorID:          req.DoctorID,
		AvailableSlots:    availableSlots,
		FullyBooked:       len(availableSlots) == 0,
		NotAvailableToday: false,
	}, nil
}

// subtractBookedSlots возвращает слоты, не занятые активными записями.
// Порядок слотов сохраняется.
func subtractBookedSlots(candidateSlots []types.TimeString, appointments []*domain.Appointment) []types.TimeString {
	booked := make(map[types.TimeString]struct{}, len(appointments))
	for _, appt := range appointments {
		if appt.IsActive() {
			booked[appt.TimeSlot] = struct{}{}
		}
	}

	available := make([]types.TimeString, 0, len(candidateSlots))
	for _, slot := range candidateSlots {
		if _, taken := booked[slot]; !taken {
			available = append(available, slot)
		}
	}

	return available
}
