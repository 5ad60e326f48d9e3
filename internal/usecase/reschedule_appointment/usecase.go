package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/LimoB/clinic-booking-service/internal/domain"
	apptRepo "github.com/LimoB/clinic-booking-service/internal/infra/storage/appointment"
	scheduleRepo "github.com/LimoB/clinic-booking-service/internal/infra/storage/schedule"
	"github.com/LimoB/clinic-booking-service/internal/integrations/notifications"
	"github.com/LimoB/clinic-booking-service/pkg/ptr"
)

// UseCase use case для переноса записи на приём
type UseCase struct {
	appointmentRepo    AppointmentRepository
	scheduleRepo       ScheduleRepository
	notificationClient NotificationServiceClient
	txManager          TransactionManager
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	notificationClient NotificationServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:    appointmentRepo,
		scheduleRepo:       scheduleRepo,
		notificationClient: notificationClient,
		txManager:          txManager,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// Execute выполняет use case переноса записи на приём
// Перенос проходит те же проверки доступности, что и создание,
// но исключает саму переносимую запись из проверки конфликтов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Appointment, error) {
	uc.logger.Info("RescheduleAppointment: actor=%d(%s), appointment=%d, new date=%s, new slot=%s",
		req.Actor.ID, req.Actor.Role, req.AppointmentID,
		req.NewDate.Format(domain.DateFormat), req.NewTimeSlot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что новая дата не в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.NewDate, now); err != nil {
		uc.logger.Warn("RescheduleAppointment: date validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем запись
		appointment, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("RescheduleAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RescheduleAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 3.2. Проверяем права доступа
		if !req.Actor.CanRescheduleAppointment(appointment) {
			uc.logger.Warn("RescheduleAppointment: actor id=%d role=%s cannot reschedule appointment id=%d",
				req.Actor.ID, req.Actor.Role, req.AppointmentID)
			return ErrAccessDenied
		}

		// 3.3. Проверяем, что запись можно перенести
		if !appointment.CanBeRescheduled() {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d in status %s cannot be rescheduled",
				req.AppointmentID, appointment.Status)
			return ErrNotReschedulable
		}

		// 3.4. Получаем расписание врача
		schedule, err := uc.scheduleRepo.GetByDoctorID(txCtx, appointment.DoctorID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				// Запись существует, но расписание врача удалено: работаем по дефолтному
				schedule = domain.DefaultSchedule(appointment.DoctorID)
				uc.logger.Info("RescheduleAppointment: using default schedule for doctor id=%d", appointment.DoctorID)
			} else {
				uc.logger.Error("RescheduleAppointment: failed to get schedule for doctor id=%d: %v",
					appointment.DoctorID, err)
				return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
			}
		}

		// 3.5. Проверяем, что врач принимает в этот день недели
		if !schedule.WorksOn(req.NewDate.Weekday()) {
			uc.logger.Warn("RescheduleAppointment: doctor id=%d is not working on %s",
				appointment.DoctorID, req.NewDate.Weekday())
			return ErrDoctorNotWorking
		}

		// 3.6. Строим сетку слотов и проверяем, что новый слот в неё входит
		candidates, err := domain.GenerateSlots(schedule.WorkingHourAnchors, schedule.SlotDurationMinutes)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: schedule for doctor id=%d is misconfigured: %v",
				appointment.DoctorID, err)
			return fmt.Errorf("%w: %v", ErrScheduleMisconfigured, err)
		}

		if !slotOffered(candidates, req.NewTimeSlot) {
			uc.logger.Warn("RescheduleAppointment: slot %s is not offered by doctor id=%d",
				req.NewTimeSlot, appointment.DoctorID)
			return ErrSlotNotOffered
		}

		// 3.7. Проверяем конфликты на новую дату с блокировкой (FOR UPDATE),
		// исключая саму переносимую запись
		filter := domain.DoctorAppointmentsFilter{
			DoctorID:  appointment.DoctorID,
			Date:      &req.NewDate,
			ExcludeID: ptr.Ptr(appointment.ID),
		}

		appointments, err := uc.appointmentRepo.GetByDoctorWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		for _, appt := range appointments {
			if appt.TimeSlot == req.NewTimeSlot {
				uc.logger.Warn("RescheduleAppointment: slot %s is already taken for doctor id=%d on %s",
					req.NewTimeSlot, appointment.DoctorID, req.NewDate.Format(domain.DateFormat))
				return ErrSlotTaken
			}
		}

		// 3.8. Переносим запись
		updated, err := uc.appointmentRepo.Reschedule(txCtx, appointment.ID, req.NewDate, req.NewTimeSlot)
		if err != nil {
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				uc.logger.Warn("RescheduleAppointment: slot %s lost to concurrent booking for doctor id=%d",
					req.NewTimeSlot, appointment.DoctorID)
				return ErrSlotTaken
			}
			uc.logger.Error("RescheduleAppointment: failed to reschedule appointment id=%d: %v",
				appointment.ID, err)
			return fmt.Errorf("%w: failed to reschedule appointment: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: successfully rescheduled appointment id=%d", result.ID)

	// 4. Отправляем уведомление (best-effort)
	uc.notify(ctx, result)

	return result, nil
}

// notify отправляет уведомление о переносе записи (best-effort)
func (uc *UseCase) notify(ctx context.Context, appt *domain.Appointment) {
	err := uc.notificationClient.Send(ctx, &notifications.AppointmentNotification{
		Event:           notifications.EventRescheduled,
		AppointmentID:   appt.ID,
		UserID:          appt.UserID,
		DoctorID:        appt.DoctorID,
		AppointmentDate: appt.AppointmentDate.Format(domain.DateFormat),
		TimeSlot:        string(appt.TimeSlot),
	})
	if err != nil {
		uc.logger.Warn("RescheduleAppointment: failed to send notification for appointment id=%d: %v",
			appt.ID, err)
	}
}
