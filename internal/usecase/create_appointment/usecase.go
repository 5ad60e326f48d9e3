package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/LimoB/clinic-booking-service/internal/domain"
	apptRepo "github.com/LimoB/clinic-booking-service/internal/infra/storage/appointment"
	scheduleRepo "github.com/LimoB/clinic-booking-service/internal/infra/storage/schedule"
	"github.com/LimoB/clinic-booking-service/internal/integrations/notifications"
	"github.com/LimoB/clinic-booking-service/internal/integrations/payments"
)

// UseCase use case для создания записи на приём
type UseCase struct {
	appointmentRepo    AppointmentRepository
	scheduleRepo       ScheduleRepository
	paymentClient      PaymentServiceClient
	notificationClient NotificationServiceClient
	txManager          TransactionManager
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	paymentClient PaymentServiceClient,
	notificationClient NotificationServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:    appointmentRepo,
		scheduleRepo:       scheduleRepo,
		paymentClient:      paymentClient,
		notificationClient: notificationClient,
		txManager:          txManager,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// Execute выполняет use case создания записи на приём
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// уникальность активного слота дополнительно гарантируется частичным
// уникальным индексом в БД
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Appointment, error) {
	uc.logger.Info("CreateAppointment: user=%d, doctor=%d, date=%s, slot=%s",
		req.UserID, req.DoctorID, req.AppointmentDate.Format(domain.DateFormat), req.TimeSlot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что дата не в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.AppointmentDate, now); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем расписание врача
		schedule, err := uc.scheduleRepo.GetByDoctorID(txCtx, req.DoctorID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Warn("CreateAppointment: doctor id=%d not found", req.DoctorID)
				return ErrDoctorNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get schedule for doctor id=%d: %v", req.DoctorID, err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		// 3.2. Проверяем, что врач принимает в этот день недели
		if !schedule.WorksOn(req.AppointmentDate.Weekday()) {
			uc.logger.Warn("CreateAppointment: doctor id=%d is not working on %s",
				req.DoctorID, req.AppointmentDate.Weekday())
			return ErrDoctorNotWorking
		}

		// 3.3. Строим сетку слотов из якорей расписания
		candidates, err := domain.GenerateSlots(schedule.WorkingHourAnchors, schedule.SlotDurationMinutes)
		if err != nil {
			uc.logger.Error("CreateAppointment: schedule for doctor id=%d is misconfigured: %v", req.DoctorID, err)
			return fmt.Errorf("%w: %v", ErrScheduleMisconfigured, err)
		}

		// 3.4. Проверяем, что запрошенный слот входит в сетку расписания
		if !slotOffered(candidates, req.TimeSlot) {
			uc.logger.Warn("CreateAppointment: slot %s is not offered by doctor id=%d", req.TimeSlot, req.DoctorID)
			return ErrSlotNotOffered
		}

		// 3.5. Получаем все активные записи врача на эту дату с блокировкой (FOR UPDATE)
		filter := domain.DoctorAppointmentsFilter{
			DoctorID: req.DoctorID,
			Date:     &req.AppointmentDate,
		}

		appointments, err := uc.appointmentRepo.GetByDoctorWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 3.6. Ранний выход: слот уже занят активной записью
		for _, appt := range appointments {
			if appt.TimeSlot == req.TimeSlot {
				uc.logger.Warn("CreateAppointment: slot %s is already taken for doctor id=%d on %s",
					req.TimeSlot, req.DoctorID, req.AppointmentDate.Format(domain.DateFormat))
				return ErrSlotTaken
			}
		}

		// 3.7. Ранний выход: все слоты на дату заняты
		if len(appointments) >= len(candidates) {
			uc.logger.Warn("CreateAppointment: doctor id=%d is fully booked on %s (%d/%d slots taken)",
				req.DoctorID, req.AppointmentDate.Format(domain.DateFormat), len(appointments), len(candidates))
			return ErrDoctorFullyBooked
		}

		// 3.8. Создаем запись. Статус всегда pending: подтверждение происходит
		// только через колбэк оплаты, независимо от способа оплаты
		appointment := &domain.Appointment{
			UserID:          req.UserID,
			DoctorID:        req.DoctorID,
			AppointmentDate: req.AppointmentDate,
			TimeSlot:        req.TimeSlot,
			Status:          domain.StatusPending,
			PaymentMethod:   req.PaymentMethod,
			TotalAmount:     req.TotalAmount,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				// Конкурирующая транзакция успела занять слот: индекс в БД - источник истины
				uc.logger.Warn("CreateAppointment: slot %s lost to concurrent booking for doctor id=%d",
					req.TimeSlot, req.DoctorID)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 4. Создаем платежную запись после коммита: сбой интеграции не должен
	// откатывать уже созданную запись на приём
	uc.createPaymentRecord(ctx, result)

	// 5. Отправляем уведомление (best-effort)
	uc.notify(ctx, result)

	return result, nil
}

// createPaymentRecord создает платежную запись в PaymentService
// Ошибка только логируется: запись на приём уже создана
func (uc *UseCase) createPaymentRecord(ctx context.Context, appt *domain.Appointment) {
	status := payments.StatusAwaitingCapture
	if appt.PaymentMethod == domain.PaymentMethodCash {
		status = payments.StatusCashOnVisit
	}

	_, err := uc.paymentClient.CreatePaymentRecord(ctx, &payments.CreatePaymentRequest{
		AppointmentID: appt.ID,
		Amount:        appt.TotalAmount,
		Method:        appt.PaymentMethod,
		Status:        status,
	})
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to create payment record for appointment id=%d: %v",
			appt.ID, err)
	}
}

// notify отправляет уведомление о созданной записи (best-effort)
func (uc *UseCase) notify(ctx context.Context, appt *domain.Appointment) {
	err := uc.notificationClient.Send(ctx, &notifications.AppointmentNotification{
		Event:           notifications.EventBooked,
		AppointmentID:   appt.ID,
		UserID:          appt.UserID,
		DoctorID:        appt.DoctorID,
		AppointmentDate: appt.AppointmentDate.Format(domain.DateFormat),
		TimeSlot:        string(appt.TimeSlot),
	})
	if err != nil {
		uc.logger.Warn("CreateAppointment: failed to send notification for appointment id=%d: %v",
			appt.ID, err)
	}
}
