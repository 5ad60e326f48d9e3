package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/LimoB/clinic-booking-service/internal/domain"
	apptRepo "github.com/LimoB/clinic-booking-service/internal/infra/storage/appointment"
	"github.com/LimoB/clinic-booking-service/internal/integrations/notifications"
	"github.com/LimoB/clinic-booking-service/internal/service/appointments/models"
)

// Service сервис для работы с записями на приём
type Service struct {
	appointmentRepo    AppointmentRepository
	notificationClient NotificationServiceClient
	logger             Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	notificationClient NotificationServiceClient,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo:    appointmentRepo,
		notificationClient: notificationClient,
		logger:             logger,
	}
}

// GetByID получает запись по ID
// Запись видят администратор, пациент-владелец и назначенный врач
func (s *Service) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for actor=%d(%s)", id, actor.ID, actor.Role)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !actor.CanViewAppointment(appointment) {
		s.logger.Warn("GetByID: access denied for actor=%d(%s) to appointment id=%d", actor.ID, actor.Role, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appointment), nil
}

// GetUserAppointments получает историю записей пациента
// Опционально фильтрует по статусу
func (s *Service) GetUserAppointments(ctx context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetUserAppointments: fetching appointments for user=%d, status=%v", req.UserID, req.Status)

	if !req.Actor.CanListUserAppointments(req.UserID) {
		s.logger.Warn("GetUserAppointments: access denied for actor=%d(%s) to user=%d",
			req.Actor.ID, req.Actor.Role, req.UserID)
		return nil, ErrAccessDenied
	}

	// Конвертируем статус из строки в domain.AppointmentStatus
	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserAppointments: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	appointments, err := s.appointmentRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserAppointments: successfully fetched %d appointments for user=%d",
		len(appointments), req.UserID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetDoctorAppointments получает записи врача с гибкой фильтрацией
// Поддерживает фильтрацию по дате, периоду, статусу и включению неактивных записей
// Доступно администратору и самому врачу
func (s *Service) GetDoctorAppointments(ctx context.Context, req *models.GetDoctorAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetDoctorAppointments: fetching appointments for doctor=%d, actor=%d(%s)",
		req.DoctorID, req.Actor.ID, req.Actor.Role)

	if !req.Actor.CanListDoctorAppointments(req.DoctorID) {
		s.logger.Warn("GetDoctorAppointments: access denied for actor=%d(%s) to doctor=%d",
			req.Actor.ID, req.Actor.Role, req.DoctorID)
		return nil, ErrAccessDenied
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetDoctorAppointments: invalid filter for doctor=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByDoctorWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetDoctorAppointments: repository error for doctor=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: GetDoctorAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDoctorAppointments: successfully fetched %d appointments for doctor=%d",
		len(appointments), req.DoctorID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись на приём
// Доступно администратору и пациенту-владельцу; отменить можно только
// запись в статусе pending или confirmed
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by actor=%d(%s)",
		appointmentID, req.Actor.ID, req.Actor.Role)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for appointment id=%d", appointmentID)
		return fmt.Errorf("%w: cancellation reason must not exceed %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !req.Actor.CanCancelAppointment(appointment) {
		s.logger.Warn("Cancel: access denied for actor=%d(%s) to appointment id=%d",
			req.Actor.ID, req.Actor.Role, appointmentID)
		return ErrAccessDenied
	}

	if !appointment.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s",
			appointmentID, appointment.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, appointmentID, req.CancellationReason); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", appointmentID)

	s.notify(ctx, notifications.EventCancelled, appointment)
	return nil
}

// UpdateStatus обновляет статус записи
// Доступно администратору и назначенному врачу (например, completed после приёма)
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s by actor=%d(%s)",
		appointmentID, req.Status, req.Actor.ID, req.Actor.Role)

	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !req.Actor.CanSetAppointmentStatus(appointment) {
		s.logger.Warn("UpdateStatus: access denied for actor=%d(%s) to appointment id=%d",
			req.Actor.ID, req.Actor.Role, appointmentID)
		return ErrAccessDenied
	}

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, appointmentID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, newStatus); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found during update", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s",
		appointmentID, newStatus)
	return nil
}

// ConfirmPayment подтверждает запись после успешной оплаты
// Единственный путь перевода записи из pending в confirmed.
// Вызывается платёжным сервисом с сервисными правами (admin)
func (s *Service) ConfirmPayment(ctx context.Context, appointmentID int64, actor domain.Actor) (*models.AppointmentResponse, error) {
	s.logger.Info("ConfirmPayment: confirming appointment id=%d by actor=%d(%s)",
		appointmentID, actor.ID, actor.Role)

	if !actor.CanConfirmPayment() {
		s.logger.Warn("ConfirmPayment: access denied for actor=%d(%s)", actor.ID, actor.Role)
		return nil, ErrAccessDenied
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("ConfirmPayment: appointment id=%d not found", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("ConfirmPayment: repository error for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: ConfirmPayment - repository error: %v", ErrInternal, err)
	}

	if appointment.Status != domain.StatusPending {
		s.logger.Warn("ConfirmPayment: appointment id=%d is not pending, status=%s",
			appointmentID, appointment.Status)
		return nil, ErrNotPending
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, domain.StatusConfirmed); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("ConfirmPayment: appointment id=%d not found during update", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("ConfirmPayment: repository error for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: ConfirmPayment - repository error: %v", ErrInternal, err)
	}

	appointment.Status = domain.StatusConfirmed
	s.logger.Info("ConfirmPayment: successfully confirmed appointment id=%d", appointmentID)

	s.notify(ctx, notifications.EventConfirmed, appointment)
	return models.FromDomainAppointment(appointment), nil
}

// notify отправляет уведомление о событии по записи (best-effort)
func (s *Service) notify(ctx context.Context, event notifications.AppointmentEvent, appt *domain.Appointment) {
	err := s.notificationClient.Send(ctx, &notifications.AppointmentNotification{
		Event:           event,
		AppointmentID:   appt.ID,
		UserID:          appt.UserID,
		DoctorID:        appt.DoctorID,
		AppointmentDate: appt.AppointmentDate.Format(domain.DateFormat),
		TimeSlot:        string(appt.TimeSlot),
	})
	if err != nil {
		s.logger.Warn("notify: failed to send %s notification for appointment id=%d: %v",
			event, appt.ID, err)
	}
}
