package reschedule_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/LimoB/clinic-booking-service/internal/api/handlers"
	"github.com/LimoB/clinic-booking-service/internal/api/middleware"
	rescheduleAppointment "github.com/LimoB/clinic-booking-service/internal/usecase/reschedule_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "запись не найдена"
	msgForbidden            = "доступ запрещен"
	msgNotReschedulable     = "запись в текущем статусе нельзя перенести"
	msgDoctorNotWorking     = "врач не принимает в выбранный день"
	msgSlotNotOffered       = "выбранное время не входит в расписание врача"
	msgSlotTaken            = "выбранное время уже занято"
	msgScheduleMisconfig    = "расписание врача настроено некорректно"
)

type Handler struct {
	useCase RescheduleAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/{appointmentId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id}/reschedule - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PUT /appointments/{id}/reschedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RescheduleAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor, appointmentID)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleAppointment.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{id}/reschedule - Invalid input: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidDateOrTime)

		case errors.Is(err, rescheduleAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id}/reschedule - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleAppointment.ErrAccessDenied):
			h.logger.Warn("PUT /appointments/{id}/reschedule - Access denied: appointment_id=%d, actor=%d",
				appointmentID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rescheduleAppointment.ErrNotReschedulable):
			h.logger.Warn("PUT /appointments/{id}/reschedule - Not reschedulable: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgNotReschedulable)

		case errors.Is(err, rescheduleAppointment.ErrDoctorNotWorking):
			h.logger.Warn("PUT /appointments/{id}/reschedule - Doctor not working: appointment_id=%d, date=%s",
				appointmentID, req.NewDate)
			handlers.RespondError(w, http.StatusConflict, msgDoctorNotWorking)

		case errors.Is(err, rescheduleAppointment.ErrSlotNotOffered):
			h.logger.Warn("PUT /appointments/{id}/reschedule - Slot not offered: appointment_id=%d, slot=%s",
				appointmentID, req.NewTimeSlot)
			handlers.RespondBadRequest(w, msgSlotNotOffered)

		case errors.Is(err, rescheduleAppointment.ErrSlotTaken):
			h.logger.Warn("PUT /appointments/{id}/reschedule - Slot taken: appointment_id=%d, date=%s, slot=%s",
				appointmentID, req.NewDate, req.NewTimeSlot)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, rescheduleAppointment.ErrScheduleMisconfigured):
			h.logger.Error("PUT /appointments/{id}/reschedule - Schedule misconfigured: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgScheduleMisconfig)

		default:
			h.logger.Error("PUT /appointments/{id}/reschedule - Failed: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{id}/reschedule - Rescheduled: appointment_id=%d, new_date=%s, new_slot=%s",
		result.ID, req.NewDate, req.NewTimeSlot)
	handlers.RespondJSON(w, http.StatusOK, FromDomainAppointment(result))
}
