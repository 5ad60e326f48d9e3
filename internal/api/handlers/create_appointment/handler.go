package create_appointment

import (
	"errors"
	"net/http"

	"github.com/LimoB/clinic-booking-service/internal/api/handlers"
	"github.com/LimoB/clinic-booking-service/internal/api/middleware"
	createAppointment "github.com/LimoB/clinic-booking-service/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgDoctorNotFound     = "врач не найден"
	msgDoctorNotWorking   = "врач не принимает в выбранный день"
	msgSlotNotOffered     = "выбранное время не входит в расписание врача"
	msgSlotTaken          = "выбранное время уже занято"
	msgFullyBooked        = "у врача нет свободного времени на выбранную дату"
	msgScheduleMisconfig  = "расписание врача настроено некорректно"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: user_id=%d, doctor_id=%d, error=%v",
				useCaseReq.UserID, req.DoctorID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createAppointment.ErrDoctorNotFound):
			h.logger.Warn("POST /appointments - Doctor not found: doctor_id=%d", req.DoctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, createAppointment.ErrDoctorNotWorking):
			h.logger.Warn("POST /appointments - Doctor not working: doctor_id=%d, date=%s",
				req.DoctorID, req.AppointmentDate)
			handlers.RespondError(w, http.StatusConflict, msgDoctorNotWorking)

		case errors.Is(err, createAppointment.ErrSlotNotOffered):
			h.logger.Warn("POST /appointments - Slot not offered: doctor_id=%d, slot=%s",
				req.DoctorID, req.TimeSlot)
			handlers.RespondBadRequest(w, msgSlotNotOffered)

		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: doctor_id=%d, date=%s, slot=%s",
				req.DoctorID, req.AppointmentDate, req.TimeSlot)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrDoctorFullyBooked):
			h.logger.Warn("POST /appointments - Fully booked: doctor_id=%d, date=%s",
				req.DoctorID, req.AppointmentDate)
			handlers.RespondError(w, http.StatusConflict, msgFullyBooked)

		case errors.Is(err, createAppointment.ErrScheduleMisconfigured):
			h.logger.Error("POST /appointments - Schedule misconfigured: doctor_id=%d, error=%v",
				req.DoctorID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgScheduleMisconfig)

		default:
			h.logger.Error("POST /appointments - Failed: user_id=%d, doctor_id=%d, error=%v",
				useCaseReq.UserID, req.DoctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, user_id=%d, doctor_id=%d",
		result.ID, result.UserID, result.DoctorID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainAppointment(result))
}
