package update_doctor_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/LimoB/clinic-booking-service/internal/api/handlers"
	"github.com/LimoB/clinic-booking-service/internal/api/middleware"
	"github.com/LimoB/clinic-booking-service/internal/service/schedule"
	"github.com/LimoB/clinic-booking-service/internal/service/schedule/models"
)

const (
	msgInvalidDoctorID    = "некорректный ID врача"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSchedule    = "некорректное расписание"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
)

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	WorkingDays         []string `json:"workingDays"`        // ["Monday", "Wednesday"]
	WorkingHourAnchors  []string `json:"workingHourAnchors"` // ["09:00", "10:00"]
	SlotDurationMinutes int      `json:"slotDurationMinutes"`
}

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/doctors/{doctorId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID, err := strconv.ParseInt(vars["doctorId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /doctors/{id}/schedule - Invalid doctor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PUT /doctors/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /doctors/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &models.UpdateScheduleRequest{
		Actor:               actor,
		DoctorID:            doctorID,
		WorkingDays:         req.WorkingDays,
		WorkingHourAnchors:  req.WorkingHourAnchors,
		SlotDurationMinutes: req.SlotDurationMinutes,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /doctors/{id}/schedule - Access denied: doctor_id=%d, actor=%d",
				doctorID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /doctors/{id}/schedule - Invalid schedule: doctor_id=%d, error=%v", doctorID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidSchedule)

		default:
			h.logger.Error("PUT /doctors/{id}/schedule - Failed: doctor_id=%d, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /doctors/{id}/schedule - Updated: doctor_id=%d", doctorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
