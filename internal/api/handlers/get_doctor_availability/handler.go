package get_doctor_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/LimoB/clinic-booking-service/internal/api/handlers"
	"github.com/LimoB/clinic-booking-service/internal/domain"
	getAvailability "github.com/LimoB/clinic-booking-service/internal/usecase/get_availability"
)

const (
	msgInvalidDoctorID   = "некорректный ID врача"
	msgMissingDate       = "отсутствует параметр date"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDoctorNotFound    = "врач не найден"
	msgScheduleMisconfig = "расписание врача настроено некорректно"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID, err := strconv.ParseInt(vars["doctorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /doctors/{id}/availability - Invalid doctor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /doctors/{id}/availability - Missing date: doctor_id=%d", doctorID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /doctors/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		DoctorID: doctorID,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /doctors/{id}/availability - Invalid input: doctor_id=%d, error=%v", doctorID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailability.ErrDoctorNotFound):
			h.logger.Warn("GET /doctors/{id}/availability - Doctor not found: doctor_id=%d", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, getAvailability.ErrScheduleMisconfigured):
			h.logger.Error("GET /doctors/{id}/availability - Schedule misconfigured: doctor_id=%d, error=%v",
				doctorID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgScheduleMisconfig)

		default:
			h.logger.Error("GET /doctors/{id}/availability - Failed: doctor_id=%d, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /doctors/{id}/availability - Success: doctor_id=%d, date=%s, status=%s",
		doctorID, dateStr, result.Status())
	handlers.RespondJSON(w, http.StatusOK, FromAvailabilityResult(result))
}
