package get_available_slots

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

// Handle GET /api/v1/available-slots/{doctorId}/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID, err := strconv.ParseInt(vars["doctorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid doctor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date: %v", err)
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
			h.logger.Warn("GET /available-slots - Invalid input: doctor_id=%d, error=%v", doctorID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailability.ErrDoctorNotFound):
			h.logger.Warn("GET /available-slots - Doctor not found: doctor_id=%d", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, getAvailability.ErrScheduleMisconfigured):
			h.logger.Error("GET /available-slots - Schedule misconfigured: doctor_id=%d, error=%v", doctorID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgScheduleMisconfig)

		default:
			h.logger.Error("GET /available-slots - Failed: doctor_id=%d, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - Success: doctor_id=%d, date=%s, slots=%d",
		doctorID, vars["date"], len(result.AvailableSlots))
	handlers.RespondJSON(w, http.StatusOK, FromAvailabilityResult(result))
}
