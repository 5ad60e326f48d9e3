package get_bulk_availability

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/LimoB/clinic-booking-service/internal/api/handlers"
	"github.com/LimoB/clinic-booking-service/internal/domain"
	getBulkAvailability "github.com/LimoB/clinic-booking-service/internal/usecase/get_bulk_availability"
)

const (
	msgMissingDate      = "отсутствует параметр date"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDoctorIDs = "некорректный параметр doctorIds"
)

type Handler struct {
	useCase GetBulkAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetBulkAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability-status?date=YYYY-MM-DD&doctorIds=1,2,3
// Параметр doctorIds опционален: без него статус считается по всем врачам
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability-status - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability-status - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	doctorIDs, err := parseDoctorIDs(r.URL.Query().Get("doctorIds"))
	if err != nil {
		h.logger.Warn("GET /availability-status - Invalid doctor ids: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorIDs)
		return
	}

	results, err := h.useCase.Execute(r.Context(), &getBulkAvailability.Request{
		Date:      date,
		DoctorIDs: doctorIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, getBulkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability-status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDoctorIDs)

		default:
			h.logger.Error("GET /availability-status - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability-status - Success: date=%s, doctors=%d", dateStr, len(results))
	handlers.RespondJSON(w, http.StatusOK, FromAvailabilityResults(dateStr, results))
}

// parseDoctorIDs разбирает список ID врачей из query параметра
func parseDoctorIDs(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
