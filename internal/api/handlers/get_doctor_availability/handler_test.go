package get_doctor_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/LimoB/clinic-booking-service/internal/domain"
	getAvailability "github.com/LimoB/clinic-booking-service/internal/usecase/get_availability"
	"github.com/LimoB/clinic-booking-service/pkg/types"
)

type fakeUseCase struct {
	result  *domain.AvailabilityResult
	err     error
	lastReq *getAvailability.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailability.Request) (*domain.AvailabilityResult, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var monday = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

func newRouter(uc *fakeUseCase) *mux.Router {
	handler := NewHandler(uc, nopLogger{})
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/doctors/{doctorId}/availability", handler.Handle).Methods(http.MethodGet)
	return router
}

func doRequest(t *testing.T, router *mux.Router, url string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, url, nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHandle_Available(t *testing.T) {
	uc := &fakeUseCase{
		result: &domain.AvailabilityResult{
			Date:           monday,
			DoctorID:       2,
			AvailableSlots: []types.TimeString{"09:00", "10:00"},
		},
	}
	router := newRouter(uc)

	recorder := doRequest(t, router, "/api/v1/doctors/2/availability?date=2026-09-14")
	require.Equal(t, http.StatusOK, recorder.Code)

	var response AvailabilityResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Equal(t, int64(2), response.DoctorID)
	require.Equal(t, "2026-09-14", response.Date)
	require.Equal(t, domain.AvailabilityStatusAvailable, response.Status)
	require.Equal(t, []string{"09:00", "10:00"}, response.AvailableSlots)
	require.False(t, response.FullyBooked)

	require.Equal(t, int64(2), uc.lastReq.DoctorID)
	require.Equal(t, monday, uc.lastReq.Date)
}

func TestHandle_FullyBooked(t *testing.T) {
	uc := &fakeUseCase{
		result: &domain.AvailabilityResult{
			Date:           monday,
			DoctorID:       2,
			AvailableSlots: []types.TimeString{},
			FullyBooked:    true,
		},
	}
	router := newRouter(uc)

	recorder := doRequest(t, router, "/api/v1/doctors/2/availability?date=2026-09-14")
	require.Equal(t, http.StatusOK, recorder.Code)

	var response AvailabilityResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Equal(t, domain.AvailabilityStatusFullyBooked, response.Status)
	require.Empty(t, response.AvailableSlots)
	require.True(t, response.FullyBooked)
}

func TestHandle_InvalidDoctorID(t *testing.T) {
	router := newRouter(&fakeUseCase{})

	recorder := doRequest(t, router, "/api/v1/doctors/abc/availability?date=2026-09-14")
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandle_MissingDate(t *testing.T) {
	router := newRouter(&fakeUseCase{})

	recorder := doRequest(t, router, "/api/v1/doctors/2/availability")
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	router := newRouter(&fakeUseCase{})

	recorder := doRequest(t, router, "/api/v1/doctors/2/availability?date=14.09.2026")
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"doctor not found", getAvailability.ErrDoctorNotFound, http.StatusNotFound},
		{"schedule misconfigured", getAvailability.ErrScheduleMisconfigured, http.StatusUnprocessableEntity},
		{"internal", getAvailability.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&fakeUseCase{err: tt.err})

			recorder := doRequest(t, router, "/api/v1/doctors/2/availability?date=2026-09-14")
			require.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}
