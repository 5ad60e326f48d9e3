package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/LimoB/clinic-booking-service/internal/api/middleware"
	"github.com/LimoB/clinic-booking-service/internal/domain"
	createAppointment "github.com/LimoB/clinic-booking-service/internal/usecase/create_appointment"
)

type fakeUseCase struct {
	result  *domain.Appointment
	err     error
	lastReq *createAppointment.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*domain.Appointment, error) {
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

func newRouter(uc *fakeUseCase) *mux.Router {
	handler := NewHandler(uc, nopLogger{})
	router := mux.NewRouter()
	router.Handle("/api/v1/appointments", middleware.Auth(http.HandlerFunc(handler.Handle))).Methods(http.MethodPost)
	return router
}

func doRequest(t *testing.T, router *mux.Router, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func patientHeaders() map[string]string {
	return map[string]string{
		middleware.HeaderUserID:   "10",
		middleware.HeaderUserRole: "patient",
	}
}

const validBody = `{"doctorId":2,"appointmentDate":"2026-09-14","timeSlot":"09:00","paymentMethod":"card","totalAmount":1500}`

func TestHandle_Created(t *testing.T) {
	monday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{
		result: &domain.Appointment{
			ID:              5,
			UserID:          10,
			DoctorID:        2,
			AppointmentDate: monday,
			TimeSlot:        "09:00",
			Status:          domain.StatusPending,
			PaymentMethod:   "card",
			TotalAmount:     1500,
		},
	}
	router := newRouter(uc)

	recorder := doRequest(t, router, validBody, patientHeaders())
	require.Equal(t, http.StatusCreated, recorder.Code)

	var response AppointmentResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Equal(t, int64(5), response.ID)
	require.Equal(t, "pending", response.Status)
	require.Equal(t, "2026-09-14", response.AppointmentDate)
	require.Equal(t, "09:00", response.TimeSlot)

	// Пациент записывает сам себя
	require.Equal(t, int64(10), uc.lastReq.UserID)
}

func TestHandle_AdminBooksForPatient(t *testing.T) {
	uc := &fakeUseCase{result: &domain.Appointment{ID: 5, UserID: 77, DoctorID: 2, TimeSlot: "09:00"}}
	router := newRouter(uc)

	body := `{"userId":77,"doctorId":2,"appointmentDate":"2026-09-14","timeSlot":"09:00","paymentMethod":"cash"}`
	recorder := doRequest(t, router, body, map[string]string{
		middleware.HeaderUserID:   "1",
		middleware.HeaderUserRole: "admin",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	require.Equal(t, int64(77), uc.lastReq.UserID)
}

func TestHandle_PatientCannotBookForOthers(t *testing.T) {
	uc := &fakeUseCase{result: &domain.Appointment{ID: 5, UserID: 10, DoctorID: 2, TimeSlot: "09:00"}}
	router := newRouter(uc)

	body := `{"userId":77,"doctorId":2,"appointmentDate":"2026-09-14","timeSlot":"09:00","paymentMethod":"cash"}`
	recorder := doRequest(t, router, body, patientHeaders())
	require.Equal(t, http.StatusCreated, recorder.Code)

	// userId в теле игнорируется для пациента
	require.Equal(t, int64(10), uc.lastReq.UserID)
}

func TestHandle_Unauthorized(t *testing.T) {
	router := newRouter(&fakeUseCase{})

	recorder := doRequest(t, router, validBody, nil)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	router := newRouter(&fakeUseCase{})

	recorder := doRequest(t, router, "{not json", patientHeaders())
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	router := newRouter(&fakeUseCase{})

	body := `{"doctorId":2,"appointmentDate":"14.09.2026","timeSlot":"09:00","paymentMethod":"card"}`
	recorder := doRequest(t, router, body, patientHeaders())
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid input", createAppointment.ErrInvalidInput, http.StatusBadRequest},
		{"doctor not found", createAppointment.ErrDoctorNotFound, http.StatusNotFound},
		{"doctor not working", createAppointment.ErrDoctorNotWorking, http.StatusConflict},
		{"slot not offered", createAppointment.ErrSlotNotOffered, http.StatusBadRequest},
		{"slot taken", createAppointment.ErrSlotTaken, http.StatusConflict},
		{"fully booked", createAppointment.ErrDoctorFullyBooked, http.StatusConflict},
		{"schedule misconfigured", createAppointment.ErrScheduleMisconfigured, http.StatusUnprocessableEntity},
		{"internal", createAppointment.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&fakeUseCase{err: tt.err})

			recorder := doRequest(t, router, validBody, patientHeaders())
			require.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}
