package appointments

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LimoB/clinic-booking-service/internal/domain"
	apptRepo "github.com/LimoB/clinic-booking-service/internal/infra/storage/appointment"
	"github.com/LimoB/clinic-booking-service/internal/integrations/notifications"
	"github.com/LimoB/clinic-booking-service/internal/service/appointments/models"
)

// Фейки контрактов

type fakeAppointmentRepo struct {
	appointment *domain.Appointment
	getErr      error

	byUser   []*domain.Appointment
	byDoctor []*domain.Appointment
	userID   int64
	status   *domain.AppointmentStatus
	filter   domain.DoctorAppointmentsFilter

	updatedStatus *domain.AppointmentStatus
	updateErr     error
	cancelledID   int64
	cancelReason  string
	cancelErr     error
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.appointment, nil
}

func (f *fakeAppointmentRepo) GetByUserID(_ context.Context, userID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	f.userID = userID
	f.status = status
	return f.byUser, nil
}

func (f *fakeAppointmentRepo) GetByDoctorWithFilter(_ context.Context, filter domain.DoctorAppointmentsFilter) ([]*domain.Appointment, error) {
	f.filter = filter
	return f.byDoctor, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, _ int64, status domain.AppointmentStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedStatus = &status
	return nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, id int64, reason string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelledID = id
	f.cancelReason = reason
	return nil
}

type fakeNotificationClient struct {
	sent []*notifications.AppointmentNotification
}

func (f *fakeNotificationClient) Send(_ context.Context, n *notifications.AppointmentNotification) error {
	f.sent = append(f.sent, n)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Хелперы

var (
	admin        = domain.Actor{ID: 1, Role: domain.RoleAdmin}
	owner        = domain.Actor{ID: 10, Role: domain.RolePatient}
	otherPatient = domain.Actor{ID: 99, Role: domain.RolePatient}
	doctor       = domain.Actor{ID: 2, Role: domain.RoleDoctor}
)

func pendingAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              5,
		UserID:          10,
		DoctorID:        2,
		AppointmentDate: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		TimeSlot:        "09:00",
		Status:          domain.StatusPending,
	}
}

func newTestService(repo *fakeAppointmentRepo, notification *fakeNotificationClient) *Service {
	return NewService(repo, notification, nopLogger{})
}

// GetByID

func TestGetByID_Owner(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: pendingAppointment()}
	svc := newTestService(repo, &fakeNotificationClient{})

	result, err := svc.GetByID(context.Background(), 5, owner)
	require.NoError(t, err)
	require.Equal(t, int64(5), result.ID)
	require.Equal(t, string(domain.StatusPending), result.Status)
}

func TestGetByID_AssignedDoctor(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: pendingAppointment()}
	svc := newTestService(repo, &fakeNotificationClient{})

	_, err := svc.GetByID(context.Background(), 5, doctor)
	require.NoError(t, err)
}

func TestGetByID_OtherPatientDenied(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: pendingAppointment()}
	svc := newTestService(repo, &fakeNotificationClient{})

	_, err := svc.GetByID(context.Background(), 5, otherPatient)
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeAppointmentRepo{getErr: apptRepo.ErrAppointmentNotFound}
	svc := newTestService(repo, &fakeNotificationClient{})

	_, err := svc.GetByID(context.Background(), 5, admin)
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

// GetUserAppointments

func TestGetUserAppointments_Owner(t *testing.T) {
	repo := &fakeAppointmentRepo{byUser: []*domain.Appointment{pendingAppointment()}}
	svc := newTestService(repo, &fakeNotificationClient{})

	result, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		Actor:  owner,
		UserID: 10,
	})
	require.NoError(t, err)
	require.Len(t, result.Appointments, 1)
	require.Equal(t, int64(10), repo.userID)
	require.Nil(t, repo.status)
}

func TestGetUserAppointments_StatusFilter(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := newTestService(repo, &fakeNotificationClient{})

	status := "confirmed"
	_, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		Actor:  admin,
		UserID: 10,
		Status: &status,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.status)
	require.Equal(t, domain.StatusConfirmed, *repo.status)
}

func TestGetUserAppointments_InvalidStatus(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{}, &fakeNotificationClient{})

	status := "unknown"
	_, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		Actor:  admin,
		UserID: 10,
		Status: &status,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserAppointments_OtherUserDenied(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{}, &fakeNotificationClient{})

	_, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		Actor:  otherPatient,
		UserID: 10,
	})
	require.ErrorIs(t, err, ErrAccessDenied)
}

// GetDoctorAppointments

func TestGetDoctorAppointments_SelfDoctor(t *testing.T) {
	repo := &fakeAppointmentRepo{byDoctor: []*domain.Appointment{pendingAppointment()}}
	svc := newTestService(repo, &fakeNotificationClient{})

	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	result, err := svc.GetDoctorAppointments(context.Background(), &models.GetDoctorAppointmentsRequest{
		Actor:    doctor,
		DoctorID: 2,
		Date:     &date,
	})
	require.NoError(t, err)
	require.Len(t, result.Appointments, 1)
	require.Equal(t, int64(2), repo.filter.DoctorID)
	require.NotNil(t, repo.filter.Date)
}

func TestGetDoctorAppointments_OtherDoctorDenied(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{}, &fakeNotificationClient{})

	_, err := svc.GetDoctorAppointments(context.Background(), &models.GetDoctorAppointmentsRequest{
		Actor:    domain.Actor{ID: 7, Role: domain.RoleDoctor},
		DoctorID: 2,
	})
	require.ErrorIs(t, err, ErrAccessDenied)
}

// Cancel

func TestCancel_Owner(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: pendingAppointment()}
	notification := &fakeNotificationClient{}
	svc := newTestService(repo, notification)

	err := svc.Cancel(context.Background(), 5, &models.CancelAppointmentRequest{
		Actor:              owner,
		CancellationReason: "не смогу прийти",
	})
	require.NoError(t, err)
	require.Equal(t, int64(5), repo.cancelledID)
	require.Equal(t, "не смогу прийти", repo.cancelReason)

	require.Len(t, notification.sent, 1)
	require.Equal(t, notifications.EventCancelled, notification.sent[0].Event)
}

func TestCancel_DoctorDenied(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: pendingAppointment()}
	svc := newTestService(repo, &fakeNotificationClient{})

	err := svc.Cancel(context.Background(), 5, &models.CancelAppointmentRequest{Actor: doctor})
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_CompletedNotCancellable(t *testing.T) {
	appt := pendingAppointment()
	appt.Status = domain.StatusCompleted
	repo := &fakeAppointmentRepo{appointment: appt}
	svc := newTestService(repo, &fakeNotificationClient{})

	err := svc.Cancel(context.Background(), 5, &models.CancelAppointmentRequest{Actor: admin})
	require.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_ReasonTooLong(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{appointment: pendingAppointment()}, &fakeNotificationClient{})

	err := svc.Cancel(context.Background(), 5, &models.CancelAppointmentRequest{
		Actor:              owner,
		CancellationReason: strings.Repeat("a", domain.MaxCancellationReasonLength+1),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

// UpdateStatus

func TestUpdateStatus_AssignedDoctor(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: pendingAppointment()}
	svc := newTestService(repo, &fakeNotificationClient{})

	err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{
		Actor:  doctor,
		Status: "completed",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.updatedStatus)
	require.Equal(t, domain.StatusCompleted, *repo.updatedStatus)
}

func TestUpdateStatus_PatientDenied(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: pendingAppointment()}
	svc := newTestService(repo, &fakeNotificationClient{})

	err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{
		Actor:  owner,
		Status: "completed",
	})
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: pendingAppointment()}
	svc := newTestService(repo, &fakeNotificationClient{})

	err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{
		Actor:  admin,
		Status: "archived",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

// ConfirmPayment

func TestConfirmPayment_Admin(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: pendingAppointment()}
	notification := &fakeNotificationClient{}
	svc := newTestService(repo, notification)

	result, err := svc.ConfirmPayment(context.Background(), 5, admin)
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusConfirmed), result.Status)
	require.NotNil(t, repo.updatedStatus)
	require.Equal(t, domain.StatusConfirmed, *repo.updatedStatus)

	require.Len(t, notification.sent, 1)
	require.Equal(t, notifications.EventConfirmed, notification.sent[0].Event)
}

func TestConfirmPayment_NotPending(t *testing.T) {
	appt := pendingAppointment()
	appt.Status = domain.StatusConfirmed
	repo := &fakeAppointmentRepo{appointment: appt}
	svc := newTestService(repo, &fakeNotificationClient{})

	_, err := svc.ConfirmPayment(context.Background(), 5, admin)
	require.ErrorIs(t, err, ErrNotPending)
}

func TestConfirmPayment_NonAdminDenied(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: pendingAppointment()}
	svc := newTestService(repo, &fakeNotificationClient{})

	_, err := svc.ConfirmPayment(context.Background(), 5, owner)
	require.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.ConfirmPayment(context.Background(), 5, doctor)
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestConfirmPayment_RepoError(t *testing.T) {
	repo := &fakeAppointmentRepo{getErr: errors.New("connection refused")}
	svc := newTestService(repo, &fakeNotificationClient{})

	_, err := svc.ConfirmPayment(context.Background(), 5, admin)
	require.ErrorIs(t, err, ErrInternal)
}
