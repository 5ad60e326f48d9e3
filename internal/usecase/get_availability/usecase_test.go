package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LimoB/clinic-booking-service/internal/domain"
	scheduleRepo "github.com/LimoB/clinic-booking-service/internal/infra/storage/schedule"
	"github.com/LimoB/clinic-booking-service/pkg/types"
)

// Фейки контрактов

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
	lastFilter   domain.DoctorAppointmentsFilter
}

func (f *fakeAppointmentRepo) GetByDoctorWithFilter(_ context.Context, filter domain.DoctorAppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments, nil
}

type fakeScheduleRepo struct {
	schedule *domain.DoctorSchedule
	err      error
}

func (f *fakeScheduleRepo) GetByDoctorID(_ context.Context, _ int64) (*domain.DoctorSchedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.schedule, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Хелперы

func anchors(values ...string) []types.TimeString {
	result := make([]types.TimeString, len(values))
	for i, v := range values {
		result[i] = types.TimeString(v)
	}
	return result
}

func slotStrings(slots []types.TimeString) []string {
	result := make([]string, len(slots))
	for i, s := range slots {
		result[i] = s.String()
	}
	return result
}

// monday - рабочий понедельник для тестового расписания
var monday = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

func workingSchedule() *domain.DoctorSchedule {
	return &domain.DoctorSchedule{
		DoctorID:            1,
		WorkingDays:         []string{"Monday", "Wednesday"},
		WorkingHourAnchors:  anchors("09:00", "10:00", "11:00"),
		SlotDurationMinutes: 60,
	}
}

func booked(slots ...string) []*domain.Appointment {
	appts := make([]*domain.Appointment, len(slots))
	for i, s := range slots {
		appts[i] = &domain.Appointment{
			DoctorID: 1,
			TimeSlot: types.TimeString(s),
			Status:   domain.StatusConfirmed,
		}
	}
	return appts
}

func TestExecute_AllSlotsFree(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{schedule: workingSchedule()}, nopLogger{})

	result, err := uc.Execute(context.Background(), &Request{DoctorID: 1, Date: monday})
	require.NoError(t, err)
	require.Equal(t, []string{"09:00", "10:00", "11:00"}, slotStrings(result.AvailableSlots))
	require.False(t, result.FullyBooked)
	require.False(t, result.NotAvailableToday)
	require.Equal(t, domain.AvailabilityStatusAvailable, result.Status())
}

func TestExecute_SomeSlotsBooked(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{appointments: booked("10:00")}
	uc := NewUseCase(apptRepo, &fakeScheduleRepo{schedule: workingSchedule()}, nopLogger{})

	result, err := uc.Execute(context.Background(), &Request{DoctorID: 1, Date: monday})
	require.NoError(t, err)
	require.Equal(t, []string{"09:00", "11:00"}, slotStrings(result.AvailableSlots))
	require.False(t, result.FullyBooked)

	// Фильтр должен запрашивать только активные записи на дату
	require.NotNil(t, apptRepo.lastFilter.Date)
	require.False(t, apptRepo.lastFilter.IncludeInactive)
}

func TestExecute_FullyBooked(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{appointments: booked("09:00", "10:00", "11:00")}
	uc := NewUseCase(apptRepo, &fakeScheduleRepo{schedule: workingSchedule()}, nopLogger{})

	result, err := uc.Execute(context.Background(), &Request{DoctorID: 1, Date: monday})
	require.NoError(t, err)
	require.Empty(t, result.AvailableSlots)
	require.True(t, result.FullyBooked)
	require.False(t, result.NotAvailableToday)
	require.Equal(t, domain.AvailabilityStatusFullyBooked, result.Status())
}

func TestExecute_NotWorkingDay(t *testing.T) {
	// Вторник не входит в рабочие дни
	tuesday := monday.AddDate(0, 0, 1)
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{schedule: workingSchedule()}, nopLogger{})

	result, err := uc.Execute(context.Background(), &Request{DoctorID: 1, Date: tuesday})
	require.NoError(t, err)
	require.Empty(t, result.AvailableSlots)
	require.False(t, result.FullyBooked)
	require.True(t, result.NotAvailableToday)
	require.Equal(t, domain.AvailabilityStatusNotAvailable, result.Status())
}

func TestExecute_CancelledAppointmentFreesSlot(t *testing.T) {
	cancelled := &domain.Appointment{DoctorID: 1, TimeSlot: "10:00", Status: domain.StatusCancelled}
	apptRepo := &fakeAppointmentRepo{appointments: []*domain.Appointment{cancelled}}
	uc := NewUseCase(apptRepo, &fakeScheduleRepo{schedule: workingSchedule()}, nopLogger{})

	result, err := uc.Execute(context.Background(), &Request{DoctorID: 1, Date: monday})
	require.NoError(t, err)
	require.Equal(t, []string{"09:00", "10:00", "11:00"}, slotStrings(result.AvailableSlots))
}

func TestExecute_HalfHourSlots(t *testing.T) {
	schedule := workingSchedule()
	schedule.WorkingHourAnchors = anchors("09:00")
	schedule.SlotDurationMinutes = 30

	apptRepo := &fakeAppointmentRepo{appointments: booked("09:30")}
	uc := NewUseCase(apptRepo, &fakeScheduleRepo{schedule: schedule}, nopLogger{})

	result, err := uc.Execute(context.Background(), &Request{DoctorID: 1, Date: monday})
	require.NoError(t, err)
	require.Equal(t, []string{"09:00"}, slotStrings(result.AvailableSlots))
}

func TestExecute_NoAnchorsMeansFullyBooked(t *testing.T) {
	schedule := workingSchedule()
	schedule.WorkingHourAnchors = nil

	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{schedule: schedule}, nopLogger{})

	result, err := uc.Execute(context.Background(), &Request{DoctorID: 1, Date: monday})
	require.NoError(t, err)
	require.True(t, result.FullyBooked)
	require.False(t, result.NotAvailableToday)
}

func TestExecute_DoctorNotFound(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{err: scheduleRepo.ErrScheduleNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DoctorID: 404, Date: monday})
	require.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestExecute_ScheduleMisconfigured(t *testing.T) {
	schedule := workingSchedule()
	schedule.SlotDurationMinutes = 45

	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{schedule: schedule}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DoctorID: 1, Date: monday})
	require.ErrorIs(t, err, ErrScheduleMisconfigured)
}

func TestExecute_RepositoryError(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{err: errors.New("connection refused")}
	uc := NewUseCase(apptRepo, &fakeScheduleRepo{schedule: workingSchedule()}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DoctorID: 1, Date: monday})
	require.ErrorIs(t, err, ErrInternal)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{schedule: workingSchedule()}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DoctorID: 0, Date: monday})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{DoctorID: 1})
	require.ErrorIs(t, err, ErrInvalidInput)
}
