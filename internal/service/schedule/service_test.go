package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LimoB/clinic-booking-service/internal/domain"
	scheduleRepo "github.com/LimoB/clinic-booking-service/internal/infra/storage/schedule"
	"github.com/LimoB/clinic-booking-service/internal/service/schedule/models"
	"github.com/LimoB/clinic-booking-service/pkg/types"
)

type fakeScheduleRepo struct {
	schedule *domain.DoctorSchedule
	getErr   error
	upserted *domain.DoctorSchedule
}

func (f *fakeScheduleRepo) GetByDoctorID(_ context.Context, _ int64) (*domain.DoctorSchedule, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.schedule, nil
}

func (f *fakeScheduleRepo) Upsert(_ context.Context, schedule *domain.DoctorSchedule) (*domain.DoctorSchedule, error) {
	f.upserted = schedule
	return schedule, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func configuredSchedule() *domain.DoctorSchedule {
	return &domain.DoctorSchedule{
		DoctorID:            2,
		WorkingDays:         []string{"Monday", "Wednesday"},
		WorkingHourAnchors:  []types.TimeString{"09:00", "10:00"},
		SlotDurationMinutes: 60,
	}
}

func TestGet_Configured(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{schedule: configuredSchedule()}, nopLogger{})

	result, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, int64(2), result.DoctorID)
	require.Equal(t, []string{"Monday", "Wednesday"}, result.WorkingDays)
	require.Equal(t, []string{"09:00", "10:00"}, result.WorkingHourAnchors)
	require.Equal(t, 60, result.SlotDurationMinutes)
}

func TestGet_NotConfiguredReturnsDefault(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{getErr: scheduleRepo.ErrScheduleNotFound}, nopLogger{})

	result, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, int64(2), result.DoctorID)
	require.Empty(t, result.WorkingDays)
	require.Equal(t, domain.DefaultSlotDurationMinutes, result.SlotDurationMinutes)
}

func TestGet_InvalidDoctorID(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, nopLogger{})

	_, err := svc.Get(context.Background(), 0)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGet_RepoError(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{getErr: errors.New("connection refused")}, nopLogger{})

	_, err := svc.Get(context.Background(), 2)
	require.ErrorIs(t, err, ErrInternal)
}

func TestUpdate_SelfDoctor(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, nopLogger{})

	result, err := svc.Update(context.Background(), &models.UpdateScheduleRequest{
		Actor:               domain.Actor{ID: 2, Role: domain.RoleDoctor},
		DoctorID:            2,
		WorkingDays:         []string{"Monday"},
		WorkingHourAnchors:  []string{"09:00"},
		SlotDurationMinutes: 30,
	})
	require.NoError(t, err)
	require.Equal(t, 30, result.SlotDurationMinutes)
	require.NotNil(t, repo.upserted)
	require.Equal(t, []types.TimeString{"09:00"}, repo.upserted.WorkingHourAnchors)
}

func TestUpdate_NormalizesAnchors(t *testing.T) {
	// Якоря без ведущего нуля сохраняются в канонической форме,
	// иначе их слоты не совпали бы со временем из запросов на запись
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, nopLogger{})

	result, err := svc.Update(context.Background(), &models.UpdateScheduleRequest{
		Actor:               domain.Actor{ID: 1, Role: domain.RoleAdmin},
		DoctorID:            2,
		WorkingDays:         []string{"Monday"},
		WorkingHourAnchors:  []string{"9:00", "10:00"},
		SlotDurationMinutes: 30,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"09:00", "10:00"}, result.WorkingHourAnchors)
	require.Equal(t, []types.TimeString{"09:00", "10:00"}, repo.upserted.WorkingHourAnchors)
}

func TestUpdate_OtherDoctorDenied(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateScheduleRequest{
		Actor:               domain.Actor{ID: 7, Role: domain.RoleDoctor},
		DoctorID:            2,
		WorkingDays:         []string{"Monday"},
		WorkingHourAnchors:  []string{"09:00"},
		SlotDurationMinutes: 60,
	})
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdate_PatientDenied(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateScheduleRequest{
		Actor:               domain.Actor{ID: 10, Role: domain.RolePatient},
		DoctorID:            2,
		WorkingDays:         []string{"Monday"},
		WorkingHourAnchors:  []string{"09:00"},
		SlotDurationMinutes: 60,
	})
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdate_InvalidSchedule(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  models.UpdateScheduleRequest
	}{
		{
			name: "invalid working day",
			req: models.UpdateScheduleRequest{
				DoctorID:            2,
				WorkingDays:         []string{"Someday"},
				WorkingHourAnchors:  []string{"09:00"},
				SlotDurationMinutes: 60,
			},
		},
		{
			name: "invalid anchor",
			req: models.UpdateScheduleRequest{
				DoctorID:            2,
				WorkingDays:         []string{"Monday"},
				WorkingHourAnchors:  []string{"9am"},
				SlotDurationMinutes: 60,
			},
		},
		{
			name: "duration does not divide hour",
			req: models.UpdateScheduleRequest{
				DoctorID:            2,
				WorkingDays:         []string{"Monday"},
				WorkingHourAnchors:  []string{"09:00"},
				SlotDurationMinutes: 45,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			req.Actor = domain.Actor{ID: 1, Role: domain.RoleAdmin}

			_, err := svc.Update(context.Background(), &req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
