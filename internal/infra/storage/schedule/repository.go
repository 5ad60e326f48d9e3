package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/LimoB/clinic-booking-service/internal/domain"
	"github.com/LimoB/clinic-booking-service/pkg/dbmetrics"
	"github.com/LimoB/clinic-booking-service/pkg/psqlbuilder"
	"github.com/LimoB/clinic-booking-service/pkg/types"
)

// Repository репозиторий для работы с расписаниями врачей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDoctorID получает расписание врача
func (r *Repository) GetByDoctorID(ctx context.Context, doctorID int64) (*domain.DoctorSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"doctor_id",
		"working_days",
		"working_hour_anchors",
		"slot_duration_minutes",
		"created_at",
		"updated_at",
	).
		From("doctor_schedules").
		Where(squirrel.Eq{"doctor_id": doctorID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctorID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		schedule    domain.DoctorSchedule
		workingDays string
		anchors     pq.StringArray
		createdAt   sql.NullTime
		updatedAt   sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.DoctorID,
		&workingDays,
		&anchors,
		&schedule.SlotDurationMinutes,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctorID - scan schedule: %v", ErrScanRow, err)
	}

	schedule.WorkingDays = splitWorkingDays(workingDays)
	schedule.WorkingHourAnchors = toTimeStrings(anchors)
	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return &schedule, nil
}

// Upsert создает или обновляет расписание врача
func (r *Repository) Upsert(ctx context.Context, schedule *domain.DoctorSchedule) (*domain.DoctorSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("doctor_schedules").
		Columns(
			"doctor_id",
			"working_days",
			"working_hour_anchors",
			"slot_duration_minutes",
		).
		Values(
			schedule.DoctorID,
			joinWorkingDays(schedule.WorkingDays),
			pq.Array(toStrings(schedule.WorkingHourAnchors)),
			schedule.SlotDurationMinutes,
		).
		Suffix(`ON CONFLICT (doctor_id) DO UPDATE SET
			working_days = EXCLUDED.working_days,
			working_hour_anchors = EXCLUDED.working_hour_anchors,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			updated_at = now()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return schedule, nil
}

// ListDoctorIDs получает идентификаторы всех врачей с расписанием.
// Используется bulk-агрегатором доступности.
func (r *Repository) ListDoctorIDs(ctx context.Context) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("doctor_id").
		From("doctor_schedules").
		OrderBy("doctor_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListDoctorIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDoctorIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	doctorIDs := make([]int64, 0)
	for rows.Next() {
		var doctorID int64
		if err := rows.Scan(&doctorID); err != nil {
			return nil, fmt.Errorf("%w: ListDoctorIDs - scan row: %v", ErrScanRow, err)
		}
		doctorIDs = append(doctorIDs, doctorID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDoctorIDs - rows error: %v", ErrScanRow, err)
	}

	return doctorIDs, nil
}

// working_days хранится одной строкой "Monday,Wednesday,Friday"

func splitWorkingDays(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	days := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			days = append(days, trimmed)
		}
	}
	return days
}

func joinWorkingDays(days []string) string {
	return strings.Join(days, ",")
}

func toStrings(anchors []types.TimeString) []string {
	out := make([]string, len(anchors))
	for i, a := range anchors {
		out[i] = a.String()
	}
	return out
}

func toTimeStrings(values []string) []types.TimeString {
	out := make([]types.TimeString, len(values))
	for i, v := range values {
		out[i] = types.TimeString(v)
	}
	return out
}
