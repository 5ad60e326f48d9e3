package models

import (
	"time"

	"github.com/LimoB/clinic-booking-service/internal/domain"
	"github.com/LimoB/clinic-booking-service/pkg/types"
)

// Request модели

// UpdateScheduleRequest запрос на обновление расписания врача
type UpdateScheduleRequest struct {
	Actor               domain.Actor
	DoctorID            int64
	WorkingDays         []string
	WorkingHourAnchors  []string
	SlotDurationMinutes int
}

// ToDomainSchedule конвертирует request в domain модель
func (r *UpdateScheduleRequest) ToDomainSchedule() *domain.DoctorSchedule {
	anchors := make([]types.TimeString, len(r.WorkingHourAnchors))
	for i, anchor := range r.WorkingHourAnchors {
		// Нормализуем "9:00" к "09:00"; нераспознанные значения
		// остаются как есть и отсеиваются на Validate
		normalized, err := types.NewTimeStringFromString(anchor)
		if err != nil {
			anchors[i] = types.TimeString(anchor)
			continue
		}
		anchors[i] = normalized
	}

	return &domain.DoctorSchedule{
		DoctorID:            r.DoctorID,
		WorkingDays:         r.WorkingDays,
		WorkingHourAnchors:  anchors,
		SlotDurationMinutes: r.SlotDurationMinutes,
	}
}

// Response модели

// ScheduleResponse ответ с расписанием врача
type ScheduleResponse struct {
	DoctorID            int64    `json:"doctorId"`
	WorkingDays         []string `json:"workingDays"`
	WorkingHourAnchors  []string `json:"workingHourAnchors"` // "HH:MM"
	SlotDurationMinutes int      `json:"slotDurationMinutes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s *domain.DoctorSchedule) *ScheduleResponse {
	if s == nil {
		return nil
	}

	anchors := make([]string, len(s.WorkingHourAnchors))
	for i, anchor := range s.WorkingHourAnchors {
		anchors[i] = anchor.String()
	}

	return &ScheduleResponse{
		DoctorID:            s.DoctorID,
		WorkingDays:         s.WorkingDays,
		WorkingHourAnchors:  anchors,
		SlotDurationMinutes: s.SlotDurationMinutes,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}
