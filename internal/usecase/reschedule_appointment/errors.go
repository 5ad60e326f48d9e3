package reschedule_appointment

import "errors"

var (
	// ErrInvalidInput ошибка валидации входных данных
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input")

	// ErrAppointmentNotFound запись на приём не найдена
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrAccessDenied нет прав на перенос этой записи
	ErrAccessDenied = errors.New("reschedule_appointment: access denied")

	// ErrNotReschedulable запись в текущем статусе нельзя перенести
	ErrNotReschedulable = errors.New("reschedule_appointment: appointment cannot be rescheduled in its current status")

	// ErrDoctorNotWorking врач не принимает в этот день недели
	ErrDoctorNotWorking = errors.New("reschedule_appointment: doctor is not working on this day")

	// ErrSlotNotOffered запрошенный слот не входит в сетку расписания врача
	ErrSlotNotOffered = errors.New("reschedule_appointment: time slot is not offered by the doctor's schedule")

	// ErrSlotTaken слот уже занят другой активной записью
	ErrSlotTaken = errors.New("reschedule_appointment: time slot is already taken")

	// ErrScheduleMisconfigured расписание врача содержит некорректную длительность слота
	ErrScheduleMisconfigured = errors.New("reschedule_appointment: doctor schedule is misconfigured")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
