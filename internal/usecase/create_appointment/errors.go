package create_appointment

import "errors"

var (
	// ErrInvalidInput ошибка валидации входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input")

	// ErrDoctorNotFound врач не найден
	ErrDoctorNotFound = errors.New("create_appointment: doctor not found")

	// ErrDoctorNotWorking врач не принимает в этот день недели
	ErrDoctorNotWorking = errors.New("create_appointment: doctor is not working on this day")

	// ErrSlotNotOffered запрошенный слот не входит в сетку расписания врача
	ErrSlotNotOffered = errors.New("create_appointment: time slot is not offered by the doctor's schedule")

	// ErrSlotTaken слот уже занят активной записью
	ErrSlotTaken = errors.New("create_appointment: time slot is already taken")

	// ErrDoctorFullyBooked все слоты врача на эту дату заняты
	ErrDoctorFullyBooked = errors.New("create_appointment: doctor is fully booked on this date")

	// ErrScheduleMisconfigured расписание врача содержит некорректную длительность слота
	ErrScheduleMisconfigured = errors.New("create_appointment: doctor schedule is misconfigured")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("create_appointment: internal error")
)
