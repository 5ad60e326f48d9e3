package get_bulk_availability

import "time"

// Request входные данные для массового расчёта доступности
// Если DoctorIDs пуст, доступность считается для всех врачей с расписанием
type Request struct {
	Date      time.Time
	DoctorIDs []int64
}
