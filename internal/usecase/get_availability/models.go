package get_availability

import "time"

// Request модель запроса на расчёт доступности врача
type Request struct {
	DoctorID int64     // ID врача
	Date     time.Time // Дата приёма (без времени)
}
