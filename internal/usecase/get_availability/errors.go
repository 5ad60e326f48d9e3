package get_availability

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врач не найден
	ErrDoctorNotFound = errors.New("get_availability: doctor not found")

	// ErrScheduleMisconfigured возвращается при некорректной конфигурации
	// расписания врача (длительность слота не делит блок и т.п.)
	ErrScheduleMisconfigured = errors.New("get_availability: doctor schedule misconfigured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
