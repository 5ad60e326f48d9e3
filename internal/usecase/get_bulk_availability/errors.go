package get_bulk_availability

import "errors"

var (
	// ErrInvalidInput ошибка валидации входных данных
	ErrInvalidInput = errors.New("get_bulk_availability: invalid input")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("get_bulk_availability: internal error")
)
