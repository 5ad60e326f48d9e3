package domain

import "errors"

var (
	// ErrInvalidSlotDuration возвращается, когда длительность слота не делит
	// 60-минутный блок нацело (ошибка конфигурации расписания врача)
	ErrInvalidSlotDuration = errors.New("domain: slot duration must evenly divide the 60-minute block")

	// ErrInvalidWorkingDay возвращается при неизвестном названии дня недели
	ErrInvalidWorkingDay = errors.New("domain: invalid working day")

	// ErrInvalidAnchor возвращается при некорректном working-hour anchor
	ErrInvalidAnchor = errors.New("domain: invalid working hour anchor")
)
