package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 60
)

// AnchorBlockMinutes длина блока, который порождает каждый working-hour anchor
const AnchorBlockMinutes = 60

// AllowedSlotDurations допустимые длительности слота.
// Каждое значение обязано нацело делить AnchorBlockMinutes.
var AllowedSlotDurations = []int{30, 60}

// Business validation constants
const (
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, которые больше не занимают слот.
// Используется при подсчёте занятых слотов.
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusFailed,
}

// ActiveStatuses список статусов, занимающих слот
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
