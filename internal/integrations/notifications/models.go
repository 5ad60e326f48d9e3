package notifications

// AppointmentEvent тип события для уведомления
type AppointmentEvent string

const (
	EventBooked      AppointmentEvent = "appointment_booked"
	EventRescheduled AppointmentEvent = "appointment_rescheduled"
	EventCancelled   AppointmentEvent = "appointment_cancelled"
	EventConfirmed   AppointmentEvent = "appointment_confirmed"
)

// AppointmentNotification запрос на отправку уведомления пользователю
type AppointmentNotification struct {
	Event           AppointmentEvent `json:"event"`
	AppointmentID   int64            `json:"appointment_id"`
	UserID          int64            `json:"user_id"`
	DoctorID        int64            `json:"doctor_id"`
	AppointmentDate string           `json:"appointment_date"` // YYYY-MM-DD
	TimeSlot        string           `json:"time_slot"`        // HH:MM
}
