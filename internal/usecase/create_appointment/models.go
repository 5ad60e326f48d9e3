package create_appointment

import (
	"time"

	"github.com/LimoB/clinic-booking-service/pkg/types"
)

// Request входные данные для создания записи на приём
type Request struct {
	UserID          int64
	DoctorID        int64
	AppointmentDate time.Time
	TimeSlot        types.TimeString
	PaymentMethod   string
	TotalAmount     float64
}
