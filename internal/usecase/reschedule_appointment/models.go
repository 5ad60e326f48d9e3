package reschedule_appointment

import (
	"time"

	"github.com/LimoB/clinic-booking-service/internal/domain"
	"github.com/LimoB/clinic-booking-service/pkg/types"
)

// Request входные данные для переноса записи на приём
type Request struct {
	Actor         domain.Actor
	AppointmentID int64
	NewDate       time.Time
	NewTimeSlot   types.TimeString
}
