package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAvailabilityResult_Status(t *testing.T) {
	notWorking := &AvailabilityResult{NotAvailableToday: true}
	require.Equal(t, AvailabilityStatusNotAvailable, notWorking.Status())

	fullyBooked := &AvailabilityResult{FullyBooked: true}
	require.Equal(t, AvailabilityStatusFullyBooked, fullyBooked.Status())

	available := &AvailabilityResult{AvailableSlots: anchors("09:00")}
	require.Equal(t, AvailabilityStatusAvailable, available.Status())
}

func TestActor_Policies(t *testing.T) {
	appt := &Appointment{ID: 1, UserID: 10, DoctorID: 20}

	owner := Actor{ID: 10, Role: RolePatient}
	otherPatient := Actor{ID: 11, Role: RolePatient}
	doctor := Actor{ID: 20, Role: RoleDoctor}
	otherDoctor := Actor{ID: 21, Role: RoleDoctor}
	admin := Actor{ID: 1, Role: RoleAdmin}

	require.True(t, owner.CanViewAppointment(appt))
	require.True(t, doctor.CanViewAppointment(appt))
	require.True(t, admin.CanViewAppointment(appt))
	require.False(t, otherPatient.CanViewAppointment(appt))
	require.False(t, otherDoctor.CanViewAppointment(appt))

	require.True(t, owner.CanRescheduleAppointment(appt))
	require.True(t, admin.CanRescheduleAppointment(appt))
	require.False(t, doctor.CanRescheduleAppointment(appt))
	require.False(t, otherPatient.CanRescheduleAppointment(appt))

	require.True(t, owner.CanCancelAppointment(appt))
	require.False(t, doctor.CanCancelAppointment(appt))

	require.True(t, doctor.CanSetAppointmentStatus(appt))
	require.True(t, admin.CanSetAppointmentStatus(appt))
	require.False(t, owner.CanSetAppointmentStatus(appt))

	require.True(t, admin.CanConfirmPayment())
	require.False(t, owner.CanConfirmPayment())
	require.False(t, doctor.CanConfirmPayment())

	require.True(t, doctor.CanManageSchedule(20))
	require.False(t, doctor.CanManageSchedule(21))
	require.True(t, admin.CanManageSchedule(21))
}
