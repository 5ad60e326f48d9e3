package domain

// Role represents the caller's role as asserted by the API gateway
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// IsValidRole reports whether the role is one of the known roles
func IsValidRole(r Role) bool {
	return r == RolePatient || r == RoleDoctor || r == RoleAdmin
}

// Actor is the authenticated caller. ID is the principal identifier within
// the role's namespace: patient user id for patients, doctor id for doctors.
// All authorization decisions go through the Can* policy methods below so
// role checks stay in one place.
type Actor struct {
	ID   int64
	Role Role
}

// IsAdmin reports whether the actor has the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanViewAppointment: admin, the owning patient, or the assigned doctor
func (a Actor) CanViewAppointment(appt *Appointment) bool {
	switch a.Role {
	case RoleAdmin:
		return true
	case RolePatient:
		return a.ID == appt.UserID
	case RoleDoctor:
		return a.ID == appt.DoctorID
	default:
		return false
	}
}

// CanRescheduleAppointment: admin or the owning patient
func (a Actor) CanRescheduleAppointment(appt *Appointment) bool {
	return a.IsAdmin() || (a.Role == RolePatient && a.ID == appt.UserID)
}

// CanCancelAppointment: admin or the owning patient
func (a Actor) CanCancelAppointment(appt *Appointment) bool {
	return a.IsAdmin() || (a.Role == RolePatient && a.ID == appt.UserID)
}

// CanSetAppointmentStatus: admin or the assigned doctor
func (a Actor) CanSetAppointmentStatus(appt *Appointment) bool {
	return a.IsAdmin() || (a.Role == RoleDoctor && a.ID == appt.DoctorID)
}

// CanConfirmPayment: admin only (the payment collaborator calls back with
// service credentials mapped to the admin role)
func (a Actor) CanConfirmPayment() bool {
	return a.IsAdmin()
}

// CanListUserAppointments: admin or the user themself
func (a Actor) CanListUserAppointments(userID int64) bool {
	return a.IsAdmin() || (a.Role == RolePatient && a.ID == userID)
}

// CanListDoctorAppointments: admin or the doctor themself
func (a Actor) CanListDoctorAppointments(doctorID int64) bool {
	return a.IsAdmin() || (a.Role == RoleDoctor && a.ID == doctorID)
}

// CanManageSchedule: admin or the doctor themself
func (a Actor) CanManageSchedule(doctorID int64) bool {
	return a.IsAdmin() || (a.Role == RoleDoctor && a.ID == doctorID)
}
