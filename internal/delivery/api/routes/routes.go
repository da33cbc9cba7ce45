// Package routes names the page paths shared by the router, handlers and the
// error handler's redirects.
package routes

import "clinic/internal/domain/entity"

const (
	Welcome          = "/"
	Health           = "/health"
	Register         = "/register"
	Login            = "/login"
	Logout           = "/logout"
	AccountProfile   = "/account/profile"
	ManagerDashboard = "/manager/dashboard"
	ManagerPatients  = "/manager/patients"
	DoctorDashboard  = "/doctor/dashboard"
	DoctorPatients   = "/doctor/patients"
)

// DashboardFor returns the landing page for role.
func DashboardFor(role entity.Role) string {
	switch role {
	case entity.RoleManager:
		return ManagerDashboard
	case entity.RoleDoctor:
		return DoctorDashboard
	case entity.RoleUnassigned:
		return AccountProfile
	default:
		return Welcome
	}
}

// PatientListFor returns the patient list a role browses.
func PatientListFor(role entity.Role) string {
	switch role {
	case entity.RoleManager:
		return ManagerPatients
	case entity.RoleDoctor:
		return DoctorPatients
	default:
		return Welcome
	}
}

// ManagerPatient is the detail page of one of the manager's patients.
func ManagerPatient(id string) string {
	return ManagerPatients + "/" + id
}

// DoctorPatientHistory is the visit history page of a patient.
func DoctorPatientHistory(id string) string {
	return DoctorPatients + "/" + id + "/history"
}
