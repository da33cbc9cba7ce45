package entity

// Role is the capability class of a principal.
type Role string

const (
	// RoleManager registers and owns patients.
	RoleManager Role = "manager"
	// RoleDoctor reads every patient and authors visits.
	RoleDoctor Role = "doctor"
	// RoleUnassigned is produced for accounts without a profile. It is denied everything.
	RoleUnassigned Role = "unassigned"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsAssignable reports whether the role can be stored on a profile.
func (r Role) IsAssignable() bool {
	switch r {
	case RoleManager, RoleDoctor:
		return true
	default:
		return false
	}
}
