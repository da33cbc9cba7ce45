package handler

import (
	"time"

	"clinic/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// PatientResponse is the wire form of a patient.
type PatientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Phone     *string   `json:"phone,omitempty"`
	Address   *string   `json:"address,omitempty"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VisitResponse is the wire form of a visit. Patient is set on a doctor's recent visits.
type VisitResponse struct {
	ID                 string           `json:"id"`
	PatientID          string           `json:"patient_id"`
	DoctorID           string           `json:"doctor_id"`
	VisitDate          time.Time        `json:"visit_date"`
	Diagnosis          string           `json:"diagnosis"`
	MedicinePrescribed string           `json:"medicine_prescribed"`
	Notes              *string          `json:"notes,omitempty"`
	NextVisitDate      *string          `json:"next_visit_date,omitempty"`
	Patient            *PatientResponse `json:"patient,omitempty"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Role      string `json:"role"`
}

// PrincipalResponse describes the logged-in caller.
type PrincipalResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse carries the session token for clients that cannot use the cookie.
type LoginResponse struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	User      PrincipalResponse `json:"user"`
}

// PatientDetailResponse is a patient with its visits, newest first.
type PatientDetailResponse struct {
	Patient PatientResponse `json:"patient"`
	Visits  []VisitResponse `json:"visits"`
}

// ManagerDashboardResponse is the manager landing page.
type ManagerDashboardResponse struct {
	Patients      []PatientResponse `json:"patients"`
	TotalPatients int64             `json:"total_patients"`
}

// DoctorDashboardResponse is the doctor landing page.
type DoctorDashboardResponse struct {
	Patients     []PatientResponse `json:"patients"`
	RecentVisits []VisitResponse   `json:"recent_visits"`
}

func toPatientResponse(p *entity.Patient) PatientResponse {
	return PatientResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Age:       p.Age,
		Gender:    string(p.Gender),
		Phone:     p.Phone,
		Address:   p.Address,
		CreatedBy: p.CreatedBy.String(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toPatientResponses(patients []*entity.Patient) []PatientResponse {
	out := make([]PatientResponse, 0, len(patients))
	for _, p := range patients {
		out = append(out, toPatientResponse(p))
	}

	return out
}

func toVisitResponse(v *entity.Visit) VisitResponse {
	resp := VisitResponse{
		ID:                 v.ID.String(),
		PatientID:          v.PatientID.String(),
		DoctorID:           v.DoctorID.String(),
		VisitDate:          v.VisitDate,
		Diagnosis:          v.Diagnosis,
		MedicinePrescribed: v.MedicinePrescribed,
		Notes:              v.Notes,
	}
	if v.NextVisitDate != nil {
		next := v.NextVisitDate.Format(dateLayout)
		resp.NextVisitDate = &next
	}
	if v.Patient != nil {
		patient := toPatientResponse(v.Patient)
		resp.Patient = &patient
	}

	return resp
}

func toVisitResponses(visits []*entity.Visit) []VisitResponse {
	out := make([]VisitResponse, 0, len(visits))
	for _, v := range visits {
		out = append(out, toVisitResponse(v))
	}

	return out
}

func toUserResponse(u *entity.User) UserResponse {
	role := entity.RoleUnassigned
	if u.Profile != nil {
		role = u.Profile.Role
	}

	return UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      role.String(),
	}
}

func toPrincipalResponse(p *entity.Principal) PrincipalResponse {
	return PrincipalResponse{
		UserID:   p.UserID.String(),
		Username: p.Username,
		Role:     p.Role.String(),
	}
}
