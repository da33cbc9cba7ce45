package model

import (
	"time"

	"github.com/google/uuid"
)

// PatientModel mirrors the 'patients' table. Deleting the owning user removes the patient.
type PatientModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Age       int       `gorm:"not null;check:chk_patients_age,age >= 0"`
	Gender    string    `gorm:"type:varchar(1);not null;check:chk_patients_gender,gender IN ('M','F','O')"`
	Phone     *string   `gorm:"type:varchar(20)"`
	Address   *string   `gorm:"type:text"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	Creator *UserModel `gorm:"foreignKey:CreatedBy;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PatientModel) TableName() string {
	return "patients"
}

// VisitModel mirrors the 'visits' table. Rows are never updated.
type VisitModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PatientID          uuid.UUID  `gorm:"type:uuid;not null;index:idx_visits_patient_date,priority:1"`
	DoctorID           uuid.UUID  `gorm:"type:uuid;not null;index:idx_visits_doctor_date,priority:1"`
	VisitDate          time.Time  `gorm:"not null;index:idx_visits_patient_date,priority:2;index:idx_visits_doctor_date,priority:2"`
	Diagnosis          string     `gorm:"type:text;not null"`
	Notes              *string    `gorm:"type:text"`
	MedicinePrescribed string     `gorm:"type:text;not null"`
	NextVisitDate      *time.Time `gorm:"type:date"`
	CreatedAt          time.Time

	Patient *PatientModel `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
	Doctor  *UserModel    `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (VisitModel) TableName() string {
	return "visits"
}

// All returns every model in dependency order, for migrations.
func All() []any {
	return []any{
		&UserModel{},
		&ProfileModel{},
		&SessionModel{},
		&PatientModel{},
		&VisitModel{},
	}
}
