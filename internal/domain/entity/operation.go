package entity

// Operation names a gated action. The access policy maps roles to operations.
type Operation string

const (
	OpCreatePatient        Operation = "CreatePatient"
	OpListOwnPatients      Operation = "ListOwnPatients"
	OpViewOwnPatientDetail Operation = "ViewOwnPatientDetail"
	OpDeleteOwnPatient     Operation = "DeleteOwnPatient"
	OpListAllPatients      Operation = "ListAllPatients"
	OpCreateVisit          Operation = "CreateVisit"
	OpViewPatientHistory   Operation = "ViewPatientHistory"
	OpViewOwnVisits        Operation = "ViewOwnVisits"
)

// AllOperations lists every gated operation.
var AllOperations = []Operation{
	OpCreatePatient,
	OpListOwnPatients,
	OpViewOwnPatientDetail,
	OpDeleteOwnPatient,
	OpListAllPatients,
	OpCreateVisit,
	OpViewPatientHistory,
	OpViewOwnVisits,
}
