package handler

import (
	"net/http"

	"clinic/internal/delivery/api/response"
	"clinic/internal/delivery/api/routes"
	"clinic/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ManagerHandlerParams holds dependencies for ManagerHandler, injected by Fx.
type ManagerHandlerParams struct {
	fx.In

	Dashboards usecase.DashboardUsecase
	Patients   usecase.PatientUsecase
}

// ManagerHandler serves the manager pages. Every patient it touches is scoped
// to the calling manager.
type ManagerHandler struct {
	dashboards usecase.DashboardUsecase
	patients   usecase.PatientUsecase
}

// NewManagerHandler is the constructor for ManagerHandler.
func NewManagerHandler(params ManagerHandlerParams) *ManagerHandler {
	return &ManagerHandler{
		dashboards: params.Dashboards,
		patients:   params.Patients,
	}
}

// Dashboard lists the manager's patients with their count.
func (h *ManagerHandler) Dashboard(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	dashboard, err := h.dashboards.ManagerDashboard(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ManagerDashboardResponse{
		Patients:      toPatientResponses(dashboard.Patients),
		TotalPatients: dashboard.TotalPatients,
	})
}

// CreatePatient registers a patient owned by the manager.
func (h *ManagerHandler) CreatePatient(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var input usecase.CreatePatientInput
	if err := bind(c, &input); err != nil {
		return err
	}

	patient, err := h.patients.CreatePatient(c.Request().Context(), principal, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithOutcome(c, http.StatusCreated, toPatientResponse(patient), response.Outcome{
		Notice:   "Patient added successfully!",
		Redirect: routes.ManagerDashboard,
	})
}

// ListPatients lists the manager's patients, newest first.
func (h *ManagerHandler) ListPatients(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	patients, err := h.patients.ListOwnedBy(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPatientResponses(patients))
}

// GetPatient shows one owned patient with its visit history.
func (h *ManagerHandler) GetPatient(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	patientID, err := patientIDParam(c)
	if err != nil {
		return err
	}

	detail, err := h.patients.GetOwned(c.Request().Context(), principal, patientID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, PatientDetailResponse{
		Patient: toPatientResponse(detail.Patient),
		Visits:  toVisitResponses(detail.Visits),
	})
}

// DeletePatient removes an owned patient and its visits.
func (h *ManagerHandler) DeletePatient(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	patientID, err := patientIDParam(c)
	if err != nil {
		return err
	}

	if err := h.patients.DeleteOwned(c.Request().Context(), principal, patientID); err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithOutcome(c, http.StatusOK, nil, response.Outcome{
		Notice:   "Patient deleted successfully.",
		Redirect: routes.ManagerPatients,
	})
}
