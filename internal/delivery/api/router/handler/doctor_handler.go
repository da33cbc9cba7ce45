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

// DoctorHandlerParams holds dependencies for DoctorHandler, injected by Fx.
type DoctorHandlerParams struct {
	fx.In

	Dashboards usecase.DashboardUsecase
	Patients   usecase.PatientUsecase
	Visits     usecase.VisitUsecase
}

// DoctorHandler serves the doctor pages.
type DoctorHandler struct {
	dashboards usecase.DashboardUsecase
	patients   usecase.PatientUsecase
	visits     usecase.VisitUsecase
}

// NewDoctorHandler is the constructor for DoctorHandler.
func NewDoctorHandler(params DoctorHandlerParams) *DoctorHandler {
	return &DoctorHandler{
		dashboards: params.Dashboards,
		patients:   params.Patients,
		visits:     params.Visits,
	}
}

// Dashboard lists every patient and the doctor's recent visits.
func (h *DoctorHandler) Dashboard(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	dashboard, err := h.dashboards.DoctorDashboard(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, DoctorDashboardResponse{
		Patients:     toPatientResponses(dashboard.Patients),
		RecentVisits: toVisitResponses(dashboard.RecentVisits),
	})
}

// ListPatients lists every patient in the clinic.
func (h *DoctorHandler) ListPatients(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	patients, err := h.patients.ListAll(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPatientResponses(patients))
}

// AddVisit records a visit authored by the doctor.
func (h *DoctorHandler) AddVisit(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	patientID, err := patientIDParam(c)
	if err != nil {
		return err
	}

	var input usecase.AddVisitInput
	if err := bind(c, &input); err != nil {
		return err
	}

	visit, err := h.visits.AddVisit(c.Request().Context(), principal, patientID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithOutcome(c, http.StatusCreated, toVisitResponse(visit), response.Outcome{
		Notice:   "Visit details added successfully!",
		Redirect: routes.DoctorDashboard,
	})
}

// History shows a patient and every visit to it, newest first.
func (h *DoctorHandler) History(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	patientID, err := patientIDParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	visits, err := h.visits.HistoryFor(ctx, principal, patientID)
	if err != nil {
		return errors.WithStack(err)
	}

	patient, err := h.patients.GetAny(ctx, patientID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, PatientDetailResponse{
		Patient: toPatientResponse(patient),
		Visits:  toVisitResponses(visits),
	})
}
