package handler

import (
	deliverycontext "clinic/internal/delivery/context"
	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bind decodes the request into input and runs the registered validator.
func bind(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("malformed request body"))
	}

	return errors.WithStack(c.Validate(input))
}

func principalFrom(c echo.Context) (*entity.Principal, error) {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return principal, nil
}

// patientIDParam reads :id. A malformed id cannot name a patient, so it is NOT_FOUND.
func patientIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.Wrapf(domainerrors.ErrPatientNotFound, "patient id %q", c.Param("id"))
	}

	return id, nil
}
