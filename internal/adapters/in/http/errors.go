package http

import (
	"errors"
	"net/http"

	"orehaul/internal/core/application/usecases/commands"
	"orehaul/internal/core/application/usecases/queries"
	"orehaul/internal/core/domain/services"
	"orehaul/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var errParamNotInteger = errors.New("operation_id must be a positive integer")

// statusFor maps application and domain errors onto HTTP status codes.
// Unknown errors fall through to 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, commands.ErrOperatorNotFound),
		errors.Is(err, commands.ErrVehicleNotFound),
		errors.Is(err, commands.ErrOperationNotFound),
		errors.Is(err, queries.ErrOperationNotFound),
		errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrCapacityExceeded):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrAlreadyExists),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, services.ErrNoSuitableVehicle):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorJSON writes an ErrorResponse with an explicit status.
func errorJSON(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}
