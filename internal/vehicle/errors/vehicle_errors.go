package vehicleerrors

import (
	"net/http"

	"go-opscentral/internal/shared/apperror"
)

var (
	ErrVehicleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Vehicle not found",
		http.StatusNotFound,
	)

	ErrPlateExists = apperror.New(
		apperror.CodeConflict,
		"plate already registered",
		http.StatusConflict,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of Available, Out of Service, Maintenance",
		http.StatusBadRequest,
	)

	ErrAdminOnly = apperror.New(
		apperror.CodeForbidden,
		"only administrators can manage vehicles",
		http.StatusForbidden,
	)
)
