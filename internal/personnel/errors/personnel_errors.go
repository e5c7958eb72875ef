package personnelerrors

import (
	"net/http"

	"go-opscentral/internal/shared/apperror"
)

var (
	ErrPersonnelNotFound = apperror.New(
		apperror.CodeNotFound,
		"Personnel not found",
		http.StatusNotFound,
	)

	ErrEmployeeIDExists = apperror.New(
		apperror.CodeConflict,
		"employee_id already registered",
		http.StatusConflict,
	)

	ErrInvalidPersonnelID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid personnel id",
		http.StatusBadRequest,
	)

	ErrInvalidType = apperror.New(
		apperror.CodeInvalidInput,
		"type must be Team Leader or Writer Crew",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of Available, Annual Leave, Sick Leave, Personal Leave",
		http.StatusBadRequest,
	)

	ErrAdminOnly = apperror.New(
		apperror.CodeForbidden,
		"only administrators can manage personnel",
		http.StatusForbidden,
	)
)
