package usererrors

import (
	"net/http"

	"go-opscentral/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		"Username already exists",
		http.StatusConflict,
	)

	ErrEmployeeIDTaken = apperror.New(
		apperror.CodeConflict,
		"Employee ID already exists",
		http.StatusConflict,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be Active or Disabled",
		http.StatusBadRequest,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"role must be ADMIN or USER",
		http.StatusBadRequest,
	)

	ErrAdminOnly = apperror.New(
		apperror.CodeForbidden,
		"only administrators can manage users",
		http.StatusForbidden,
	)
)
