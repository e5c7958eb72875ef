package joberrors

import (
	"net/http"

	"go-opscentral/internal/shared/apperror"
)

var (
	ErrJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job not found",
		http.StatusNotFound,
	)

	ErrJobAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"job number already exists",
		http.StatusConflict,
	)

	ErrJobLocked = apperror.New(
		apperror.CodeInvalidState,
		"job is locked",
		http.StatusConflict,
	)

	ErrInvalidJobID = apperror.New(
		apperror.CodeInvalidInput,
		"job id is required",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid job_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrInvalidPriority = apperror.New(
		apperror.CodeInvalidInput,
		"priority must be one of LOW, MEDIUM, HIGH",
		http.StatusBadRequest,
	)

	ErrInvalidLoadingType = apperror.New(
		apperror.CodeInvalidInput,
		"loading_type is not recognized",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status is not recognized",
		http.StatusBadRequest,
	)

	ErrInvalidCustomsStatus = apperror.New(
		apperror.CodeInvalidInput,
		"customs_status is not recognized",
		http.StatusBadRequest,
	)

	ErrCustomsNotApplicable = apperror.New(
		apperror.CodeInvalidInput,
		"customs_status only applies to import clearance jobs",
		http.StatusBadRequest,
	)

	ErrNotCompletable = apperror.New(
		apperror.CodeInvalidState,
		"only active jobs can be completed",
		http.StatusConflict,
	)

	ErrAdminOnly = apperror.New(
		apperror.CodeForbidden,
		"only administrators can perform this action",
		http.StatusForbidden,
	)
)

// CapacityExceeded carries the capacity policy reason as the message.
func CapacityExceeded(reason string) *apperror.AppError {
	return apperror.New(
		apperror.CodeCapacityExceeded,
		reason,
		http.StatusUnprocessableEntity,
	)
}
