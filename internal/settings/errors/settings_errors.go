package settingserrors

import (
	"net/http"

	"go-opscentral/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrNegativeLimit = apperror.New(
		apperror.CodeInvalidInput,
		"limit must be zero or greater",
		http.StatusBadRequest,
	)
	ErrAdminOnly = apperror.New(
		apperror.CodeForbidden,
		"only administrators can change capacity settings",
		http.StatusForbidden,
	)
)
