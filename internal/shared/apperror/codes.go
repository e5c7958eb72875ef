package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput     = "INVALID_INPUT"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeInvalidState     = "INVALID_STATE"
	CodeCapacityExceeded = "CAPACITY_EXCEEDED"
	CodeTooManyRequests  = "TOO_MANY_REQUESTS"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeBackendError       = "BACKEND_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// Kind groups error codes into the categories callers react to.
type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindPermission Kind = "PERMISSION"
	KindNotFound   Kind = "NOT_FOUND"
	KindBackend    Kind = "BACKEND"
	KindInternal   Kind = "INTERNAL"
)

func kindOfCode(code string) Kind {
	switch code {
	case CodeInvalidInput, CodeConflict, CodeInvalidState, CodeCapacityExceeded:
		return KindValidation
	case CodeUnauthorized, CodeForbidden:
		return KindPermission
	case CodeNotFound:
		return KindNotFound
	case CodeBackendError, CodeServiceUnavailable:
		return KindBackend
	default:
		return KindInternal
	}
}
