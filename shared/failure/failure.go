package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Reason is a stable machine-readable code callers branch on; it is empty for generic failures.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

const (
	ReasonDateLocked             = "date_locked"
	ReasonConcurrentModification = "concurrent_modification"
)

var (
	ForbiddenError          = &Failure{Code: http.StatusForbidden, Message: "Your role is not allowed to perform this action"}
	ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You are not assigned to this hotel"}
)

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// Rejected returns a business-rule rejection. The request was well formed but the current state of
// the hotel does not allow it.
func Rejected(reason, message string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
		Reason:  reason,
	}
}

// DateLocked returns a Failure for postings against a closed (or closing) business date.
func DateLocked(message string) error {
	return &Failure{
		Code:    http.StatusLocked,
		Message: message,
		Reason:  ReasonDateLocked,
	}
}

// ConcurrentModification returns a retryable Failure raised when another unit of work holds the row.
func ConcurrentModification(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
		Reason:  ReasonConcurrentModification,
	}
}

// GetReason returns the reason of an error interface, or an empty string.
func GetReason(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Reason
	}

	return ""
}

// IsRetryable reports whether the caller may retry the same request unchanged.
func IsRetryable(err error) bool {
	return GetReason(err) == ReasonConcurrentModification
}

// IsFailure reports whether err is an expected business outcome rather than an infrastructure fault.
func IsFailure(err error) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Code < http.StatusInternalServerError
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
