package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrUnauthorized = New(
		CodeUnauthorized,
		"unauthorized access",
		http.StatusUnauthorized,
	)

	ErrForbidden = New(
		CodeForbidden,
		"Access denied. HR only.",
		http.StatusForbidden,
	)
)

// RequiredField builds the validation error for a missing field
func RequiredField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s is required", field),
		http.StatusBadRequest,
	)
}

// InvalidField builds the validation error for a field that failed a rule
func InvalidField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s is invalid", field),
		http.StatusBadRequest,
	)
}
