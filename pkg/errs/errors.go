package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusValidation     = http.StatusUnprocessableEntity
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusConflict       = http.StatusConflict
	ErrStatusFileTooLarge   = http.StatusRequestEntityTooLarge
)

var (
	ErrInternalServer     = errors.New("Internal server error")
	ErrClient             = errors.New("Bad request")
	ErrValidation         = errors.New("Request validation failed")
	ErrNotFound           = errors.New("Resource not found")
	ErrBookingNotFound    = errors.New("Booking not found")
	ErrCosmeticNotFound   = errors.New("Cosmetic not found")
	ErrEmptyLineItems     = errors.New("Booking must contain at least one item")
	ErrConflict           = errors.New("Conflicting record found")
	ErrNotAnImage         = errors.New("Uploaded file is not an image")
	ErrFileSizeExceeded   = errors.New("Uploaded file exceeds the size limit")
	ErrDuplicateBookingID = errors.New("Booking transaction ID already exists")
)

var errorMap = map[error]int{
	ErrInternalServer:     ErrStatusInternalServer,
	ErrClient:             ErrStatusClient,
	ErrValidation:         ErrStatusValidation,
	ErrNotFound:           ErrStatusNotFound,
	ErrBookingNotFound:    ErrStatusNotFound,
	ErrCosmeticNotFound:   ErrStatusClient,
	ErrEmptyLineItems:     ErrStatusValidation,
	ErrConflict:           ErrStatusConflict,
	ErrNotAnImage:         ErrStatusClient,
	ErrFileSizeExceeded:   ErrStatusFileTooLarge,
	ErrDuplicateBookingID: ErrStatusConflict,
}

type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
}

// FieldErrors carries per-field validation failures so handlers can surface
// them alongside the generic validation message.
type FieldErrors struct {
	Fields []FieldError
}

func (e *FieldErrors) Error() string {
	return ErrValidation.Error()
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
