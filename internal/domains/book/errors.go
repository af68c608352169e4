package book

import (
	"errors"
	"net/http"
)

var (
	ErrBookNotFound      = errors.New("book not found")
	ErrISBNAlreadyExists = errors.New("A book with this ISBN-13 already exists.")
)

// Violation is a single failed validation rule on a request field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates violations in field declaration order.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	return "validation failed: " + e.Violations[0].Message
}

// GetHTTPStatusCode maps domain errors to response status codes.
func GetHTTPStatusCode(err error) int {
	var vErr *ValidationError
	switch {
	case errors.Is(err, ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrISBNAlreadyExists):
		return http.StatusConflict
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
