// Package response provides helpers for writing consistent JSON HTTP
// responses.
//
// Success responses may have any JSON shape (a student, a list, an id).
// Error responses always look like:
//
//	{ "status": "error", "error": "student not found" }
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/student-directory/internal/storage"
)

// Response is the envelope returned for error cases.
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON sets the content type and status, then encodes data.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any error into the standard envelope.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ValidationError turns validator field errors into one readable message,
// e.g. "field Name is required, field Email is required".
func ValidationError(errs validator.ValidationErrors) Response {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		case "email":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be a valid email address", e.Field()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMessages, ", "),
	}
}

// StatusCode maps storage error kinds to HTTP status codes. Anything it
// does not recognise is a 500.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, storage.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes err using StatusCode. Backend failures are reported
// as a generic message so driver details do not reach the client.
func WriteError(w http.ResponseWriter, err error) error {
	status := StatusCode(err)
	if status == http.StatusInternalServerError {
		return WriteJSON(w, status, GeneralError(errors.New("internal server error")))
	}

	return WriteJSON(w, status, GeneralError(err))
}
