package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
)

// Error kinds reported in ErrorResponse.ErrorKind.
const (
	KindInvalidTask      = "InvalidTask"
	KindTaskNotFound     = "TaskNotFound"
	KindCategoryNotFound = "CategoryNotFound"
	KindTaskAlreadyExist = "TaskAlreadyExist"
	KindInternalError    = "InternalError"
)

const (
	internalErrorMessage = "An unexpected error occurred"
	malformedBodyMessage = "Malformed JSON request body"
)

// MapErrorToStatusCode maps an error to its HTTP status code. Anything
// unclassified is a 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound),
		errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidTask),
		errors.Is(err, shared.ErrMalformedBody):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrTaskAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorKind names the class of err for API clients.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		return KindTaskNotFound
	case errors.Is(err, domain.ErrCategoryNotFound):
		return KindCategoryNotFound
	case errors.Is(err, domain.ErrInvalidTask),
		errors.Is(err, shared.ErrMalformedBody):
		return KindInvalidTask
	case errors.Is(err, domain.ErrTaskAlreadyExists):
		return KindTaskAlreadyExist
	default:
		return KindInternalError
	}
}

// GetSafeErrorMessage returns the message that may be shown to clients.
// Internal errors never expose their text.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return internalErrorMessage
	}
	if errors.Is(err, shared.ErrMalformedBody) {
		return malformedBodyMessage
	}
	if MapErrorToStatusCode(err) == http.StatusInternalServerError {
		return internalErrorMessage
	}
	if msg, ok := domain.Message(err); ok {
		return msg
	}
	return internalErrorMessage
}

// HandleAPIError writes the error response for err and logs it.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r,
		MapErrorToStatusCode(err),
		ErrorKind(err),
		GetSafeErrorMessage(err),
		err)
}
