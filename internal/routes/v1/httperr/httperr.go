package httperr

import (
	"errors"
	"net/http"

	"github.com/DevBaweja/dating-app-backend/internal/entity"
)

// Status maps a domain error to its response status and default
// message. Unrecognized errors are a 500 with a generic message;
// handlers log those before responding.
func Status(err error) (int, string) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound, "Profile not found"
	case errors.Is(err, entity.ErrNotMatched):
		return http.StatusNotFound, "Match not found"
	case errors.Is(err, entity.ErrConflict):
		return http.StatusBadRequest, "Profile already liked"
	case errors.Is(err, entity.ErrMatchLimitReached):
		return http.StatusBadRequest, "You've reached the maximum of 4 matches"
	case errors.Is(err, entity.ErrValidation):
		return http.StatusBadRequest, "Bad request check your request"
	default:
		return http.StatusInternalServerError, "Something went wrong!"
	}
}
