package v1

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/kurochkinivan/data_sweepers/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
	File  string `json:"file,omitempty"`
}

func newErrorResponse(err error) *ErrorResponse {
	resp := &ErrorResponse{Error: err.Error()}

	var fileErr *domain.FileError
	if errors.As(err, &fileErr) {
		resp.File = fileErr.Filename
	}

	return resp
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, domain.ErrParseFailure),
		errors.Is(err, domain.ErrInvalidSelection),
		errors.Is(err, domain.ErrInvalidOptions),
		errors.Is(err, domain.ErrNothingToChart):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func renderError(w http.ResponseWriter, r *http.Request, status int, err error) {
	render.Status(r, status)
	render.JSON(w, r, newErrorResponse(err))
}
