package handler

import (
	"errors"
	"net/http"

	"github.com/suar-net/bestsellers-gw/internal/service"
	"github.com/suar-net/bestsellers-gw/internal/validation"
)

// errorStatus maps every error kind an operation can return to the status
// sent to the caller. All kinds currently collapse to 404.
var errorStatus = []struct {
	kind   error
	status int
}{
	{validation.ErrMissingRequiredParam, http.StatusNotFound},
	{validation.ErrInvalidDate, http.StatusNotFound},
	{validation.ErrNoParamProvided, http.StatusNotFound},
	{service.ErrUpstreamCallFailed, http.StatusNotFound},
}

// statusForError returns the mapped status, or 500 for errors outside the table.
func statusForError(err error) int {
	for _, e := range errorStatus {
		if errors.Is(err, e.kind) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
