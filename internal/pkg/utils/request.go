package utils

import (
	"net/http"
	"strconv"

	"clinic-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
)

// ParseIDParam reads a numeric chi URL parameter.
func ParseIDParam(r *http.Request, paramName string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, paramName), 10, 64)
	if err != nil {
		return 0, exceptions.ErrURLParamIDValidation(err, paramName)
	}
	return id, nil
}
