package utils

import (
	"errors"
	"fmt"
	"net/http"

	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// BuildErrorResponse is the only place errors get logged. Classified errors
// answer with their own status and message; anything else is a 500 with a
// generic message so internals do not leak. Causes and call sites are only
// echoed back when APP_DEBUG_ERRORS is set.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	response := responses.ErrorDTO{
		Success: false,
		Message: constvars.ErrClientSomethingWrongWithApplication,
	}

	var customErr *exceptions.Error
	if errors.As(err, &customErr) {
		code = customErr.StatusCode()
		response.Message = customErr.Message
		location := fmt.Sprintf("%s:%d %s", customErr.Location.File, customErr.Location.Line, customErr.Location.FunctionName)

		fields := []zap.Field{
			zap.String("kind", string(customErr.Kind)),
			zap.String("entity", customErr.Entity),
			zap.String("component", customErr.Component),
			zap.String(constvars.LoggingLocationKey, location),
		}
		if code >= http.StatusInternalServerError || customErr.Cause != nil {
			log.Error(customErr.Error(), fields...)
		} else {
			log.Info(customErr.Error(), fields...)
		}

		if GetEnvBool(constvars.EnvDebugErrors, false) {
			response.DevMessage = customErr.Error()
			response.Location = location
		}
	} else {
		log.Error(err.Error())
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}
