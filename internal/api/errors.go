package api

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/Taichi-iskw/media-catalog/internal/errors"
	"github.com/charmbracelet/log"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusFor maps an error code to its HTTP status
func statusFor(code string) int {
	switch code {
	case apperrors.CodeValidationFailed:
		return http.StatusBadRequest
	case apperrors.CodeNotFound:
		return http.StatusNotFound
	case apperrors.CodeWriteFailed:
		return http.StatusConflict
	case apperrors.CodeStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes {"error":{"code","message"}} with the given status
func WriteError(w http.ResponseWriter, statusCode int, code, message string) {
	writeJSON(w, statusCode, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// writeAppError translates err into a response. Only the AppError message
// reaches the client; the cause is logged for server-side failures.
func writeAppError(w http.ResponseWriter, logger *log.Logger, err error) {
	code := apperrors.CodeOf(err)
	status := statusFor(code)

	message := "internal error"
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "code", code, "err", err)
	}
	WriteError(w, status, code, message)
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}
