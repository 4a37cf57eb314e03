package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/matzehuels/vibegrid/pkg/errors"
)

type apiError struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

type errorResponse struct {
	Error apiError `json:"error"`
}

func errNotFound(format string, args ...any) error {
	return errors.New(errors.ErrCodeNotFound, format, args...)
}

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	var maxBytes *http.MaxBytesError
	switch code := errors.GetCode(err); {
	case stderrors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge
	case code == errors.ErrCodeNotFound, code == errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	resp := errorResponse{Error: apiError{
		Code:    code,
		Message: strings.TrimPrefix(err.Error(), string(code)+": "),
	}}
	if resp.Error.Code == "" {
		resp.Error.Code = errors.ErrCodeInternal
		if status == http.StatusInternalServerError {
			resp.Error.Message = "internal error"
		}
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
