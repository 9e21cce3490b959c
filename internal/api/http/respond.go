package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"communityserve-backend/internal/logger"
	"communityserve-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeError maps service errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeErrorMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		writeErrorMessage(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrCapacityExceeded),
		errors.Is(err, service.ErrDuplicateApplication),
		errors.Is(err, service.ErrEmailTaken):
		writeErrorMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrDeadlineExpired):
		writeErrorMessage(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrValidation):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeErrorMessage(w, http.StatusUnauthorized, err.Error())
	default:
		logger.Error("unhandled service error", "error", err)
		writeErrorMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeAndValidate parses the JSON body into dst and runs struct
// validation tags over it.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("malformed request body")
	}
	if err := validate.Struct(dst); err != nil {
		return err
	}
	return nil
}
