package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/billow-app/billow/internal/apperr"
	"github.com/billow-app/billow/internal/logger"
	"github.com/billow-app/billow/internal/models"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, models.ErrorResponse{
		StatusCode: status,
		Message:    message,
		Error:      http.StatusText(status),
	})
}

// respondServiceError translates the service error taxonomy to HTTP.
// Anything unmatched is an unhandled failure and maps to a generic 500.
func respondServiceError(w http.ResponseWriter, log *logger.Logger, err error) {
	switch {
	case apperr.IsValidation(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrInvalidCredentials), errors.Is(err, apperr.ErrInvalidToken):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperr.ErrEmailTaken):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		log.Error("Unhandled error: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
