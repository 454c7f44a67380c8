package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"matchpoint_server/services"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondServiceError maps the services error taxonomy onto HTTP statuses.
// Callers can tell "nothing there" (404) from "lost the race" (409) from
// "try again later" (503).
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, services.ErrConflict):
		respondJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		respondJSON(w, http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, services.ErrStoreUnavailable):
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	default:
		log.Printf("❌ Internal error: %v", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
