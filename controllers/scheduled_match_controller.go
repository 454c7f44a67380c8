package controllers

import (
	"encoding/json"
	"net/http"

	"matchpoint_server/services"

	"github.com/gorilla/mux"
)

// ScheduledMatchController struct
type ScheduledMatchController struct {
	SchedulingService *services.SchedulingService
}

// NewScheduledMatchController initializes the scheduled match controller
func NewScheduledMatchController(service *services.SchedulingService) *ScheduledMatchController {
	return &ScheduledMatchController{SchedulingService: service}
}

// HandleAcceptMatchRequest - Accepts a pending request, scheduling the match
func (c *ScheduledMatchController) HandleAcceptMatchRequest(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Accepter  string `json:"accepter"`
		ListingID string `json:"listingId"`
		Requester string `json:"requester"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if request.Accepter == "" || request.ListingID == "" || request.Requester == "" {
		http.Error(w, `{"error": "Missing required fields: accepter, listingId, or requester"}`, http.StatusBadRequest)
		return
	}

	match, err := c.SchedulingService.AcceptMatchRequest(r.Context(), request.Accepter, request.ListingID, request.Requester)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, match)
}

// HandleGetScheduledMatch - Fetches the match materialized for a listing
func (c *ScheduledMatchController) HandleGetScheduledMatch(w http.ResponseWriter, r *http.Request) {
	listingID := mux.Vars(r)["listingId"]

	match, err := c.SchedulingService.GetScheduledMatch(r.Context(), listingID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, match)
}

// HandleListScheduledMatches - Lists a user's matches, either side
func (c *ScheduledMatchController) HandleListScheduledMatches(w http.ResponseWriter, r *http.Request) {
	uid := r.URL.Query().Get("uid")
	if uid == "" {
		http.Error(w, `{"error": "uid is required"}`, http.StatusBadRequest)
		return
	}

	matches, err := c.SchedulingService.ListScheduledMatchesForUser(r.Context(), uid)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, matches)
}
