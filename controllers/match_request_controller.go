package controllers

import (
	"encoding/json"
	"net/http"

	"matchpoint_server/services"
)

// MatchRequestController struct
type MatchRequestController struct {
	MatchRequestService *services.MatchRequestService
}

// NewMatchRequestController initializes the match request controller
func NewMatchRequestController(service *services.MatchRequestService) *MatchRequestController {
	return &MatchRequestController{MatchRequestService: service}
}

// HandleCreateMatchRequest - Requests to play against a listing's author
func (c *MatchRequestController) HandleCreateMatchRequest(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Requester string `json:"requester"`
		ListingID string `json:"listingId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if request.Requester == "" || request.ListingID == "" {
		http.Error(w, `{"error": "Missing required fields: requester or listingId"}`, http.StatusBadRequest)
		return
	}

	matchRequest, err := c.MatchRequestService.CreateMatchRequest(r.Context(), request.Requester, request.ListingID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, matchRequest)
}

// HandleListPending - Lists pending requests addressed to a user
func (c *MatchRequestController) HandleListPending(w http.ResponseWriter, r *http.Request) {
	targetUID := r.URL.Query().Get("targetUid")
	if targetUID == "" {
		http.Error(w, `{"error": "targetUid is required"}`, http.StatusBadRequest)
		return
	}

	requests, skipped, err := c.MatchRequestService.ListPendingForTarget(r.Context(), targetUID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"requests": requests,
		"skipped":  skipped,
	})
}

// HandleRejectMatchRequest - Drops a pending request without scheduling
func (c *MatchRequestController) HandleRejectMatchRequest(w http.ResponseWriter, r *http.Request) {
	var request struct {
		TargetUID string `json:"targetUid"`
		ListingID string `json:"listingId"`
		Requester string `json:"requester"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if request.TargetUID == "" || request.ListingID == "" || request.Requester == "" {
		http.Error(w, `{"error": "Missing required fields: targetUid, listingId, or requester"}`, http.StatusBadRequest)
		return
	}

	if err := c.MatchRequestService.RejectMatchRequest(r.Context(), request.TargetUID, request.ListingID, request.Requester); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Match request rejected",
	})
}
