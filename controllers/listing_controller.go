package controllers

import (
	"encoding/json"
	"net/http"

	"matchpoint_server/services"

	"github.com/gorilla/mux"
)

// ListingController struct
type ListingController struct {
	ListingService *services.ListingService
}

// NewListingController initializes the listing controller
func NewListingController(service *services.ListingService) *ListingController {
	return &ListingController{ListingService: service}
}

// HandleCreateListing - Posts a new play listing
func (c *ListingController) HandleCreateListing(w http.ResponseWriter, r *http.Request) {
	var request struct {
		AuthorUID   string `json:"authorUid"`
		Description string `json:"description"`
		ListingDate string `json:"listingDate"`
		City        string `json:"city"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if request.AuthorUID == "" || request.Description == "" || request.ListingDate == "" {
		http.Error(w, `{"error": "Missing required fields: authorUid, description, or listingDate"}`, http.StatusBadRequest)
		return
	}

	listing, err := c.ListingService.CreateListing(r.Context(), request.AuthorUID, request.Description, request.ListingDate, request.City)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, listing)
}

// HandleListListings - Returns the full listing feed
func (c *ListingController) HandleListListings(w http.ResponseWriter, r *http.Request) {
	listings, skipped, err := c.ListingService.ListListings(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"listings": listings,
		"skipped":  skipped,
	})
}

// HandleGetListing - Fetches a single listing by ID
func (c *ListingController) HandleGetListing(w http.ResponseWriter, r *http.Request) {
	listingID := mux.Vars(r)["listingId"]

	listing, err := c.ListingService.GetListing(r.Context(), listingID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, listing)
}
