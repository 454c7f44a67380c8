package controllers

import (
	"encoding/json"
	"net/http"

	"matchpoint_server/models"
	"matchpoint_server/services"

	"github.com/gorilla/mux"
)

// UserProfileController struct
type UserProfileController struct {
	UserProfileService *services.UserProfileService
}

// NewUserProfileController initializes the user profile controller
func NewUserProfileController(service *services.UserProfileService) *UserProfileController {
	return &UserProfileController{UserProfileService: service}
}

// HandleCreateUserProfile - Registers a profile for an authenticated uid
func (c *UserProfileController) HandleCreateUserProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile

	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if profile.UID == "" || profile.Email == "" {
		http.Error(w, `{"error": "Missing required fields: uid or email"}`, http.StatusBadRequest)
		return
	}

	created, err := c.UserProfileService.CreateUserProfile(r.Context(), profile)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// HandleGetUserProfile - Fetches a profile by uid
func (c *UserProfileController) HandleGetUserProfile(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]

	profile, err := c.UserProfileService.GetUserProfile(r.Context(), uid)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// HandleListOtherUsers - Browse screen: everyone except the caller
func (c *UserProfileController) HandleListOtherUsers(w http.ResponseWriter, r *http.Request) {
	uid := r.URL.Query().Get("uid")
	if uid == "" {
		http.Error(w, `{"error": "uid is required"}`, http.StatusBadRequest)
		return
	}

	profiles, err := c.UserProfileService.ListOtherUsers(r.Context(), uid)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, profiles)
}

// HandleUpdateProfileImage - Points a profile at an uploaded image
func (c *UserProfileController) HandleUpdateProfileImage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UID             string `json:"uid"`
		ProfileImageURL string `json:"profileImageUrl"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if request.UID == "" || request.ProfileImageURL == "" {
		http.Error(w, `{"error": "Missing required fields: uid or profileImageUrl"}`, http.StatusBadRequest)
		return
	}

	if err := c.UserProfileService.UpdateProfileImage(r.Context(), request.UID, request.ProfileImageURL); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Profile image updated",
	})
}
