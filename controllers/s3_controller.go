package controllers

import (
	"net/http"

	"matchpoint_server/services"
)

// S3Controller struct
type S3Controller struct {
	S3Service *services.S3Service
}

// NewS3Controller initializes the S3 controller
func NewS3Controller(service *services.S3Service) *S3Controller {
	return &S3Controller{S3Service: service}
}

// HandleGenerateUploadURL - Presigned URL for uploading a profile image
func (c *S3Controller) HandleGenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	fileName := r.URL.Query().Get("fileName")
	fileType := r.URL.Query().Get("fileType")

	if fileName == "" || fileType == "" {
		http.Error(w, `{"error": "fileName and fileType are required"}`, http.StatusBadRequest)
		return
	}

	url, key, err := c.S3Service.GenerateUploadURL(r.Context(), fileName, fileType)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"uploadUrl": url,
		"key":       key,
	})
}

// HandleGenerateReadURL - Presigned URL for reading a stored image
func (c *S3Controller) HandleGenerateReadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, `{"error": "key is required"}`, http.StatusBadRequest)
		return
	}

	url, err := c.S3Service.GenerateReadURL(r.Context(), key)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"readUrl": url})
}
