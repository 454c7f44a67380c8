package routes

import (
	"matchpoint_server/controllers"
	"matchpoint_server/services"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for profile image storage under /api/images
func RegisterS3Routes(r *mux.Router, s3Service *services.S3Service) {
	controller := controllers.NewS3Controller(s3Service)

	imageRouter := r.PathPrefix("/api/images").Subrouter()

	imageRouter.HandleFunc("/upload-url", controller.HandleGenerateUploadURL).Methods("GET")
	imageRouter.HandleFunc("/read-url", controller.HandleGenerateReadURL).Methods("GET")
}
