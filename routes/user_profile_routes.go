package routes

import (
	"matchpoint_server/controllers"
	"matchpoint_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up routes for user profiles under /api/profiles
func RegisterUserProfileRoutes(r *mux.Router, userProfileService *services.UserProfileService) {
	controller := controllers.NewUserProfileController(userProfileService)

	profileRouter := r.PathPrefix("/api/profiles").Subrouter()

	profileRouter.HandleFunc("", controller.HandleCreateUserProfile).Methods("POST")
	profileRouter.HandleFunc("", controller.HandleListOtherUsers).Methods("GET")
	profileRouter.HandleFunc("/image", controller.HandleUpdateProfileImage).Methods("PATCH")
	profileRouter.HandleFunc("/{uid}", controller.HandleGetUserProfile).Methods("GET")
}
