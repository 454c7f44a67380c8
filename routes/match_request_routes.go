package routes

import (
	"matchpoint_server/controllers"
	"matchpoint_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRequestRoutes sets up routes for match requests under /api/match-requests
func RegisterMatchRequestRoutes(r *mux.Router, matchRequestService *services.MatchRequestService) {
	controller := controllers.NewMatchRequestController(matchRequestService)

	requestRouter := r.PathPrefix("/api/match-requests").Subrouter()

	requestRouter.HandleFunc("", controller.HandleCreateMatchRequest).Methods("POST")
	requestRouter.HandleFunc("", controller.HandleListPending).Methods("GET")
	requestRouter.HandleFunc("/reject", controller.HandleRejectMatchRequest).Methods("POST")
}
