package routes

import (
	"matchpoint_server/controllers"
	"matchpoint_server/services"

	"github.com/gorilla/mux"
)

// RegisterScheduledMatchRoutes sets up routes for scheduled matches under /api/matches
func RegisterScheduledMatchRoutes(r *mux.Router, schedulingService *services.SchedulingService) {
	controller := controllers.NewScheduledMatchController(schedulingService)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()

	matchRouter.HandleFunc("/accept", controller.HandleAcceptMatchRequest).Methods("POST")
	matchRouter.HandleFunc("", controller.HandleListScheduledMatches).Methods("GET")
	matchRouter.HandleFunc("/{listingId}", controller.HandleGetScheduledMatch).Methods("GET")
}
