package routes

import (
	"matchpoint_server/controllers"
	"matchpoint_server/services"

	"github.com/gorilla/mux"
)

// RegisterListingRoutes sets up routes for play listings under /api/listings
func RegisterListingRoutes(r *mux.Router, listingService *services.ListingService) {
	controller := controllers.NewListingController(listingService)

	listingRouter := r.PathPrefix("/api/listings").Subrouter()

	listingRouter.HandleFunc("", controller.HandleCreateListing).Methods("POST")
	listingRouter.HandleFunc("", controller.HandleListListings).Methods("GET")
	listingRouter.HandleFunc("/{listingId}", controller.HandleGetListing).Methods("GET")
}
