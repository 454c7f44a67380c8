package routes

import (
	"matchpoint_server/controllers"
	"matchpoint_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for chat-related operations under /api/chat
func RegisterChatRoutes(r *mux.Router, messageService *services.MessageService) {
	controller := controllers.NewChatController(messageService)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()

	chatRouter.HandleFunc("/message", controller.HandleSendMessage).Methods("POST")
	chatRouter.HandleFunc("/messages", controller.HandleGetMessages).Methods("GET")
	chatRouter.HandleFunc("/recent", controller.HandleGetRecentMessages).Methods("GET")
}
