package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"matchpoint_server/services"
)

// ChatController struct
type ChatController struct {
	MessageService *services.MessageService
}

// NewChatController initializes the chat controller
func NewChatController(service *services.MessageService) *ChatController {
	return &ChatController{MessageService: service}
}

// HandleSendMessage - Handles sending a new message
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		FromID string `json:"fromId"`
		ToID   string `json:"toId"`
		Text   string `json:"text"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if request.FromID == "" || request.ToID == "" || request.Text == "" {
		http.Error(w, `{"error": "Missing required fields: fromId, toId, or text"}`, http.StatusBadRequest)
		return
	}

	message, err := c.MessageService.SendMessage(r.Context(), request.FromID, request.ToID, request.Text)
	if err != nil {
		// The message is in the log even when the summaries lagged; tell
		// the caller both facts.
		if errors.Is(err, services.ErrPartialDelivery) {
			respondJSON(w, http.StatusAccepted, map[string]interface{}{
				"message": message,
				"warning": "partial-delivery",
			})
			return
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, message)
}

// HandleGetMessages - Fetch a conversation in arrival order
func (c *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("ownerId")
	counterpartID := r.URL.Query().Get("counterpartId")
	limitStr := r.URL.Query().Get("limit")

	if ownerID == "" || counterpartID == "" {
		http.Error(w, `{"error": "ownerId and counterpartId are required"}`, http.StatusBadRequest)
		return
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 50 // Default to 50 messages
	}

	messages, skipped, err := c.MessageService.GetMessages(r.Context(), ownerID, counterpartID, limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"messages": messages,
		"skipped":  skipped,
	})
}

// HandleGetRecentMessages - One last-message summary per counterpart
func (c *ChatController) HandleGetRecentMessages(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("ownerId")
	if ownerID == "" {
		http.Error(w, `{"error": "ownerId is required"}`, http.StatusBadRequest)
		return
	}

	summaries, err := c.MessageService.GetRecentMessages(r.Context(), ownerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, summaries)
}
