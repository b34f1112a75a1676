package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/lior88844/bandly/services"
)

// ChatController struct
type ChatController struct {
	ChatService        *services.ChatService
	UserProfileService *services.UserProfileService
}

// NewChatController initializes the chat controller
func NewChatController(chatService *services.ChatService, profileService *services.UserProfileService) *ChatController {
	return &ChatController{ChatService: chatService, UserProfileService: profileService}
}

// HandleStartConversation gets or lazily creates the conversation between
// two users and returns it.
func (c *ChatController) HandleStartConversation(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID      string `json:"userId"`
		OtherUserID string `json:"otherUserId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if request.UserID == "" || request.OtherUserID == "" {
		http.Error(w, `{"error": "Both users must have valid IDs"}`, http.StatusBadRequest)
		return
	}

	me, err := c.UserProfileService.GetUserProfile(r.Context(), request.UserID)
	if err != nil {
		http.Error(w, `{"error": "Sender profile not found"}`, http.StatusNotFound)
		return
	}
	other, err := c.UserProfileService.GetUserProfile(r.Context(), request.OtherUserID)
	if err != nil {
		http.Error(w, `{"error": "Recipient profile not found"}`, http.StatusNotFound)
		return
	}

	conversation, err := c.ChatService.GetOrCreateConversation(r.Context(), *me, *other)
	if err != nil {
		if errors.Is(err, services.ErrInvalidParticipant) {
			http.Error(w, `{"error": "Both users must have valid IDs"}`, http.StatusBadRequest)
			return
		}
		log.Printf("Failed to start conversation: %v", err)
		http.Error(w, `{"error": "Failed to start conversation"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(conversation)
}

// HandleListConversations returns the caller's conversations, newest
// last-message first.
func (c *ChatController) HandleListConversations(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, `{"error": "userId is required"}`, http.StatusBadRequest)
		return
	}

	conversations, err := c.ChatService.ListConversations(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to list conversations for %s: %v", userID, err)
		http.Error(w, `{"error": "Failed to list conversations"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(conversations)
}

// HandleGetMessages fetches one message page for a conversation. Without a
// `before` cursor it returns the newest page; with one it returns the page
// strictly older than the cursor. Both pages come back in ascending order.
func (c *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	conversationID := r.URL.Query().Get("conversationId")
	if conversationID == "" {
		http.Error(w, `{"error": "conversationId is required"}`, http.StatusBadRequest)
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = services.DefaultPageSize
	}

	var messages interface{}
	if before := r.URL.Query().Get("before"); before != "" {
		messages, err = c.ChatService.MessagesBefore(r.Context(), conversationID, before, limit)
	} else {
		messages, err = c.ChatService.LatestMessages(r.Context(), conversationID, limit)
	}
	if err != nil {
		log.Printf("Failed to fetch messages for %s: %v", conversationID, err)
		http.Error(w, `{"error": "Failed to fetch messages"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}

// HandleSendMessage stores a new message and updates the conversation's
// last-message summary.
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ConversationID string `json:"conversationId"`
		SenderID       string `json:"senderId"`
		SenderName     string `json:"senderName"`
		Text           string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if request.ConversationID == "" || request.SenderID == "" || request.Text == "" {
		http.Error(w, `{"error": "Missing required fields: conversationId, senderId, or text"}`, http.StatusBadRequest)
		return
	}

	message, err := c.ChatService.SendMessage(r.Context(), request.ConversationID, request.SenderID, request.SenderName, request.Text)
	if err != nil {
		log.Printf("Failed to send message: %v", err)
		http.Error(w, `{"error": "Failed to send message"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(message)
}
