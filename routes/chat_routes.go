package routes

import (
	"github.com/lior88844/bandly/controllers"
	"github.com/lior88844/bandly/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for chat-related operations under /api/chat
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService, profileService *services.UserProfileService) {
	controller := controllers.NewChatController(chatService, profileService)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()

	chatRouter.HandleFunc("/conversation", controller.HandleStartConversation).Methods("POST")
	chatRouter.HandleFunc("/conversations", controller.HandleListConversations).Methods("GET")
	chatRouter.HandleFunc("/messages", controller.HandleGetMessages).Methods("GET")
	chatRouter.HandleFunc("/message", controller.HandleSendMessage).Methods("POST")
}
