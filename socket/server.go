package socket

import (
	"context"
	"log"
	"sync"

	"github.com/lior88844/bandly/models"
	"github.com/lior88844/bandly/realtime"
	"github.com/lior88844/bandly/services"

	gosocketio "github.com/erock530/gosf-socketio"
)

// Server bridges socket.io rooms to the realtime hub. Clients join a room
// per conversation; every message published on the hub for that
// conversation is broadcast to the room as a newMessage event, whether it
// arrived over the socket or the HTTP API.
type Server struct {
	IO *gosocketio.Server

	chat *services.ChatService
	hub  *realtime.Hub

	mu      sync.Mutex
	bridges map[string]func()
}

// NewServer initializes the Socket.IO server and its hub bridges
func NewServer(chat *services.ChatService, hub *realtime.Hub) *Server {
	s := &Server{
		IO:      gosocketio.NewServer(nil),
		chat:    chat,
		hub:     hub,
		bridges: map[string]func(){},
	}

	s.IO.On(gosocketio.OnConnection, func(c *gosocketio.Channel) {
		log.Println("Socket connected:", c.Id())
	})

	s.IO.On("join", func(c *gosocketio.Channel, data map[string]string) {
		conversationID := data["conversationId"]
		if conversationID == "" {
			log.Println("Invalid conversationId in join request")
			return
		}
		c.Join(conversationID)
		s.bridge(conversationID)
	})

	s.IO.On("leave", func(c *gosocketio.Channel, data map[string]string) {
		if conversationID := data["conversationId"]; conversationID != "" {
			c.Leave(conversationID)
		}
	})

	s.IO.On("sendMessage", func(c *gosocketio.Channel, payload map[string]string) {
		conversationID := payload["conversationId"]
		_, err := s.chat.SendMessage(context.Background(), conversationID, payload["senderId"], payload["senderName"], payload["text"])
		if err != nil {
			log.Printf("Failed to store socket message for %s: %v", conversationID, err)
			return
		}
		// Broadcast happens through the hub bridge once the write lands.
	})

	s.IO.On(gosocketio.OnDisconnection, func(c *gosocketio.Channel) {
		log.Println("Socket disconnected:", c.Id())
	})

	return s
}

// bridge subscribes the room to hub events for conversationID, once.
func (s *Server) bridge(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bridges[conversationID]; ok {
		return
	}

	events, unsubscribe := s.hub.Subscribe(conversationID)
	s.bridges[conversationID] = unsubscribe

	go func() {
		for message := range events {
			s.IO.BroadcastTo(conversationID, "newMessage", toWire(message))
		}
	}()
}

// Close tears down every hub bridge
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conversationID, unsubscribe := range s.bridges {
		unsubscribe()
		delete(s.bridges, conversationID)
	}
}

func toWire(m models.Message) map[string]interface{} {
	return map[string]interface{}{
		"conversationId": m.ConversationID,
		"messageId":      m.MessageID,
		"senderId":       m.SenderID,
		"senderName":     m.SenderName,
		"text":           m.Text,
		"createdAt":      m.CreatedAt,
	}
}
