package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/lior88844/bandly/config"
	"github.com/lior88844/bandly/realtime"
	"github.com/lior88844/bandly/routes"
	"github.com/lior88844/bandly/services"
	"github.com/lior88844/bandly/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize services
	hub := realtime.NewHub()
	userProfileService := &services.UserProfileService{Dynamo: dynamoService}
	chatService := &services.ChatService{Dynamo: dynamoService, Hub: hub}
	searchService := &services.SearchService{
		Profiles: userProfileService,
		Geocoder: services.NewGeocodingService(),
	}
	mediaService, err := services.NewMediaService()
	if err != nil {
		log.Fatalf("Failed to initialize media service: %v", err)
	}

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Bandly")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}).Methods("GET")

	// Register routes
	routes.RegisterUserProfileRoutes(r, userProfileService, cfg.JWTSecret)
	routes.RegisterChatRoutes(r, chatService, userProfileService)
	routes.RegisterSearchRoutes(r, searchService)
	routes.RegisterMediaRoutes(r, mediaService)

	// Mount the realtime socket server
	socketServer := socket.NewServer(chatService, hub)
	defer socketServer.Close()
	r.Handle("/socket.io/", socketServer.IO)

	// Add CORS middleware
	allowedOrigins := []string{"*"}
	if cfg.AllowOrigins != "" {
		allowedOrigins = []string{cfg.AllowOrigins}
	}
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
