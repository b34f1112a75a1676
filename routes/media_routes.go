package routes

import (
	"github.com/lior88844/bandly/controllers"
	"github.com/lior88844/bandly/services"

	"github.com/gorilla/mux"
)

// RegisterMediaRoutes sets up routes for profile-photo presigned URLs
func RegisterMediaRoutes(r *mux.Router, mediaService *services.MediaService) {
	controller := controllers.NewMediaController(mediaService)

	mediaRouter := r.PathPrefix("/api/media").Subrouter()

	mediaRouter.HandleFunc("/upload-url", controller.HandleUploadURL).Methods("POST")
	mediaRouter.HandleFunc("/read-url", controller.HandleReadURL).Methods("POST")
}
