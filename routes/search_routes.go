package routes

import (
	"github.com/lior88844/bandly/controllers"
	"github.com/lior88844/bandly/services"

	"github.com/gorilla/mux"
)

// RegisterSearchRoutes sets up the musician search endpoints
func RegisterSearchRoutes(r *mux.Router, searchService *services.SearchService) {
	controller := controllers.NewSearchController(searchService)

	r.HandleFunc("/api/search", controller.HandleSearch).Methods("POST")
	r.HandleFunc("/api/music-data", controller.HandleMusicData).Methods("GET")
}
