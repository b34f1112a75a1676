package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/lior88844/bandly/models"
	"github.com/lior88844/bandly/services"
)

type SearchController struct {
	Service *services.SearchService
}

func NewSearchController(service *services.SearchService) *SearchController {
	return &SearchController{Service: service}
}

// HandleSearch runs the filter pipeline and returns matches plus a
// degraded flag when the fallback dataset served the request.
func (c *SearchController) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID  string               `json:"userId"`
		Filters models.SearchFilters `json:"filters"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	result, err := c.Service.Search(r.Context(), request.UserID, request.Filters)
	if err != nil {
		log.Printf("Search failed: %v", err)
		http.Error(w, `{"error": "Failed to load users"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// HandleMusicData serves the instrument and genre catalogs for the search
// form and profile editor.
func (c *SearchController) HandleMusicData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"instruments":      models.Instruments,
		"genres":           models.Genres,
		"experienceLevels": models.ExperienceLevels,
	})
}
