package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/lior88844/bandly/services"
)

type MediaController struct {
	Service *services.MediaService
}

func NewMediaController(service *services.MediaService) *MediaController {
	return &MediaController{Service: service}
}

// HandleUploadURL generates a presigned URL for uploading a profile photo
func (c *MediaController) HandleUploadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}
	if payload.FileName == "" || payload.FileType == "" {
		http.Error(w, `{"error": "Missing required fields"}`, http.StatusBadRequest)
		return
	}

	url, key, err := c.Service.UploadURL(r.Context(), payload.FileName, payload.FileType)
	if err != nil {
		log.Printf("Failed to presign upload: %v", err)
		http.Error(w, `{"error": "Failed to generate upload URL"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": url, "key": key})
}

// HandleReadURL generates a presigned URL for reading a stored photo
func (c *MediaController) HandleReadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}

	url, err := c.Service.ReadURL(r.Context(), payload.Key)
	if err != nil {
		log.Printf("Failed to presign read: %v", err)
		http.Error(w, `{"error": "Failed to generate read URL"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": url})
}
