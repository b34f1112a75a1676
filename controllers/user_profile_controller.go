package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/lior88844/bandly/middleware"
	"github.com/lior88844/bandly/models"
	"github.com/lior88844/bandly/services"

	"github.com/gorilla/mux"
)

type UserProfileController struct {
	Service *services.UserProfileService
}

func NewUserProfileController(service *services.UserProfileService) *UserProfileController {
	return &UserProfileController{Service: service}
}

// HandleCreateProfile stores a new profile at sign-up
func (c *UserProfileController) HandleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	created, err := c.Service.AddUserProfile(r.Context(), profile)
	if err != nil {
		log.Printf("Failed to create profile: %v", err)
		http.Error(w, `{"error": "Failed to create profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// HandleGetProfile fetches a profile by id. An optional viewerId query
// parameter annotates the result with the distance to the viewer.
func (c *UserProfileController) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	viewerID := r.URL.Query().Get("viewerId")

	profile, err := c.Service.GetProfileWithDistance(r.Context(), userID, viewerID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
			return
		}
		log.Printf("Failed to fetch profile %s: %v", userID, err)
		http.Error(w, `{"error": "Failed to fetch profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// HandleGetProfileByEmail fetches a profile through the email GSI
func (c *UserProfileController) HandleGetProfileByEmail(w http.ResponseWriter, r *http.Request) {
	emailID := r.URL.Query().Get("emailId")
	if emailID == "" {
		http.Error(w, `{"error": "emailId is required"}`, http.StatusBadRequest)
		return
	}

	profile, err := c.Service.GetUserProfileByEmail(r.Context(), emailID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
			return
		}
		log.Printf("Failed to fetch profile by email: %v", err)
		http.Error(w, `{"error": "Failed to fetch profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// HandleUpdateProfile overwrites the caller's own profile. The session
// subject must match the path id.
func (c *UserProfileController) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if sessionUser := middleware.UserID(r); sessionUser != "" && sessionUser != userID {
		http.Error(w, `{"error": "Cannot update another user's profile"}`, http.StatusForbidden)
		return
	}

	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	updated, err := c.Service.UpdateUserProfile(r.Context(), userID, profile)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
			return
		}
		log.Printf("Failed to update profile %s: %v", userID, err)
		http.Error(w, `{"error": "Failed to update profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}
