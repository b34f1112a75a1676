package routes

import (
	"net/http"

	"github.com/lior88844/bandly/controllers"
	"github.com/lior88844/bandly/middleware"
	"github.com/lior88844/bandly/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up routes for profile operations under
// /api/profiles. Profile updates are session-guarded.
func RegisterUserProfileRoutes(r *mux.Router, profileService *services.UserProfileService, jwtSecret string) {
	controller := controllers.NewUserProfileController(profileService)

	profileRouter := r.PathPrefix("/api/profiles").Subrouter()

	profileRouter.HandleFunc("", controller.HandleCreateProfile).Methods("POST")
	profileRouter.HandleFunc("", controller.HandleGetProfileByEmail).Methods("GET")
	profileRouter.HandleFunc("/{userId}", controller.HandleGetProfile).Methods("GET")

	update := http.Handler(http.HandlerFunc(controller.HandleUpdateProfile))
	if jwtSecret != "" {
		update = middleware.RequireSession(jwtSecret)(update)
	}
	profileRouter.Handle("/{userId}", update).Methods("PUT")
}
