package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"codecraft-site/config"
	"codecraft-site/controllers"
	"codecraft-site/driver"
	"codecraft-site/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}

	cfg := config.Load()
	if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
		log.Fatal("SUPABASE_URL and a Supabase key must be set")
	}

	store := driver.NewSupabase(cfg.SupabaseURL, cfg.SupabaseKey)
	media := driver.NewCloudinary(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	forms := utils.NewFormValidator(cfg.AcceptedEmailDomains)

	galleryController := controllers.GalleryController{}
	eventController := controllers.EventController{}
	registrationController := controllers.EventsRegistrationController{}
	teamController := controllers.TeamController{}
	healthController := controllers.HealthController{}

	router := mux.NewRouter()
	router.Use(controllers.RequestID)

	router.HandleFunc("/gallery", galleryController.GetEventGallery(store, media)).Methods("GET")
	router.HandleFunc("/events", eventController.GetEvents(store)).Methods("GET")
	router.HandleFunc("/events/{id}/register", registrationController.RegisterForEvent(store, forms)).Methods("POST")
	router.HandleFunc("/team", teamController.GetTeamMembers(store)).Methods("GET")
	router.HandleFunc("/health", healthController.Health()).Methods("GET")

	log.Println("Server started on port " + cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
