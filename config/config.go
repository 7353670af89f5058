package config

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Config is read once at startup. The Supabase key prefers the service-role
// key and falls back to the public anon key.
type Config struct {
	Port                 string
	SupabaseURL          string
	SupabaseKey          string
	CloudinaryCloudName  string
	CloudinaryAPIKey     string
	CloudinaryAPISecret  string
	AcceptedEmailDomains []string
}

var defaultEmailDomains = []string{"gmail.com", "ietdavv.edu.in"}

func Load() Config {
	cfg := Config{
		Port:                os.Getenv("PORT"),
		SupabaseURL:         os.Getenv("SUPABASE_URL"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
	}
	if cfg.Port == "" {
		cfg.Port = "8000"
	}

	cfg.SupabaseKey = os.Getenv("SUPABASE_SERVICE_ROLE_KEY")
	if cfg.SupabaseKey == "" {
		cfg.SupabaseKey = os.Getenv("SUPABASE_ANON_KEY")
		if cfg.SupabaseKey != "" {
			log.Println("SUPABASE_SERVICE_ROLE_KEY is not set, falling back to the anon key")
		}
	}

	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		log.Println("Cloudinary credentials are not fully set; gallery requests will return a configuration error")
	}

	if raw := os.Getenv("ACCEPTED_EMAIL_DOMAINS"); raw != "" {
		for _, domain := range strings.Split(raw, ",") {
			if domain = strings.TrimSpace(domain); domain != "" {
				cfg.AcceptedEmailDomains = append(cfg.AcceptedEmailDomains, domain)
			}
		}
	} else {
		cfg.AcceptedEmailDomains = defaultEmailDomains
	}

	return cfg
}
