package utils

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"

	"codecraft-site/models"
)

func RespondWithError(w http.ResponseWriter, status int, error models.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(error); err != nil {
		log.Printf("Error encoding error response: %v", err)
	}
}

func ResponseJSON(w http.ResponseWriter, data interface{}) {
	ResponseJSONWithStatus(w, http.StatusOK, data)
}

func ResponseJSONWithStatus(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// FolderSlug derives the media folder form of an event title: lower-cased,
// whitespace runs collapsed to single hyphens. "Hack Night" -> "hack-night".
func FolderSlug(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	return whitespaceRun.ReplaceAllString(slug, "-")
}
