package controllers

import (
	"net/http"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// RequestID tags every request so log lines from one request can be grouped.
// An incoming X-Request-ID is honored, otherwise one is generated.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)
		log.WithField("request_id", id).Infof("%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
