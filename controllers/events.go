package controllers

import (
	"context"
	"net/http"

	log "github.com/sirupsen/logrus"

	"codecraft-site/models"
	"codecraft-site/utils"
)

// EventStore is the hosted datastore surface the controllers need. driver.Supabase
// implements it; tests substitute mocks.
type EventStore interface {
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	InsertRegistration(ctx context.Context, registration models.EventRegistration) (int, error)
	IncrementRegistered(ctx context.Context, eventID int) error
	ListTeamMembers(ctx context.Context) ([]models.TeamMember, error)
}

type EventController struct{}

// GetEvents returns the full event list ordered by date. The client splits
// upcoming from past on the is_past flag.
func (ec *EventController) GetEvents(store EventStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := store.ListEvents(r.Context())
		if err != nil {
			log.Println("Error fetching events:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to load events"})
			return
		}
		utils.ResponseJSON(w, events)
	}
}
