package controllers

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"codecraft-site/models"
	"codecraft-site/utils"
)

type TeamController struct{}

// GetTeamMembers returns the leadership roster in display order.
func (tc *TeamController) GetTeamMembers(store EventStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := store.ListTeamMembers(r.Context())
		if err != nil {
			log.Println("Error fetching team members:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to load team members"})
			return
		}
		utils.ResponseJSON(w, members)
	}
}
