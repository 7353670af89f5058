package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"codecraft-site/driver"
	"codecraft-site/models"
	"codecraft-site/utils"
)

type EventsRegistrationController struct{}

// RegisterForEvent handles POST /events/{id}/register: schema-check the
// form, insert the registration row, bump the registered counter through the
// datastore's conditional increment, then re-read the event so the caller
// sees fresh counts.
func (c *EventsRegistrationController) RegisterForEvent(store EventStore, forms *utils.FormValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Step 1: parse the event id from the path
		eventIDStr := mux.Vars(r)["id"]
		eventID, err := strconv.Atoi(eventIDStr)
		if err != nil || eventID <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid event id"})
			return
		}

		// Step 2: decode and validate the form before touching any collaborator
		var form models.RegistrationForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid request body"})
			return
		}
		if fieldErrors := forms.ValidateRegistration(form); len(fieldErrors) > 0 {
			utils.ResponseJSONWithStatus(w, http.StatusBadRequest, models.ValidationErrorResponse{
				Message: "Validation failed",
				Fields:  fieldErrors,
			})
			return
		}

		// Step 3: make sure the event exists and still has room
		event, err := store.GetEvent(r.Context(), eventIDStr)
		if err != nil {
			if errors.Is(err, driver.ErrNoRows) {
				utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Event not found"})
				return
			}
			log.Println("Error fetching event:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Database error: " + err.Error()})
			return
		}
		if event.Registered >= event.Capacity {
			utils.RespondWithError(w, http.StatusConflict, models.Error{Message: "Event is full"})
			return
		}

		// Step 4: insert the registration row
		registration := models.EventRegistration{
			EventID:      eventID,
			Name:         form.Name,
			Email:        form.Email,
			StudentID:    form.StudentID,
			Department:   form.Department,
			YearSemester: form.YearSemester,
			Contact:      form.Contact,
			Message:      form.Message,
		}
		registrationID, err := store.InsertRegistration(r.Context(), registration)
		if err != nil {
			log.Println("Error inserting registration:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to submit registration"})
			return
		}

		// Step 5: bump the counter. The capacity condition lives in the
		// datastore function, so concurrent signups cannot overshoot.
		if err := store.IncrementRegistered(r.Context(), eventID); err != nil {
			if errors.Is(err, driver.ErrEventFull) {
				// The row persists; the counter never moved.
				utils.RespondWithError(w, http.StatusConflict, models.Error{Message: "Event filled up before the registration completed"})
				return
			}
			log.Println("Error updating registered count:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Registration saved but the attendee count could not be updated"})
			return
		}

		// Step 6: re-read the event so the response carries the latest count
		updated, err := store.GetEvent(r.Context(), eventIDStr)
		if err != nil {
			log.Println("Error refreshing event after registration:", err)
			updated = event
		}

		log.WithField("event_id", eventID).Println("Registration recorded")
		utils.ResponseJSONWithStatus(w, http.StatusCreated, models.RegistrationResponse{
			RegistrationID: registrationID,
			Event:          *updated,
		})
	}
}
