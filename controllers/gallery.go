package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"codecraft-site/driver"
	"codecraft-site/models"
	"codecraft-site/utils"
)

// MediaSearcher is the media provider surface the gallery resolver needs.
// driver.Cloudinary implements it; tests substitute mocks.
type MediaSearcher interface {
	Configured() bool
	Search(ctx context.Context, expression string) ([]driver.MediaResource, error)
	DeliveryURL(resource driver.MediaResource) string
}

type GalleryController struct{}

// gallerySearch is one candidate folder query. The plan is evaluated in
// order and the first candidate yielding at least one image wins.
type gallerySearch struct {
	label      string
	expression string
}

func gallerySearchPlan(eventID, slug string) []gallerySearch {
	return []gallerySearch{
		{
			label:      "namespaced folder",
			expression: fmt.Sprintf("resource_type:image AND folder=event-highlights/%s", slug),
		},
		{
			label:      "bare folder",
			expression: fmt.Sprintf("resource_type:image AND folder=%s", slug),
		},
		{
			label:      "loose match",
			expression: fmt.Sprintf("resource_type:image AND folder:event-%s*", eventID),
		},
	}
}

// GetEventGallery resolves GET /gallery?folder=<eventId> to a list of
// displayable image URLs. A candidate query that fails or comes back empty
// falls through to the next one; only full exhaustion with errors on every
// path is surfaced as a server error.
func (gc *GalleryController) GetEventGallery(store EventStore, media MediaSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Step 1: the folder parameter carries the event id
		eventID := r.URL.Query().Get("folder")
		if eventID == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Folder parameter is required"})
			return
		}

		if !media.Configured() {
			log.Println("Cloudinary credentials are not set")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Image service is not configured"})
			return
		}

		// Step 2: look up the event title
		event, err := store.GetEvent(r.Context(), eventID)
		if err != nil {
			if errors.Is(err, driver.ErrNoRows) {
				utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Event not found"})
				return
			}
			log.Println("Error fetching event:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Database error: " + err.Error()})
			return
		}

		// Step 3: try each candidate folder until one has images
		slug := utils.FolderSlug(event.Title)
		plan := gallerySearchPlan(eventID, slug)

		var resources []driver.MediaResource
		var failures *multierror.Error
		for _, search := range plan {
			found, err := media.Search(r.Context(), search.expression)
			if err != nil {
				log.Printf("Gallery search (%s) failed: %v", search.label, err)
				failures = multierror.Append(failures, err)
				continue
			}
			if len(found) > 0 {
				resources = found
				break
			}
		}

		if resources == nil && failures != nil && len(failures.Errors) == len(plan) {
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to fetch images: " + failures.Error()})
			return
		}

		// Step 4: map matches to the response shape
		images := make([]models.GalleryImage, 0, len(resources))
		for _, resource := range resources {
			images = append(images, models.GalleryImage{
				URL: media.DeliveryURL(resource),
				ID:  resource.PublicID,
			})
		}
		utils.ResponseJSON(w, models.GalleryResponse{Images: images})
	}
}
