package models

// GalleryImage is one displayable photo resolved from the media provider.
// Recomputed on every gallery view, never persisted.
type GalleryImage struct {
	URL string `json:"url"`
	ID  string `json:"id"`
}

type GalleryResponse struct {
	Images []GalleryImage `json:"images"`
}
