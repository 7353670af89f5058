package models

// Event is a club activity row in the hosted events table. Rows are created
// and edited out-of-band; this service only reads them and bumps the
// registered counter.
type Event struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"`
	Registered  int    `json:"registered"`
	Image       string `json:"image"`
	IsPast      bool   `json:"is_past"`
}
