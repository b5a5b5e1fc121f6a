package models

// EventForm is the local draft state of the event editor. Dates and times are
// carried as strings in whatever shape the client supplied; the submission
// path canonicalizes them before anything reaches the remote store.
type EventForm struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Date        string   `json:"date"`       // YYYY-MM-DD or DD/MM/YYYY
	StartTime   string   `json:"start_time"` // HH:MM
	EndTime     string   `json:"end_time"`
	Price       string   `json:"price" validate:"required"`
	CategoryID  string   `json:"category_id" validate:"required"`
	VenueID     string   `json:"venue_id"`
	Latitude    string   `json:"latitude"`
	Longitude   string   `json:"longitude"`
	Images      []string `json:"images"`
}

// VenueForm is the local draft state of the venue editor.
type VenueForm struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name" validate:"required"`
	Address   string `json:"address"`
	Latitude  string `json:"latitude" validate:"required"`
	Longitude string `json:"longitude" validate:"required"`
}
