package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"eventmap/internal/helpers"
	"eventmap/internal/models"
)

// ImageUploader pushes local image files to the remote bucket, returning the
// resulting public URLs.
type ImageUploader interface {
	UploadAll(ctx context.Context, uris []string, folder string) []string
}

const eventImageFolder = "events"

type EventService struct {
	events    models.EventRepo
	venues    models.VenueRepo
	favorites models.FavoriteRepo
	uploader  ImageUploader
	geocoder  Geocoder
	logger    *slog.Logger
	now       func() time.Time
}

func NewEventService(
	events models.EventRepo,
	venues models.VenueRepo,
	favorites models.FavoriteRepo,
	uploader ImageUploader,
	geocoder Geocoder,
	logger *slog.Logger,
) *EventService {
	if geocoder == nil {
		geocoder = NewNoopGeocoder()
	}
	return &EventService{
		events:    events,
		venues:    venues,
		favorites: favorites,
		uploader:  uploader,
		geocoder:  geocoder,
		logger:    logger,
		now:       time.Now,
	}
}

// List fetches events matching the search term and runs the filter pipeline.
// A remote failure is logged and yields an empty list, never an error.
func (s *EventService) List(ctx context.Context, search string, cfg FilterConfig) []models.Event {
	events, err := s.events.ListEvents(ctx, search)
	if err != nil {
		s.logger.Error("failed to load events", "error", err)
		return []models.Event{}
	}
	return ApplyFilters(events, cfg, s.now())
}

// MapRegion computes the viewport covering every event with a usable venue
// pin.
func (s *EventService) MapRegion(events []models.Event) helpers.Region {
	coords := make([]helpers.Coordinate, 0, len(events))
	for _, ev := range events {
		if lat, lng, ok := ev.Venue.Coordinates(); ok {
			coords = append(coords, helpers.Coordinate{Lat: lat, Lng: lng})
		}
	}
	return helpers.RegionFor(coords)
}

func (s *EventService) Get(ctx context.Context, id string) *models.Event {
	event, err := s.events.GetEventByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to load event", "id", id, "error", err)
		return nil
	}
	return event
}

// LoadForm builds the edit draft for an existing event, normalizing the
// heterogeneous stored shapes into canonical form: flexible date spellings,
// times anchored to the current day, image lists already deduplicated.
func (s *EventService) LoadForm(ctx context.Context, id string) *models.EventForm {
	event := s.Get(ctx, id)
	if event == nil {
		return nil
	}

	now := s.now()
	endTime := event.EndTime
	if endTime == "" {
		endTime = event.StartTime
	}

	form := &models.EventForm{
		ID:          event.ID,
		Name:        event.Name,
		Description: event.Description,
		Date:        helpers.FormatDate(helpers.ParseFlexibleDate(event.Date, now)),
		StartTime:   helpers.FormatClock(helpers.ParseClockTime(event.StartTime, now)),
		EndTime:     helpers.FormatClock(helpers.ParseClockTime(endTime, now)),
		Price:       event.Price.String(),
		CategoryID:  event.CategoryID,
		VenueID:     event.VenueID,
		Images:      event.Images,
	}
	if form.CategoryID == "" && event.Category != nil {
		form.CategoryID = event.Category.ID
	}
	if form.VenueID == "" && event.Venue != nil {
		form.VenueID = event.Venue.ID
	}
	if lat, lng, ok := event.Venue.Coordinates(); ok {
		form.Latitude = strconv.FormatFloat(lat, 'f', -1, 64)
		form.Longitude = strconv.FormatFloat(lng, 'f', -1, 64)
	}
	return form
}

// Submit validates the draft and writes it to the remote store. Required
// fields fail closed before any remote call. When no venue is selected but
// usable coordinates were entered, a venue is created first; if the event
// write then fails, that venue is deleted again as compensation.
func (s *EventService) Submit(ctx context.Context, form *models.EventForm) (*models.Event, error) {
	if err := models.Validate.Struct(form); err != nil {
		return nil, validationError("fill in all required fields")
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(form.Price), 64)
	if err != nil {
		return nil, validationError("invalid price")
	}

	now := s.now()
	endTime := form.EndTime
	if endTime == "" {
		endTime = form.StartTime
	}

	venueID := form.VenueID
	createdVenueID := ""
	if venueID == "" {
		if venue := s.createVenueFromPin(ctx, form.Latitude, form.Longitude); venue != nil {
			venueID = venue.ID
			createdVenueID = venue.ID
		}
	}
	if venueID == "" {
		return nil, validationError("select a venue or provide latitude and longitude")
	}

	images := models.NormalizeImageURIs(form.Images)
	if len(images) > 0 && s.uploader != nil {
		images = s.uploader.UploadAll(ctx, images, eventImageFolder)
	}

	row := map[string]interface{}{
		"name":        form.Name,
		"description": form.Description,
		"date":        helpers.FormatDate(helpers.ParseFlexibleDate(form.Date, now)),
		"start_time":  helpers.FormatClock(helpers.ParseClockTime(form.StartTime, now)),
		"end_time":    helpers.FormatClock(helpers.ParseClockTime(endTime, now)),
		"price":       price,
		"category_id": form.CategoryID,
		"venue_id":    venueID,
	}

	var event *models.Event
	var writeErr error
	if form.ID == "" {
		row["images"] = images
		event, writeErr = s.events.CreateEvent(ctx, row)
	} else {
		// Only replace the stored image list when the draft carries one.
		if len(images) > 0 {
			row["images"] = images
		}
		event, writeErr = s.events.UpdateEvent(ctx, form.ID, row)
	}
	if writeErr != nil {
		s.logger.Error("failed to save event", "error", writeErr)
		if createdVenueID != "" {
			if err := s.venues.DeleteVenue(ctx, createdVenueID); err != nil {
				s.logger.Warn("failed to roll back venue created for event", "venue_id", createdVenueID, "error", err)
			}
		}
		return nil, fmt.Errorf("failed to save event")
	}
	return event, nil
}

// Delete removes an event and, best effort, its favorite rows first. The two
// deletes are independent remote calls; a failed cascade only logs.
func (s *EventService) Delete(ctx context.Context, id string) bool {
	if err := s.favorites.RemoveFavoritesByEvent(ctx, id); err != nil {
		s.logger.Warn("failed to remove favorites for event", "id", id, "error", err)
	}
	if err := s.events.DeleteEvent(ctx, id); err != nil {
		s.logger.Error("failed to delete event", "id", id, "error", err)
		return false
	}
	return true
}

func (s *EventService) createVenueFromPin(ctx context.Context, latStr, lngStr string) *models.Venue {
	lat, latErr := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	lng, lngErr := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if latErr != nil || lngErr != nil || lat == 0 || lng == 0 {
		return nil
	}

	resolved, err := s.geocoder.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		s.logger.Warn("reverse geocode failed", "error", err)
		resolved = ""
	}
	name := resolved
	address := resolved
	if name == "" {
		name = "Pinned location"
		address = "Marked on map"
	}

	venue, err := s.venues.CreateVenue(ctx, name, lat, lng, address)
	if err != nil {
		s.logger.Warn("failed to create venue for event", "error", err)
		return nil
	}
	return venue
}
