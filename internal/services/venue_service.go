package services

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"eventmap/internal/models"
)

type VenueService struct {
	venues models.VenueRepo
	events models.EventRepo
	logger *slog.Logger
}

func NewVenueService(venues models.VenueRepo, events models.EventRepo, logger *slog.Logger) *VenueService {
	return &VenueService{
		venues: venues,
		events: events,
		logger: logger,
	}
}

func (s *VenueService) List(ctx context.Context) []models.Venue {
	venues, err := s.venues.ListVenues(ctx)
	if err != nil {
		s.logger.Error("failed to load venues", "error", err)
		return []models.Venue{}
	}
	return venues
}

func (s *VenueService) Get(ctx context.Context, id string) *models.Venue {
	venue, err := s.venues.GetVenueByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to load venue", "id", id, "error", err)
		return nil
	}
	return venue
}

// Save validates the venue draft and creates or updates the remote row.
func (s *VenueService) Save(ctx context.Context, form *models.VenueForm) (*models.Venue, error) {
	if err := models.Validate.Struct(form); err != nil {
		return nil, validationError("fill in all required fields")
	}
	lat, latErr := strconv.ParseFloat(strings.TrimSpace(form.Latitude), 64)
	lng, lngErr := strconv.ParseFloat(strings.TrimSpace(form.Longitude), 64)
	if latErr != nil || lngErr != nil {
		return nil, validationError("latitude and longitude must be numeric")
	}

	var venue *models.Venue
	var err error
	if form.ID == "" {
		venue, err = s.venues.CreateVenue(ctx, form.Name, lat, lng, form.Address)
	} else {
		venue, err = s.venues.UpdateVenue(ctx, form.ID, form.Name, lat, lng, form.Address)
	}
	if err != nil {
		s.logger.Error("failed to save venue", "error", err)
		return nil, err
	}
	return venue, nil
}

// Delete removes a venue after a best-effort delete of the events pinned to
// it. The cascade is a separate remote call with no rollback.
func (s *VenueService) Delete(ctx context.Context, id string) bool {
	if err := s.events.DeleteEventsByVenue(ctx, id); err != nil {
		s.logger.Warn("failed to delete events for venue", "id", id, "error", err)
	}
	if err := s.venues.DeleteVenue(ctx, id); err != nil {
		s.logger.Error("failed to delete venue", "id", id, "error", err)
		return false
	}
	return true
}
