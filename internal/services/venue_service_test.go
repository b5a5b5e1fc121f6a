package services

import (
	"context"
	"testing"

	"eventmap/internal/models"
)

func TestVenueSaveRejectsNonNumericCoordinates(t *testing.T) {
	venues := &fakeVenueRepo{}
	svc := NewVenueService(venues, &fakeEventRepo{}, discardLogger())

	form := &models.VenueForm{
		Name:      "City Hall",
		Latitude:  "somewhere",
		Longitude: "-46.6",
	}
	if _, err := svc.Save(context.Background(), form); !IsValidationError(err) {
		t.Fatalf("Expected a validation error, got %v", err)
	}
	if len(venues.created) != 0 {
		t.Error("A rejected draft must not reach the remote store")
	}
}

func TestVenueSaveCreatesWhenNoID(t *testing.T) {
	venues := &fakeVenueRepo{}
	svc := NewVenueService(venues, &fakeEventRepo{}, discardLogger())

	form := &models.VenueForm{
		Name:      "City Hall",
		Address:   "Main Square 1",
		Latitude:  "-23.5",
		Longitude: "-46.6",
	}
	venue, err := svc.Save(context.Background(), form)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if venue == nil || len(venues.created) != 1 {
		t.Fatal("Expected a created venue")
	}
	if lat, lng, ok := venue.Coordinates(); !ok || lat != -23.5 || lng != -46.6 {
		t.Errorf("Expected (-23.5, -46.6), got (%v, %v) ok=%v", lat, lng, ok)
	}
}

func TestVenueDeleteCascadesEvents(t *testing.T) {
	venues := &fakeVenueRepo{}
	events := &fakeEventRepo{}
	svc := NewVenueService(venues, events, discardLogger())

	venues.CreateVenue(context.Background(), "City Hall", -23.5, -46.6, "")
	if !svc.Delete(context.Background(), "v1") {
		t.Fatal("Delete should succeed")
	}
	if len(venues.deleted) != 1 || venues.deleted[0] != "v1" {
		t.Errorf("Expected the venue to be deleted, got %v", venues.deleted)
	}
}
