package services

import (
	"context"
	"fmt"
	"testing"

	"eventmap/internal/models"
)

type fakeEventRepo struct {
	events    []models.Event
	listErr   error
	createErr error
	updateErr error

	created []map[string]interface{}
	updated []map[string]interface{}
	deleted []string
}

func (f *fakeEventRepo) ListEvents(ctx context.Context, search string) ([]models.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func (f *fakeEventRepo) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	for i := range f.events {
		if f.events[i].ID == id {
			return &f.events[i], nil
		}
	}
	return nil, fmt.Errorf("event not found")
}

func (f *fakeEventRepo) CreateEvent(ctx context.Context, row map[string]interface{}) (*models.Event, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, row)
	return &models.Event{ID: "new", Name: row["name"].(string)}, nil
}

func (f *fakeEventRepo) UpdateEvent(ctx context.Context, id string, row map[string]interface{}) (*models.Event, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = append(f.updated, row)
	return &models.Event{ID: id, Name: row["name"].(string)}, nil
}

func (f *fakeEventRepo) DeleteEvent(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeEventRepo) DeleteEventsByVenue(ctx context.Context, venueID string) error {
	return nil
}

type fakeVenueRepo struct {
	created []models.Venue
	deleted []string
}

func (f *fakeVenueRepo) ListVenues(ctx context.Context) ([]models.Venue, error) {
	return f.created, nil
}

func (f *fakeVenueRepo) GetVenueByID(ctx context.Context, id string) (*models.Venue, error) {
	return nil, fmt.Errorf("venue not found")
}

func (f *fakeVenueRepo) CreateVenue(ctx context.Context, name string, lat, lng float64, address string) (*models.Venue, error) {
	venue := models.Venue{
		ID:        fmt.Sprintf("v%d", len(f.created)+1),
		Name:      name,
		Address:   address,
		Latitude:  models.NewCoord(lat),
		Longitude: models.NewCoord(lng),
	}
	f.created = append(f.created, venue)
	return &venue, nil
}

func (f *fakeVenueRepo) UpdateVenue(ctx context.Context, id, name string, lat, lng float64, address string) (*models.Venue, error) {
	return &models.Venue{ID: id, Name: name}, nil
}

func (f *fakeVenueRepo) DeleteVenue(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func newTestEventService(events *fakeEventRepo, venues *fakeVenueRepo) *EventService {
	return NewEventService(events, venues, newFakeFavoriteRepo(), nil, nil, discardLogger())
}

func validForm() *models.EventForm {
	return &models.EventForm{
		Name:        "Street Fair",
		Description: "Food and music",
		Date:        "2025-03-07",
		StartTime:   "14:00",
		Price:       "10",
		CategoryID:  "c1",
		VenueID:     "v1",
	}
}

func TestSubmitRejectsIncompleteFormBeforeAnyRemoteCall(t *testing.T) {
	events := &fakeEventRepo{}
	venues := &fakeVenueRepo{}
	svc := newTestEventService(events, venues)

	form := validForm()
	form.Name = ""

	if _, err := svc.Submit(context.Background(), form); !IsValidationError(err) {
		t.Fatalf("Expected a validation error, got %v", err)
	}
	if len(events.created) != 0 || len(venues.created) != 0 {
		t.Error("A rejected form must not reach the remote store")
	}
}

func TestSubmitRejectsUnparseablePrice(t *testing.T) {
	svc := newTestEventService(&fakeEventRepo{}, &fakeVenueRepo{})

	form := validForm()
	form.Price = "ten dollars"

	if _, err := svc.Submit(context.Background(), form); !IsValidationError(err) {
		t.Fatalf("Expected a validation error, got %v", err)
	}
}

func TestSubmitRequiresVenueOrPin(t *testing.T) {
	svc := newTestEventService(&fakeEventRepo{}, &fakeVenueRepo{})

	form := validForm()
	form.VenueID = ""

	if _, err := svc.Submit(context.Background(), form); !IsValidationError(err) {
		t.Fatalf("Expected a validation error, got %v", err)
	}
}

func TestSubmitCreatesVenueFromPin(t *testing.T) {
	events := &fakeEventRepo{}
	venues := &fakeVenueRepo{}
	svc := newTestEventService(events, venues)

	form := validForm()
	form.VenueID = ""
	form.Latitude = "-23.5"
	form.Longitude = "-46.6"

	event, err := svc.Submit(context.Background(), form)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if event == nil {
		t.Fatal("Expected a created event")
	}
	if len(venues.created) != 1 {
		t.Fatalf("Expected one venue created from the pin, got %d", len(venues.created))
	}
	if venues.created[0].Name != "Pinned location" {
		t.Errorf("Expected placeholder venue name, got %q", venues.created[0].Name)
	}
	if len(events.created) != 1 || events.created[0]["venue_id"] != venues.created[0].ID {
		t.Error("The event row should reference the created venue")
	}
}

func TestSubmitZeroCoordinateIsNotAPin(t *testing.T) {
	venues := &fakeVenueRepo{}
	svc := newTestEventService(&fakeEventRepo{}, venues)

	form := validForm()
	form.VenueID = ""
	form.Latitude = "0"
	form.Longitude = "-46.6"

	if _, err := svc.Submit(context.Background(), form); !IsValidationError(err) {
		t.Fatalf("Expected a validation error, got %v", err)
	}
	if len(venues.created) != 0 {
		t.Error("A zero coordinate must not create a venue")
	}
}

func TestSubmitRollsBackCreatedVenueOnWriteFailure(t *testing.T) {
	events := &fakeEventRepo{createErr: fmt.Errorf("remote down")}
	venues := &fakeVenueRepo{}
	svc := newTestEventService(events, venues)

	form := validForm()
	form.VenueID = ""
	form.Latitude = "-23.5"
	form.Longitude = "-46.6"

	if _, err := svc.Submit(context.Background(), form); err == nil {
		t.Fatal("Expected the submit to fail")
	}
	if len(venues.created) != 1 {
		t.Fatalf("Expected the venue to have been created first, got %d", len(venues.created))
	}
	if len(venues.deleted) != 1 || venues.deleted[0] != venues.created[0].ID {
		t.Errorf("Expected the created venue to be deleted again, got %v", venues.deleted)
	}
}

func TestSubmitUpdateKeepsStoredImagesWhenDraftHasNone(t *testing.T) {
	events := &fakeEventRepo{}
	svc := newTestEventService(events, &fakeVenueRepo{})

	form := validForm()
	form.ID = "e1"
	form.Images = nil

	if _, err := svc.Submit(context.Background(), form); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if len(events.updated) != 1 {
		t.Fatalf("Expected one update, got %d", len(events.updated))
	}
	if _, present := events.updated[0]["images"]; present {
		t.Error("An empty draft image list must not overwrite the stored one")
	}
}

func TestSubmitCanonicalizesDateAndTimes(t *testing.T) {
	events := &fakeEventRepo{}
	svc := newTestEventService(events, &fakeVenueRepo{})

	form := validForm()
	form.Date = "07/03/2025"
	form.StartTime = "9:5"
	form.EndTime = ""

	if _, err := svc.Submit(context.Background(), form); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	row := events.created[0]
	if row["date"] != "2025-03-07" {
		t.Errorf("Expected canonical date, got %v", row["date"])
	}
	if row["start_time"] != "09:05" {
		t.Errorf("Expected canonical start time, got %v", row["start_time"])
	}
	if row["end_time"] != row["start_time"] {
		t.Errorf("A missing end time should default to the start time, got %v", row["end_time"])
	}
}

func TestListFailureYieldsEmptyList(t *testing.T) {
	events := &fakeEventRepo{listErr: fmt.Errorf("remote down")}
	svc := newTestEventService(events, &fakeVenueRepo{})

	got := svc.List(context.Background(), "", DefaultFilterConfig())
	if got == nil || len(got) != 0 {
		t.Errorf("Remote failure should yield an empty non-nil list, got %v", got)
	}
}

func TestDeleteCascadesFavoritesFirst(t *testing.T) {
	events := &fakeEventRepo{}
	favorites := newFakeFavoriteRepo()
	svc := NewEventService(events, &fakeVenueRepo{}, favorites, nil, nil, discardLogger())

	favorites.AddFavorite(context.Background(), "u1", "e1")
	if !svc.Delete(context.Background(), "e1") {
		t.Fatal("Delete should succeed")
	}
	if favorites.rows[favKey("u1", "e1")] {
		t.Error("Favorites for the event should be removed")
	}
	if len(events.deleted) != 1 || events.deleted[0] != "e1" {
		t.Errorf("Expected the event to be deleted, got %v", events.deleted)
	}
}

func TestLoadFormNormalizesStoredShapes(t *testing.T) {
	events := &fakeEventRepo{events: []models.Event{{
		ID:         "e1",
		Name:       "Street Fair",
		Date:       "07/03/2025",
		StartTime:  "14:00",
		CategoryID: "c1",
		Venue: &models.Venue{
			ID:        "v1",
			Latitude:  models.NewCoord(-23.5),
			Longitude: models.NewCoord(-46.6),
		},
	}}}
	svc := newTestEventService(events, &fakeVenueRepo{})

	form := svc.LoadForm(context.Background(), "e1")
	if form == nil {
		t.Fatal("Expected a form")
	}
	if form.Date != "2025-03-07" {
		t.Errorf("Expected canonical date, got %s", form.Date)
	}
	if form.EndTime != form.StartTime {
		t.Errorf("Missing end time should default to start time, got %s", form.EndTime)
	}
	if form.VenueID != "v1" {
		t.Errorf("Venue id should be lifted from the embedded record, got %q", form.VenueID)
	}
	if form.Latitude != "-23.5" || form.Longitude != "-46.6" {
		t.Errorf("Expected pin strings from venue coordinates, got %s/%s", form.Latitude, form.Longitude)
	}
}
