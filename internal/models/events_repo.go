package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"
)

// eventSelect embeds the referenced category and venue rows so list items can
// be rendered without per-row follow-up queries.
const eventSelect = "*, category:categories(id,name), venue:venues(id,name,address,latitude,longitude)"

type EventRepo interface {
	ListEvents(ctx context.Context, search string) ([]Event, error)
	GetEventByID(ctx context.Context, id string) (*Event, error)
	CreateEvent(ctx context.Context, row map[string]interface{}) (*Event, error)
	UpdateEvent(ctx context.Context, id string, row map[string]interface{}) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
	DeleteEventsByVenue(ctx context.Context, venueID string) error
}

func (su *SupabaseRepo) ListEvents(ctx context.Context, search string) ([]Event, error) {
	query := su.supabaseClient.From(EventsTable).
		Select(eventSelect, "exact", false).
		Order("date", &postgrest.OrderOpts{Ascending: true})
	if search != "" {
		query = query.Ilike("name", "%"+search+"%")
	}

	data, count, err := query.Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %v", err)
	}
	if count == 0 {
		return []Event{}, nil
	}

	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal events: %v", err)
	}
	return events, nil
}

func (su *SupabaseRepo) GetEventByID(ctx context.Context, id string) (*Event, error) {
	if id == "" {
		return nil, fmt.Errorf("no event ID provided")
	}

	data, _, err := su.supabaseClient.From(EventsTable).
		Select(eventSelect, "", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get event by ID: %v", err)
	}

	// Supabase returns an array even for single results
	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event row: %v", err)
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("event not found")
	}
	return &events[0], nil
}

func (su *SupabaseRepo) CreateEvent(ctx context.Context, row map[string]interface{}) (*Event, error) {
	data, count, err := su.supabaseClient.From(EventsTable).
		Insert(row, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %v", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("no event row returned after insert")
	}

	var created []Event
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created event: %v", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("no event data returned after insert")
	}
	return &created[0], nil
}

func (su *SupabaseRepo) UpdateEvent(ctx context.Context, id string, row map[string]interface{}) (*Event, error) {
	if id == "" {
		return nil, fmt.Errorf("no event ID provided")
	}
	if len(row) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	data, count, err := su.supabaseClient.From(EventsTable).
		Update(row, "", "exact").
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %v", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("no event found to update")
	}

	var updated []Event
	if err := json.Unmarshal(data, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated event: %v", err)
	}
	if len(updated) == 0 {
		return nil, fmt.Errorf("no event data returned after update")
	}
	return &updated[0], nil
}

func (su *SupabaseRepo) DeleteEvent(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("no event ID provided")
	}

	_, _, err := su.supabaseClient.From(EventsTable).
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete event: %v", err)
	}
	return nil
}

// DeleteEventsByVenue removes every event pinned to a venue. Used as the
// best-effort cascade when a venue is deleted.
func (su *SupabaseRepo) DeleteEventsByVenue(ctx context.Context, venueID string) error {
	if venueID == "" {
		return fmt.Errorf("no venue ID provided")
	}

	_, _, err := su.supabaseClient.From(EventsTable).
		Delete("", "").
		Eq("venue_id", venueID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete events for venue: %v", err)
	}
	return nil
}
