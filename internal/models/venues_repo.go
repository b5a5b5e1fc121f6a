package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"
)

type VenueRepo interface {
	ListVenues(ctx context.Context) ([]Venue, error)
	GetVenueByID(ctx context.Context, id string) (*Venue, error)
	CreateVenue(ctx context.Context, name string, lat, lng float64, address string) (*Venue, error)
	UpdateVenue(ctx context.Context, id, name string, lat, lng float64, address string) (*Venue, error)
	DeleteVenue(ctx context.Context, id string) error
}

func (su *SupabaseRepo) ListVenues(ctx context.Context) ([]Venue, error) {
	data, count, err := su.supabaseClient.From(VenuesTable).
		Select("*", "exact", false).
		Order("name", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %v", err)
	}
	if count == 0 {
		return []Venue{}, nil
	}

	var venues []Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venues: %v", err)
	}
	return venues, nil
}

func (su *SupabaseRepo) GetVenueByID(ctx context.Context, id string) (*Venue, error) {
	if id == "" {
		return nil, fmt.Errorf("no venue ID provided")
	}

	data, _, err := su.supabaseClient.From(VenuesTable).
		Select("*", "", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get venue by ID: %v", err)
	}

	var venues []Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venue row: %v", err)
	}
	if len(venues) == 0 {
		return nil, fmt.Errorf("venue not found")
	}
	return &venues[0], nil
}

func (su *SupabaseRepo) CreateVenue(ctx context.Context, name string, lat, lng float64, address string) (*Venue, error) {
	if name == "" {
		return nil, fmt.Errorf("venue name cannot be empty")
	}

	row := map[string]interface{}{
		"name":      name,
		"latitude":  lat,
		"longitude": lng,
		"address":   address,
	}
	data, count, err := su.supabaseClient.From(VenuesTable).
		Insert(row, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create venue: %v", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("no venue row returned after insert")
	}

	var created []Venue
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created venue: %v", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("no venue data returned after insert")
	}
	return &created[0], nil
}

func (su *SupabaseRepo) UpdateVenue(ctx context.Context, id, name string, lat, lng float64, address string) (*Venue, error) {
	if id == "" {
		return nil, fmt.Errorf("no venue ID provided")
	}

	row := map[string]interface{}{
		"name":      name,
		"latitude":  lat,
		"longitude": lng,
		"address":   address,
	}
	data, count, err := su.supabaseClient.From(VenuesTable).
		Update(row, "", "exact").
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update venue: %v", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("no venue found to update")
	}

	var updated []Venue
	if err := json.Unmarshal(data, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated venue: %v", err)
	}
	if len(updated) == 0 {
		return nil, fmt.Errorf("no venue data returned after update")
	}
	return &updated[0], nil
}

func (su *SupabaseRepo) DeleteVenue(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("no venue ID provided")
	}

	_, _, err := su.supabaseClient.From(VenuesTable).
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete venue: %v", err)
	}
	return nil
}
