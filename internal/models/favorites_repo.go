package models

import (
	"context"
	"encoding/json"
	"fmt"
)

type FavoriteRepo interface {
	ListFavoriteEventIDs(ctx context.Context, userID string) ([]string, error)
	IsFavorite(ctx context.Context, userID, eventID string) (bool, error)
	AddFavorite(ctx context.Context, userID, eventID string) error
	RemoveFavorite(ctx context.Context, userID, eventID string) error
	RemoveFavoritesByEvent(ctx context.Context, eventID string) error
}

func (su *SupabaseRepo) ListFavoriteEventIDs(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, fmt.Errorf("no user ID provided")
	}

	data, count, err := su.supabaseClient.From(FavoritesTable).
		Select("event_id", "exact", false).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %v", err)
	}
	if count == 0 {
		return []string{}, nil
	}

	var rows []Favorite
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal favorites: %v", err)
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.EventID)
	}
	return ids, nil
}

func (su *SupabaseRepo) IsFavorite(ctx context.Context, userID, eventID string) (bool, error) {
	if userID == "" || eventID == "" {
		return false, fmt.Errorf("no user ID or event ID provided")
	}

	data, _, err := su.supabaseClient.From(FavoritesTable).
		Select("id", "", false).
		Eq("user_id", userID).
		Eq("event_id", eventID).
		Limit(1, "").
		Execute()
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %v", err)
	}

	var rows []Favorite
	if err := json.Unmarshal(data, &rows); err != nil {
		return false, fmt.Errorf("failed to unmarshal favorite row: %v", err)
	}
	return len(rows) > 0, nil
}

func (su *SupabaseRepo) AddFavorite(ctx context.Context, userID, eventID string) error {
	if userID == "" || eventID == "" {
		return fmt.Errorf("no user ID or event ID provided")
	}

	row := map[string]interface{}{
		"user_id":  userID,
		"event_id": eventID,
	}
	_, _, err := su.supabaseClient.From(FavoritesTable).
		Insert(row, false, "", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to add favorite: %v", err)
	}
	return nil
}

func (su *SupabaseRepo) RemoveFavorite(ctx context.Context, userID, eventID string) error {
	if userID == "" || eventID == "" {
		return fmt.Errorf("no user ID or event ID provided")
	}

	_, _, err := su.supabaseClient.From(FavoritesTable).
		Delete("", "").
		Eq("user_id", userID).
		Eq("event_id", eventID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %v", err)
	}
	return nil
}

// RemoveFavoritesByEvent drops every bookmark of an event. Used as the
// best-effort cascade when an event is deleted.
func (su *SupabaseRepo) RemoveFavoritesByEvent(ctx context.Context, eventID string) error {
	if eventID == "" {
		return fmt.Errorf("no event ID provided")
	}

	_, _, err := su.supabaseClient.From(FavoritesTable).
		Delete("", "").
		Eq("event_id", eventID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to remove favorites for event: %v", err)
	}
	return nil
}
