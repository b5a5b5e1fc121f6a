package services

import (
	"context"
	"log/slog"

	"eventmap/internal/models"
)

type FavoriteService struct {
	favorites models.FavoriteRepo
	logger    *slog.Logger
}

func NewFavoriteService(favorites models.FavoriteRepo, logger *slog.Logger) *FavoriteService {
	return &FavoriteService{
		favorites: favorites,
		logger:    logger,
	}
}

// ListEventIDs returns the ids of the user's bookmarked events, or an empty
// list on remote failure.
func (s *FavoriteService) ListEventIDs(ctx context.Context, userID string) []string {
	ids, err := s.favorites.ListFavoriteEventIDs(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load favorites", "user_id", userID, "error", err)
		return []string{}
	}
	return ids
}

func (s *FavoriteService) IsFavorite(ctx context.Context, userID, eventID string) bool {
	fav, err := s.favorites.IsFavorite(ctx, userID, eventID)
	if err != nil {
		s.logger.Error("failed to check favorite", "user_id", userID, "event_id", eventID, "error", err)
		return false
	}
	return fav
}

// Toggle checks current membership and performs the opposite write, returning
// the new membership. The check and the write are two remote calls with no
// uniqueness constraint between them, so concurrent toggles can race.
func (s *FavoriteService) Toggle(ctx context.Context, userID, eventID string) bool {
	if s.IsFavorite(ctx, userID, eventID) {
		if err := s.favorites.RemoveFavorite(ctx, userID, eventID); err != nil {
			s.logger.Error("failed to remove favorite", "user_id", userID, "event_id", eventID, "error", err)
		}
		return false
	}
	if err := s.favorites.AddFavorite(ctx, userID, eventID); err != nil {
		s.logger.Error("failed to add favorite", "user_id", userID, "event_id", eventID, "error", err)
	}
	return true
}
