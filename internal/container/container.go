package container

import (
	"log/slog"

	"github.com/supabase-community/supabase-go"

	"eventmap/internal/config"
	"eventmap/internal/models"
	"eventmap/internal/services"
	"eventmap/internal/session"
)

// Container holds all application dependencies
type Container struct {
	Logger         *slog.Logger
	SupabaseClient *supabase.Client
	SessionStore   *session.Store

	AuthService     *services.AuthService
	EventService    *services.EventService
	CategoryService *services.CategoryService
	VenueService    *services.VenueService
	FavoriteService *services.FavoriteService
	StorageService  *services.StorageService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	cfg *config.Config,
	logger *slog.Logger,
	supabaseClient *supabase.Client,
	store *session.Store,
) *Container {
	supa := models.SupabaseNewRepo(supabaseClient)

	storageService := services.NewStorageService(supabaseClient.Storage, cfg.StorageBucket, logger)
	authService := services.NewAuthService(supa, store, logger)
	eventService := services.NewEventService(supa, supa, supa, storageService, services.NewNoopGeocoder(), logger)
	categoryService := services.NewCategoryService(supa, logger)
	venueService := services.NewVenueService(supa, supa, logger)
	favoriteService := services.NewFavoriteService(supa, logger)

	return &Container{
		Logger:          logger,
		SupabaseClient:  supabaseClient,
		SessionStore:    store,
		AuthService:     authService,
		EventService:    eventService,
		CategoryService: categoryService,
		VenueService:    venueService,
		FavoriteService: favoriteService,
		StorageService:  storageService,
	}
}
