package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"eventmap/internal/container"
	"eventmap/internal/handlers"
	"eventmap/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// API version 1
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "eventmap-api",
			})
		})

		// public routes
		v1.POST("/signup", handlers.Signup(container.AuthService))
		v1.POST("/login", handlers.Login(container.AuthService))

		// browsing is open, no session required
		v1.GET("/events", handlers.ListEvents(container.EventService))
		v1.GET("/events/region", handlers.EventsMapRegion(container.EventService))
		v1.GET("/events/:id", handlers.GetEvent(container.EventService))
		v1.GET("/categories", handlers.ListCategories(container.CategoryService))
		v1.GET("/venues", handlers.ListVenues(container.VenueService))
		v1.GET("/venues/:id", handlers.GetVenue(container.VenueService))
	}

	protected := v1.Group("/")
	protected.Use(middleware.SessionAuth(container.AuthService))

	eventRoutes := protected.Group("/events")
	{
		eventRoutes.GET("/:id/form", handlers.GetEventForm(container.EventService))
		eventRoutes.POST("/", handlers.CreateEvent(container.EventService))
		eventRoutes.PUT("/:id", handlers.UpdateEvent(container.EventService))
		eventRoutes.DELETE("/:id", handlers.DeleteEvent(container.EventService))
	}

	categoryRoutes := protected.Group("/categories")
	{
		categoryRoutes.POST("/", handlers.CreateCategory(container.CategoryService))
		categoryRoutes.PUT("/:id", handlers.UpdateCategory(container.CategoryService))
		categoryRoutes.DELETE("/:id", handlers.DeleteCategory(container.CategoryService))
	}

	venueRoutes := protected.Group("/venues")
	{
		venueRoutes.POST("/", handlers.CreateVenue(container.VenueService))
		venueRoutes.PUT("/:id", handlers.UpdateVenue(container.VenueService))
		venueRoutes.DELETE("/:id", handlers.DeleteVenue(container.VenueService))
	}

	favoriteRoutes := protected.Group("/favorites")
	{
		favoriteRoutes.GET("/", handlers.ListFavorites(container.FavoriteService))
		favoriteRoutes.POST("/:id/toggle", handlers.ToggleFavorite(container.FavoriteService))
	}

	profileRoutes := protected.Group("/profile")
	{
		profileRoutes.GET("/", handlers.GetProfile())
		profileRoutes.PATCH("/", handlers.UpdateProfile(container.AuthService))
	}

	protected.POST("/logout", handlers.Logout(container.AuthService))
	protected.GET("/notifications", handlers.GetNotifications(container.AuthService))
	protected.PUT("/notifications", handlers.SetNotifications(container.AuthService))

	return r
}
