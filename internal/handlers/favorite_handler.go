package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventmap/internal/models"
	"eventmap/internal/services"
)

func ListFavorites(favorites *services.FavoriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("no active session"))
			return
		}

		ids := favorites.ListEventIDs(c.Request.Context(), user.ID)
		c.JSON(http.StatusOK, models.ListResponse(ids, len(ids)))
	}
}

// ToggleFavorite flips the bookmark for one event and reports the new
// membership.
func ToggleFavorite(favorites *services.FavoriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("no active session"))
			return
		}

		favorite := favorites.Toggle(c.Request.Context(), user.ID, c.Param("id"))
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"favorite": favorite}, ""))
	}
}
