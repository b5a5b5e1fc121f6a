package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventmap/internal/models"
	"eventmap/internal/services"
)

func ListVenues(venues *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list := venues.List(c.Request.Context())
		c.JSON(http.StatusOK, models.ListResponse(list, len(list)))
	}
}

func GetVenue(venues *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		venue := venues.Get(c.Request.Context(), c.Param("id"))
		if venue == nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse("venue not found"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(venue, ""))
	}
}

func CreateVenue(venues *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form models.VenueForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}
		form.ID = ""

		venue, err := venues.Save(c.Request.Context(), &form)
		if err != nil {
			status := http.StatusInternalServerError
			if services.IsValidationError(err) {
				status = http.StatusBadRequest
			}
			c.JSON(status, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(venue, "venue created"))
	}
}

func UpdateVenue(venues *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form models.VenueForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}
		form.ID = c.Param("id")

		venue, err := venues.Save(c.Request.Context(), &form)
		if err != nil {
			status := http.StatusInternalServerError
			if services.IsValidationError(err) {
				status = http.StatusBadRequest
			}
			c.JSON(status, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(venue, "venue updated"))
	}
}

func DeleteVenue(venues *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !venues.Delete(c.Request.Context(), c.Param("id")) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to delete venue"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "venue deleted"))
	}
}
