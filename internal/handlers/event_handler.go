package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"eventmap/internal/models"
	"eventmap/internal/services"
)

// filterFromQuery maps list query parameters onto the filter config,
// defaulting every group to "off".
func filterFromQuery(c *gin.Context) services.FilterConfig {
	cfg := services.DefaultFilterConfig()
	if v := c.Query("date_filter"); v != "" {
		cfg.DateFilter = services.DateFilter(v)
	}
	cfg.FreeOnly = c.Query("free_only") == "true"
	if v := c.Query("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.MaxPrice = f
		}
	}
	if v := c.Query("categories"); v != "" {
		cfg.Categories = strings.Split(v, ",")
	}
	return cfg
}

func ListEvents(events *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list := events.List(c.Request.Context(), c.Query("search"), filterFromQuery(c))
		c.JSON(http.StatusOK, models.ListResponse(list, len(list)))
	}
}

// EventsMapRegion returns the viewport covering the filtered event list.
func EventsMapRegion(events *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list := events.List(c.Request.Context(), c.Query("search"), filterFromQuery(c))
		c.JSON(http.StatusOK, models.SuccessResponse(events.MapRegion(list), ""))
	}
}

func GetEvent(events *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event := events.Get(c.Request.Context(), c.Param("id"))
		if event == nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse("event not found"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(event, ""))
	}
}

// GetEventForm returns the normalized edit draft for an existing event.
func GetEventForm(events *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		form := events.LoadForm(c.Request.Context(), c.Param("id"))
		if form == nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse("event not found"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(form, ""))
	}
}

func CreateEvent(events *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form models.EventForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}
		form.ID = ""

		event, err := events.Submit(c.Request.Context(), &form)
		if err != nil {
			status := http.StatusInternalServerError
			if services.IsValidationError(err) {
				status = http.StatusBadRequest
			}
			c.JSON(status, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(event, "event created"))
	}
}

func UpdateEvent(events *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form models.EventForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}
		form.ID = c.Param("id")

		event, err := events.Submit(c.Request.Context(), &form)
		if err != nil {
			status := http.StatusInternalServerError
			if services.IsValidationError(err) {
				status = http.StatusBadRequest
			}
			c.JSON(status, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(event, "event updated"))
	}
}

func DeleteEvent(events *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !events.Delete(c.Request.Context(), c.Param("id")) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to delete event"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "event deleted"))
	}
}
