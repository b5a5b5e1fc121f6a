package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventmap/internal/models"
	"eventmap/internal/services"
)

func ListCategories(categories *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list := categories.List(c.Request.Context())
		c.JSON(http.StatusOK, models.ListResponse(list, len(list)))
	}
}

func CreateCategory(categories *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name string `json:"name" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("category name is required"))
			return
		}

		category, err := categories.Create(c.Request.Context(), req.Name)
		if err != nil {
			status := http.StatusInternalServerError
			if services.IsValidationError(err) {
				status = http.StatusBadRequest
			}
			c.JSON(status, models.ErrorResponse("failed to create category"))
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(category, "category created"))
	}
}

func UpdateCategory(categories *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name string `json:"name" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("category name is required"))
			return
		}

		category := categories.Update(c.Request.Context(), c.Param("id"), req.Name)
		if category == nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to update category"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(category, "category updated"))
	}
}

func DeleteCategory(categories *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !categories.Delete(c.Request.Context(), c.Param("id")) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to delete category"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "category deleted"))
	}
}
