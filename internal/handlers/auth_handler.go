package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventmap/internal/models"
	"eventmap/internal/services"
)

func currentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}

func Login(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("email and password are required"))
			return
		}

		user, token := auth.Login(c.Request.Context(), req.Email, req.Password)
		if user == nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid email or password"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"user":  user,
			"token": token,
		}, "logged in"))
	}
}

func Signup(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
			Name     string `json:"name"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("email and password are required"))
			return
		}

		user, token, err := auth.Register(c.Request.Context(), req.Email, req.Password, req.Name)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(gin.H{
			"user":  user,
			"token": token,
		}, "account created"))
	}
}

func Logout(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.Logout(c.Request.Context())
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "logged out"))
	}
}

func GetProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("no active session"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(user, ""))
	}
}

func UpdateProfile(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch services.ProfileUpdate
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}

		user := auth.UpdateProfile(c.Request.Context(), patch)
		if user == nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to update profile"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(user, "profile updated"))
	}
}

func GetNotifications(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"enabled": auth.Notifications(c.Request.Context()),
		}, ""))
	}
}

func SetNotifications(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Enabled bool `json:"enabled"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}
		if err := auth.SetNotifications(c.Request.Context(), req.Enabled); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to save notification preference"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"enabled": req.Enabled}, "preference saved"))
	}
}
