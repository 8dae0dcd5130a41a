package controllers

import (
	"errors"
	"net/http"

	"github.com/AdisornNangnoi/foodtracker-backend/services"
	"github.com/AdisornNangnoi/foodtracker-backend/utils"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	profile *services.ProfileService
}

func NewProfileController(profile *services.ProfileService) *ProfileController {
	return &ProfileController{profile: profile}
}

// Me serves the cached header fields for the dashboard.
func (pc *ProfileController) Me(c *gin.Context) {
	userID := c.GetUint("userID")
	display, err := pc.profile.Display(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, display)
}

func (pc *ProfileController) GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")
	profile, err := pc.profile.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := pc.profile.Update(c.Request.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidImage):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}
