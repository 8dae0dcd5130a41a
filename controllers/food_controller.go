package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AdisornNangnoi/foodtracker-backend/services"
	"github.com/AdisornNangnoi/foodtracker-backend/utils"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

func (fc *FoodController) List(c *gin.Context) {
	userID := c.GetUint("userID")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	search := c.Query("search")

	result, err := fc.foods.List(c.Request.Context(), userID, search, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (fc *FoodController) Create(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := fc.foods.Create(c.Request.Context(), userID, input)
	if err != nil {
		fc.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (fc *FoodController) Update(c *gin.Context) {
	userID := c.GetUint("userID")

	entryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var input services.FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := fc.foods.Update(c.Request.Context(), userID, uint(entryID), input)
	if err != nil {
		fc.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (fc *FoodController) Delete(c *gin.Context) {
	userID := c.GetUint("userID")

	entryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := fc.foods.Delete(c.Request.Context(), userID, uint(entryID)); err != nil {
		fc.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "food entry deleted"})
}

func (fc *FoodController) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrValidation), errors.Is(err, utils.ErrInvalidImage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
