package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/marustas/MealMasterServer/models"
	"github.com/marustas/MealMasterServer/repositories"
)

type MealController struct {
	meals *repositories.MealRepository
}

func NewMealController(meals *repositories.MealRepository) *MealController {
	return &MealController{meals: meals}
}

type MealInput struct {
	Recipe  models.Recipe `json:"recipe" binding:"required"`
	Section *int          `json:"section" binding:"required"` // pointer so section 0 binds
}

func (ctl *MealController) List(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.meals.ListByOwner(c.GetInt("userID")))
}

func (ctl *MealController) Put(c *gin.Context) {
	var input MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	section := *input.Section
	if section < models.SectionBreakfast || section > models.SectionDinner {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid section"})
		return
	}

	slot, err := ctl.meals.Put(c.GetInt("userID"), section, input.Recipe)
	if err != nil {
		log.Error().Err(err).Msg("meal slot update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save meal"})
		return
	}
	c.JSON(http.StatusOK, slot)
}

func (ctl *MealController) Delete(c *gin.Context) {
	recipeID, err := strconv.Atoi(c.Param("recipeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := ctl.meals.DeleteRecipe(c.GetInt("userID"), recipeID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		log.Error().Err(err).Msg("meal slot delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete meal"})
		return
	}
	c.Status(http.StatusNoContent)
}
