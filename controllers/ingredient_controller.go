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

type IngredientController struct {
	ingredients *repositories.IngredientRepository
}

func NewIngredientController(ingredients *repositories.IngredientRepository) *IngredientController {
	return &IngredientController{ingredients: ingredients}
}

type IngredientInput struct {
	Name     string  `json:"name" binding:"required"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (in IngredientInput) toModel() models.Ingredient {
	return models.Ingredient{
		Name:     in.Name,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
	}
}

func (ctl *IngredientController) List(c *gin.Context) {
	userID := c.GetInt("userID")
	query := c.Query("q")
	c.JSON(http.StatusOK, ctl.ingredients.ListByOwner(userID, query))
}

func (ctl *IngredientController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	ingredient, err := ctl.ingredients.GetByOwner(id, c.GetInt("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

func (ctl *IngredientController) Create(c *gin.Context) {
	var input IngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient, err := ctl.ingredients.Create(input.toModel(), c.GetInt("userID"))
	if err != nil {
		log.Error().Err(err).Msg("ingredient create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save ingredient"})
		return
	}
	c.JSON(http.StatusCreated, ingredient)
}

func (ctl *IngredientController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	var input IngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient, err := ctl.ingredients.UpdateByOwner(id, c.GetInt("userID"), input.toModel())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
			return
		}
		log.Error().Err(err).Msg("ingredient update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save ingredient"})
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

func (ctl *IngredientController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	if err := ctl.ingredients.DeleteByOwner(id, c.GetInt("userID")); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
			return
		}
		log.Error().Err(err).Msg("ingredient delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete ingredient"})
		return
	}
	c.Status(http.StatusNoContent)
}
