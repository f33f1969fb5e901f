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

type RecipeController struct {
	recipes *repositories.RecipeRepository
}

func NewRecipeController(recipes *repositories.RecipeRepository) *RecipeController {
	return &RecipeController{recipes: recipes}
}

type RecipeInput struct {
	Title       string                    `json:"title" binding:"required"`
	Section     string                    `json:"section"`
	Ingredients []models.RecipeIngredient `json:"ingredients"`
}

func (in RecipeInput) toModel() models.Recipe {
	return models.Recipe{
		Title:       in.Title,
		Section:     in.Section,
		Ingredients: in.Ingredients,
	}
}

// List is public and paginated: ?q=&page=&itemsPerPage=&filters=...&filters=...
func (ctl *RecipeController) List(c *gin.Context) {
	query := c.Query("q")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("itemsPerPage", strconv.Itoa(repositories.DefaultPageSize)))
	sections := c.QueryArray("filters")

	c.JSON(http.StatusOK, ctl.recipes.List(query, sections, page, perPage))
}

func (ctl *RecipeController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := ctl.recipes.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (ctl *RecipeController) Create(c *gin.Context) {
	var input RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := ctl.recipes.Create(input.toModel())
	if err != nil {
		log.Error().Err(err).Msg("recipe create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save recipe"})
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (ctl *RecipeController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var input RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := ctl.recipes.Update(id, input.toModel())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		log.Error().Err(err).Msg("recipe update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save recipe"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (ctl *RecipeController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := ctl.recipes.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		log.Error().Err(err).Msg("recipe delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete recipe"})
		return
	}
	c.Status(http.StatusNoContent)
}
