package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/marustas/MealMasterServer/models"
	"github.com/marustas/MealMasterServer/repositories"
)

type UserController struct {
	users *repositories.UserRepository
}

func NewUserController(users *repositories.UserRepository) *UserController {
	return &UserController{users: users}
}

// userResponse is the outward shape of a user record: same fields as
// models.User minus the password hash.
type userResponse struct {
	ID           int             `json:"id"`
	Email        string          `json:"email"`
	Username     string          `json:"username"`
	CalorieGoal  float64         `json:"calorieGoal"`
	Role         string          `json:"role"`
	Subscription json.RawMessage `json:"subscription,omitempty"`
}

func toUserResponse(u models.User) userResponse {
	return userResponse{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		CalorieGoal:  u.CalorieGoal,
		Role:         u.Role,
		Subscription: u.Subscription,
	}
}

func (ctl *UserController) GetUser(c *gin.Context) {
	user, err := ctl.users.FindByID(c.GetInt("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

type CalorieGoalInput struct {
	Calories float64 `json:"calories"`
}

func (ctl *UserController) UpdateCalorieGoal(c *gin.Context) {
	var input CalorieGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.users.SetCalorieGoal(c.GetInt("userID"), input.Calories)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.Error().Err(err).Msg("calorie goal update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update calorie goal"})
		return
	}
	c.JSON(http.StatusOK, user.CalorieGoal)
}

type SubscribeInput struct {
	Subscription json.RawMessage `json:"subscription" binding:"required"`
}

func (ctl *UserController) Subscribe(c *gin.Context) {
	var input SubscribeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.users.SetSubscription(c.GetInt("userID"), input.Subscription)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.Error().Err(err).Msg("subscribe failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store subscription"})
		return
	}
	c.JSON(http.StatusOK, user.Subscription)
}
