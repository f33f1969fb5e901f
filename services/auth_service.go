package services

import (
	"errors"

	"github.com/marustas/MealMasterServer/models"
	"github.com/marustas/MealMasterServer/repositories"
	"github.com/marustas/MealMasterServer/utils"
)

// ErrInvalidCredentials covers both unknown-email and wrong-password so a
// caller cannot probe which of the two failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

func (s *AuthService) RegisterUser(email, password, username string) (models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:       email,
		Password:    hashedPassword,
		Username:    username,
		CalorieGoal: 0,
		Role:        models.RoleUser,
	}
	return s.users.Create(user)
}

func (s *AuthService) AuthenticateUser(email, password string) (models.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}
