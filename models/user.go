package models

import "encoding/json"

const (
	RoleUser       = "user"
	RoleSubscribed = "subscribed"
)

// User is the persisted record. The password hash travels with it through the
// storage layer; handlers must never serialize it back to clients (see
// controllers.userResponse).
type User struct {
	ID           int             `json:"id"`
	Email        string          `json:"email"`
	Password     string          `json:"password"`
	Username     string          `json:"username"`
	CalorieGoal  float64         `json:"calorieGoal"`
	Role         string          `json:"role"`
	Subscription json.RawMessage `json:"subscription,omitempty"`
}
