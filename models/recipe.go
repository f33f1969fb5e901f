package models

type RecipeIngredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Recipe is a global record, shared across users. Ownership only appears on the
// meal-slot snapshot that references it.
type Recipe struct {
	ID          int                `json:"id"`
	Title       string             `json:"title"`
	Section     string             `json:"section"` // "breakfast" | "lunch" | "dinner"
	Ingredients []RecipeIngredient `json:"ingredients"`
}
