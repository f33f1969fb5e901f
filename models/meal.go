package models

// Meal sections, in slot order.
const (
	SectionBreakfast = 0
	SectionLunch     = 1
	SectionDinner    = 2
)

// MealSlot holds one user's pick for one section of the day. Slots are keyed by
// (UserID, Section): a user has at most one recipe per section, and users never
// share slots.
type MealSlot struct {
	UserID  int    `json:"userID"`
	Section int    `json:"section"`
	Recipe  Recipe `json:"recipe"`
}
