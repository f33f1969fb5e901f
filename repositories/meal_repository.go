package repositories

import (
	"sync"

	"github.com/marustas/MealMasterServer/models"
	"github.com/marustas/MealMasterServer/storage"
)

const mealsCollection = "meals"

// MealRepository keys slots by (userID, section), so two users can both fill
// their breakfast slot without clobbering each other.
type MealRepository struct {
	mu    sync.RWMutex
	store storage.Store
	slots []models.MealSlot
}

func NewMealRepository(store storage.Store) (*MealRepository, error) {
	r := &MealRepository{store: store}
	if err := store.Load(mealsCollection, &r.slots); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *MealRepository) persist() error {
	return r.store.Save(mealsCollection, r.slots)
}

func (r *MealRepository) ListByOwner(userID int) []models.MealSlot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.MealSlot, 0, 3)
	for _, slot := range r.slots {
		if slot.UserID == userID {
			out = append(out, slot)
		}
	}
	return out
}

// Put stores the recipe snapshot in the user's slot for the given section,
// overwriting whatever was there.
func (r *MealRepository) Put(userID, section int, recipe models.Recipe) (models.MealSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot := models.MealSlot{UserID: userID, Section: section, Recipe: recipe}
	replaced := false
	for i := range r.slots {
		if r.slots[i].UserID == userID && r.slots[i].Section == section {
			r.slots[i] = slot
			replaced = true
			break
		}
	}
	if !replaced {
		r.slots = append(r.slots, slot)
	}
	if err := r.persist(); err != nil {
		return models.MealSlot{}, err
	}
	return slot, nil
}

// DeleteRecipe clears the owner's slot holding the given recipe.
func (r *MealRepository) DeleteRecipe(userID, recipeID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, slot := range r.slots {
		if slot.UserID == userID && slot.Recipe.ID == recipeID {
			r.slots = append(r.slots[:i], r.slots[i+1:]...)
			return r.persist()
		}
	}
	return ErrNotFound
}
