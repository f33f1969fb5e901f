package repositories

import (
	"strings"
	"sync"

	"github.com/marustas/MealMasterServer/models"
	"github.com/marustas/MealMasterServer/storage"
)

const ingredientsCollection = "ingredients"

// IngredientRepository scopes every operation to the owning user: a record that
// exists but belongs to someone else behaves exactly like a missing one.
type IngredientRepository struct {
	mu          sync.RWMutex
	store       storage.Store
	ingredients []models.Ingredient
}

func NewIngredientRepository(store storage.Store) (*IngredientRepository, error) {
	r := &IngredientRepository{store: store}
	if err := store.Load(ingredientsCollection, &r.ingredients); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *IngredientRepository) persist() error {
	return r.store.Save(ingredientsCollection, r.ingredients)
}

// ListByOwner returns the user's ingredients, optionally narrowed to those
// whose name contains query (case-insensitive).
func (r *IngredientRepository) ListByOwner(userID int, query string) []models.Ingredient {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	out := make([]models.Ingredient, 0)
	for _, ing := range r.ingredients {
		if ing.UserID != userID {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(ing.Name), q) {
			continue
		}
		out = append(out, ing)
	}
	return out
}

func (r *IngredientRepository) GetByOwner(id, userID int) (models.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ing := range r.ingredients {
		if ing.ID == id && ing.UserID == userID {
			return ing, nil
		}
	}
	return models.Ingredient{}, ErrNotFound
}

// Create injects the owner and assigns the next monotonic identifier.
func (r *IngredientRepository) Create(ingredient models.Ingredient, userID int) (models.Ingredient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	max := 0
	for _, ing := range r.ingredients {
		if ing.ID > max {
			max = ing.ID
		}
	}
	ingredient.ID = max + 1
	ingredient.UserID = userID
	r.ingredients = append(r.ingredients, ingredient)
	if err := r.persist(); err != nil {
		return models.Ingredient{}, err
	}
	return ingredient, nil
}

// UpdateByOwner replaces the matching record wholesale, keeping id and owner.
func (r *IngredientRepository) UpdateByOwner(id, userID int, replacement models.Ingredient) (models.Ingredient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, ing := range r.ingredients {
		if ing.ID == id && ing.UserID == userID {
			replacement.ID = id
			replacement.UserID = userID
			r.ingredients[i] = replacement
			if err := r.persist(); err != nil {
				return models.Ingredient{}, err
			}
			return replacement, nil
		}
	}
	return models.Ingredient{}, ErrNotFound
}

func (r *IngredientRepository) DeleteByOwner(id, userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, ing := range r.ingredients {
		if ing.ID == id && ing.UserID == userID {
			r.ingredients = append(r.ingredients[:i], r.ingredients[i+1:]...)
			return r.persist()
		}
	}
	return ErrNotFound
}
