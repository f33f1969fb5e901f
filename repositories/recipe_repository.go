package repositories

import (
	"strings"
	"sync"

	"github.com/marustas/MealMasterServer/models"
	"github.com/marustas/MealMasterServer/storage"
)

const recipesCollection = "recipes"

const DefaultPageSize = 6

// RecipePage is one page of the filtered recipe list.
type RecipePage struct {
	Items       []models.Recipe `json:"items"`
	TotalItems  int             `json:"totalItems"`
	CurrentPage int             `json:"currentPage"`
}

// RecipeRepository holds the global recipe catalog. Recipes carry no owner.
type RecipeRepository struct {
	mu      sync.RWMutex
	store   storage.Store
	recipes []models.Recipe
}

func NewRecipeRepository(store storage.Store) (*RecipeRepository, error) {
	r := &RecipeRepository{store: store}
	if err := store.Load(recipesCollection, &r.recipes); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RecipeRepository) persist() error {
	return r.store.Save(recipesCollection, r.recipes)
}

// List filters by title substring (case-insensitive) and section membership,
// then paginates. Pages are 1-indexed; a text query resets the page to 1; a
// page past the end yields an empty list rather than an error.
func (r *RecipeRepository) List(query string, sections []string, page, perPage int) RecipePage {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	if query != "" {
		page = 1
	}

	q := strings.ToLower(query)
	filtered := make([]models.Recipe, 0)
	for _, rec := range r.recipes {
		if q != "" && !strings.Contains(strings.ToLower(rec.Title), q) {
			continue
		}
		if len(sections) > 0 && !containsString(sections, rec.Section) {
			continue
		}
		filtered = append(filtered, rec)
	}

	total := len(filtered)
	start := (page - 1) * perPage
	end := page * perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return RecipePage{
		Items:       filtered[start:end],
		TotalItems:  total,
		CurrentPage: page,
	}
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func (r *RecipeRepository) Get(id int) (models.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.recipes {
		if rec.ID == id {
			return rec, nil
		}
	}
	return models.Recipe{}, ErrNotFound
}

func (r *RecipeRepository) Create(recipe models.Recipe) (models.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	max := 0
	for _, rec := range r.recipes {
		if rec.ID > max {
			max = rec.ID
		}
	}
	recipe.ID = max + 1
	r.recipes = append(r.recipes, recipe)
	if err := r.persist(); err != nil {
		return models.Recipe{}, err
	}
	return recipe, nil
}

// Update replaces the matching recipe wholesale, keeping its id.
func (r *RecipeRepository) Update(id int, replacement models.Recipe) (models.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rec := range r.recipes {
		if rec.ID == id {
			replacement.ID = id
			r.recipes[i] = replacement
			if err := r.persist(); err != nil {
				return models.Recipe{}, err
			}
			return replacement, nil
		}
	}
	return models.Recipe{}, ErrNotFound
}

func (r *RecipeRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rec := range r.recipes {
		if rec.ID == id {
			r.recipes = append(r.recipes[:i], r.recipes[i+1:]...)
			return r.persist()
		}
	}
	return ErrNotFound
}
