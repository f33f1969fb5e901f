package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marustas/MealMasterServer/models"
	"github.com/marustas/MealMasterServer/storage"
)

func newMealRepo(t *testing.T) *MealRepository {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	repo, err := NewMealRepository(store)
	require.NoError(t, err)
	return repo
}

func TestMealSlotsAreKeyedPerUser(t *testing.T) {
	repo := newMealRepo(t)

	_, err := repo.Put(1, models.SectionBreakfast, models.Recipe{ID: 10, Title: "Porridge"})
	require.NoError(t, err)
	_, err = repo.Put(2, models.SectionBreakfast, models.Recipe{ID: 20, Title: "Omelette"})
	require.NoError(t, err)

	// Both users keep their own breakfast slot.
	userOne := repo.ListByOwner(1)
	require.Len(t, userOne, 1)
	require.Equal(t, "Porridge", userOne[0].Recipe.Title)

	userTwo := repo.ListByOwner(2)
	require.Len(t, userTwo, 1)
	require.Equal(t, "Omelette", userTwo[0].Recipe.Title)
}

func TestMealPutOverwritesSection(t *testing.T) {
	repo := newMealRepo(t)

	_, err := repo.Put(1, models.SectionLunch, models.Recipe{ID: 10, Title: "Soup"})
	require.NoError(t, err)
	_, err = repo.Put(1, models.SectionLunch, models.Recipe{ID: 11, Title: "Salad"})
	require.NoError(t, err)

	slots := repo.ListByOwner(1)
	require.Len(t, slots, 1)
	require.Equal(t, "Salad", slots[0].Recipe.Title)
}

func TestMealDeleteScopedToOwner(t *testing.T) {
	repo := newMealRepo(t)

	_, err := repo.Put(1, models.SectionDinner, models.Recipe{ID: 10, Title: "Stew"})
	require.NoError(t, err)

	require.ErrorIs(t, repo.DeleteRecipe(2, 10), ErrNotFound)

	require.NoError(t, repo.DeleteRecipe(1, 10))
	require.ErrorIs(t, repo.DeleteRecipe(1, 10), ErrNotFound)
	require.Empty(t, repo.ListByOwner(1))
}
