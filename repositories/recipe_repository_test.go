package repositories

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marustas/MealMasterServer/models"
	"github.com/marustas/MealMasterServer/storage"
)

func newRecipeRepo(t *testing.T) *RecipeRepository {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	repo, err := NewRecipeRepository(store)
	require.NoError(t, err)
	return repo
}

func seedRecipes(t *testing.T, repo *RecipeRepository, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		section := "breakfast"
		if i%2 == 0 {
			section = "dinner"
		}
		_, err := repo.Create(models.Recipe{Title: fmt.Sprintf("Recipe %02d", i), Section: section})
		require.NoError(t, err)
	}
}

func TestRecipeListPagination(t *testing.T) {
	repo := newRecipeRepo(t)
	seedRecipes(t, repo, 10)

	page := repo.List("", nil, 2, 6)
	require.Len(t, page.Items, 4) // items 7-10
	require.Equal(t, 10, page.TotalItems)
	require.Equal(t, 2, page.CurrentPage)
	require.Equal(t, "Recipe 07", page.Items[0].Title)
}

func TestRecipeListDefaultsAndOutOfRangePage(t *testing.T) {
	repo := newRecipeRepo(t)
	seedRecipes(t, repo, 10)

	first := repo.List("", nil, 0, 0)
	require.Len(t, first.Items, DefaultPageSize)
	require.Equal(t, 1, first.CurrentPage)

	empty := repo.List("", nil, 99, 6)
	require.Empty(t, empty.Items)
	require.Equal(t, 10, empty.TotalItems)
}

func TestRecipeListQueryResetsPage(t *testing.T) {
	repo := newRecipeRepo(t)
	seedRecipes(t, repo, 10)

	page := repo.List("recipe", nil, 2, 6)
	require.Equal(t, 1, page.CurrentPage)
	require.Len(t, page.Items, 6)
	require.Equal(t, 10, page.TotalItems)
}

func TestRecipeListSectionFilter(t *testing.T) {
	repo := newRecipeRepo(t)
	seedRecipes(t, repo, 10)

	dinners := repo.List("", []string{"dinner"}, 1, 10)
	require.Equal(t, 5, dinners.TotalItems)
	for _, rec := range dinners.Items {
		require.Equal(t, "dinner", rec.Section)
	}
}

func TestRecipeUpdateReplacesAndDeleteRemoves(t *testing.T) {
	repo := newRecipeRepo(t)
	created, err := repo.Create(models.Recipe{Title: "Porridge", Section: "breakfast"})
	require.NoError(t, err)

	updated, err := repo.Update(created.ID, models.Recipe{Title: "Overnight Oats"})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "Overnight Oats", updated.Title)
	require.Empty(t, updated.Section) // full replacement

	require.NoError(t, repo.Delete(created.ID))
	require.ErrorIs(t, repo.Delete(created.ID), ErrNotFound)
	_, err = repo.Get(created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
