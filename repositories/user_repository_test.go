package repositories

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marustas/MealMasterServer/models"
	"github.com/marustas/MealMasterServer/storage"
)

func newUserRepo(t *testing.T) (*UserRepository, storage.Store) {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	repo, err := NewUserRepository(store)
	require.NoError(t, err)
	return repo, store
}

func TestUserIDsAreMonotonic(t *testing.T) {
	repo, _ := newUserRepo(t)

	first, err := repo.Create(models.User{Email: "a@x.com", Role: models.RoleUser})
	require.NoError(t, err)
	second, err := repo.Create(models.User{Email: "b@x.com", Role: models.RoleUser})
	require.NoError(t, err)

	require.Equal(t, 1, first.ID)
	require.Equal(t, 2, second.ID)
}

func TestUserLookups(t *testing.T) {
	repo, _ := newUserRepo(t)

	created, err := repo.Create(models.User{Email: "a@x.com"})
	require.NoError(t, err)

	byEmail, err := repo.FindByEmail("a@x.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, byEmail.ID)

	byID, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", byID.Email)

	_, err = repo.FindByEmail("missing@x.com")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = repo.FindByID(999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSubscriptionPromotesRole(t *testing.T) {
	repo, _ := newUserRepo(t)

	created, err := repo.Create(models.User{Email: "a@x.com", Role: models.RoleUser})
	require.NoError(t, err)

	payload := json.RawMessage(`{"endpoint":"https://push.example.com/abc"}`)
	updated, err := repo.SetSubscription(created.ID, payload)
	require.NoError(t, err)
	require.Equal(t, models.RoleSubscribed, updated.Role)
	require.JSONEq(t, string(payload), string(updated.Subscription))

	_, err = repo.SetSubscription(999, payload)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUserWriteThroughSurvivesReload(t *testing.T) {
	repo, store := newUserRepo(t)

	created, err := repo.Create(models.User{Email: "a@x.com", Password: "hash"})
	require.NoError(t, err)
	_, err = repo.SetCalorieGoal(created.ID, 2200)
	require.NoError(t, err)

	reloaded, err := NewUserRepository(store)
	require.NoError(t, err)
	got, err := reloaded.FindByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, 2200.0, got.CalorieGoal)
	require.Equal(t, "hash", got.Password) // the hash persists through storage
}
