package repositories

import (
	"encoding/json"
	"sync"

	"github.com/marustas/MealMasterServer/models"
	"github.com/marustas/MealMasterServer/storage"
)

const usersCollection = "users"

// UserRepository holds the user collection in memory and writes it through to
// the store on every mutation. Users are never deleted.
type UserRepository struct {
	mu    sync.RWMutex
	store storage.Store
	users []models.User
}

func NewUserRepository(store storage.Store) (*UserRepository, error) {
	r := &UserRepository{store: store}
	if err := store.Load(usersCollection, &r.users); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *UserRepository) persist() error {
	return r.store.Save(usersCollection, r.users)
}

// Create assigns the next monotonic identifier and appends the user.
func (r *UserRepository) Create(user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = r.nextID()
	r.users = append(r.users, user)
	if err := r.persist(); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) nextID() int {
	max := 0
	for _, u := range r.users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (r *UserRepository) FindByID(id int) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (r *UserRepository) SetCalorieGoal(id int, calories float64) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].CalorieGoal = calories
			if err := r.persist(); err != nil {
				return models.User{}, err
			}
			return r.users[i], nil
		}
	}
	return models.User{}, ErrNotFound
}

// SetSubscription stores the opaque subscription payload and promotes the user
// to the subscribed role.
func (r *UserRepository) SetSubscription(id int, subscription json.RawMessage) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].Subscription = subscription
			r.users[i].Role = models.RoleSubscribed
			if err := r.persist(); err != nil {
				return models.User{}, err
			}
			return r.users[i], nil
		}
	}
	return models.User{}, ErrNotFound
}
