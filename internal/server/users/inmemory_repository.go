package users

import (
	"context"
	"fmt"
	"sync"

	"github.com/akosarev/jokesapi/internal/shared"
)

// InMemoryRepository is a map-backed Repository used in tests and local runs.
// It mirrors the store contract: ids are assigned sequentially, usernames are
// unique, and results come back ordered by id.
type InMemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  []User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Find(ctx context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []User
	for _, u := range r.items {
		result = append(result, User{ID: u.ID, Username: u.Username})
	}
	return result, nil
}

func (r *InMemoryRepository) FindBy(ctx context.Context, f Filter) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []User
	for _, u := range r.items {
		if u.Username == f.Username {
			result = append(result, u)
		}
	}
	return result, nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id int64) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.items {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *InMemoryRepository) Add(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.items {
		if u.Username == user.Username {
			return nil, fmt.Errorf("duplicate username: %s", user.Username)
		}
	}

	stored := User{ID: r.nextID, Username: user.Username, Password: user.Password}
	r.nextID++
	r.items = append(r.items, stored)

	return &stored, nil
}

// Truncate empties the store. Test helper.
func (r *InMemoryRepository) Truncate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
	r.nextID = 1
}
