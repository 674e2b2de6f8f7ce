package users

import "context"

// Filter narrows FindBy results. Only username filtering is used by this core.
type Filter struct {
	Username string
}

// Repository is the abstract user store. Result slices are ordered by id.
// Username uniqueness is enforced by the store; violations surface as errors
// from Add.
type Repository interface {
	// Find lists all users (id and username only), ordered by id.
	Find(ctx context.Context) ([]User, error)

	// FindBy returns users matching the filter, ordered by id.
	FindBy(ctx context.Context, f Filter) ([]User, error)

	// FindByID returns the user with the given id, or shared.ErrNotFound.
	FindByID(ctx context.Context, id int64) (*User, error)

	// Add persists a new user and returns the stored record including the
	// generated id.
	Add(ctx context.Context, user *User) (*User, error)
}
