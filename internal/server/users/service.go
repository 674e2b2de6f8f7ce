package users

import (
	"context"
	"fmt"
	"time"

	"github.com/akosarev/jokesapi/internal/server/auth"
	"github.com/akosarev/jokesapi/internal/server/config"
	"github.com/akosarev/jokesapi/internal/shared"
)

// Service orchestrates credential validation, hashing, the user store and
// token issuance for the register and login flows.
type Service struct {
	repo          Repository
	hasher        auth.PasswordHasher
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewService(repo Repository, hasher auth.PasswordHasher, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		hasher:        hasher,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Register validates the credentials, hashes the password and persists the
// user. The returned record is the stored one, generated id and hash included.
// Invalid credentials never reach the store.
func (s *Service) Register(ctx context.Context, creds Credentials) (*User, error) {

	if !creds.IsValid() {
		return nil, shared.ErrMissingCredentials
	}

	hash, err := s.hasher.Hash(creds.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.repo.Add(ctx, &User{Username: creds.Username, Password: hash})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login validates the credentials, looks the user up by username and checks
// the password against the stored hash. On success it returns the user and a
// signed token. Unknown usernames and wrong passwords are indistinguishable:
// both yield shared.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, creds Credentials) (*User, string, error) {

	if !creds.IsValid() {
		return nil, "", shared.ErrMissingCredentials
	}

	matches, err := s.repo.FindBy(ctx, Filter{Username: creds.Username})
	if err != nil {
		return nil, "", fmt.Errorf("error looking up user: %w", err)
	}

	if len(matches) == 0 {
		return nil, "", shared.ErrInvalidCredentials
	}

	user := matches[0]
	if !s.hasher.Verify(creds.Password, user.Password) {
		return nil, "", shared.ErrInvalidCredentials
	}

	token, err := auth.IssueToken(user.ID, user.Username, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, "", fmt.Errorf("error issuing token: %w", err)
	}

	return &user, token, nil
}

// List returns all users, id and username only, ordered by id.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.Find(ctx)
}
