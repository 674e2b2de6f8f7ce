package db

import (
	"context"
	"database/sql"

	"github.com/akosarev/jokesapi/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
}
