package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/akosarev/jokesapi/internal/shared"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestFind_OrderedByID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*username\s+FROM\s+users\s+ORDER\s+BY\s+id\s*$`

	rows := sqlmock.NewRows([]string{"id", "username"}).
		AddRow(1, "alice").
		AddRow(2, "bob")
	mock.ExpectQuery(q).WillReturnRows(rows)

	got, err := repo.Find(context.Background())
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if len(got) != 2 || got[0].Username != "alice" || got[1].ID != 2 {
		t.Fatalf("unexpected users: %+v", got)
	}
	if got[0].Password != "" {
		t.Fatalf("Find must not return password hashes: %+v", got[0])
	}
}

func TestFindBy_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*username,\s*password\s+FROM\s+users\s+WHERE\s+username\s*=\s*\$1\s+ORDER\s+BY\s+id\s*$`

	rows := sqlmock.NewRows([]string{"id", "username", "password"}).
		AddRow(7, "alice", "$2a$08$hash")
	mock.ExpectQuery(q).WithArgs("alice").WillReturnRows(rows)

	got, err := repo.FindBy(context.Background(), Filter{Username: "alice"})
	if err != nil {
		t.Fatalf("FindBy error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 7 || got[0].Password != "$2a$08$hash" {
		t.Fatalf("unexpected users: %+v", got)
	}
}

func TestFindBy_NoMatches(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*username,\s*password\s+FROM\s+users\s+WHERE\s+username\s*=\s*\$1\s+ORDER\s+BY\s+id\s*$`

	mock.ExpectQuery(q).WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password"}))

	got, err := repo.FindBy(context.Background(), Filter{Username: "ghost"})
	if err != nil {
		t.Fatalf("FindBy error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

func TestFindByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*username,\s*password\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectQuery(q).WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 99)
	if !errors.Is(err, shared.ErrNotFound) {
		t.Fatalf("want shared.ErrNotFound, got %v", err)
	}
}

func TestAdd_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	insert := `(?s)^INSERT\s+INTO\s+users\s*\(username,\s*password\)\s*VALUES\s*\(\$1,\s*\$2\)\s*RETURNING\s+id\s*$`
	selectByID := `(?s)^SELECT\s+id,\s*username,\s*password\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectQuery(insert).
		WithArgs("alice", "$2a$08$hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectQuery(selectByID).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password"}).
			AddRow(42, "alice", "$2a$08$hash"))

	got, err := repo.Add(context.Background(), &User{Username: "alice", Password: "$2a$08$hash"})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if got.ID != 42 || got.Username != "alice" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAdd_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	insert := `(?s)^INSERT\s+INTO\s+users\s*\(username,\s*password\)\s*VALUES\s*\(\$1,\s*\$2\)\s*RETURNING\s+id\s*$`

	mock.ExpectQuery(insert).
		WithArgs("alice", "$2a$08$hash").
		WillReturnError(errors.New(`duplicate key value violates unique constraint "users_username_key"`))

	_, err := repo.Add(context.Background(), &User{Username: "alice", Password: "$2a$08$hash"})
	if err == nil || !regexp.MustCompile(`duplicate key value`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped constraint error, got %v", err)
	}
}
