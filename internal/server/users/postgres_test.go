package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"calendard/internal/common"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func userColumns() []string {
	return []string{"id", "username", "token", "password_hash", "salt", "friends", "created_at"}
}

func TestPostgresRepository_Create(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	repo, err := NewPostgresRepository(db)
	require.NoError(t, err)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("u1", "alice", "t1", []byte("hash"), []byte("salt"), []byte(`["f1"]`)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	user, err := repo.Create(context.Background(), &User{
		ID: "u1", Username: "alice", Token: "t1",
		PasswordHash: []byte("hash"), Salt: []byte("salt"), Friends: []string{"f1"},
	})
	require.NoError(t, err)
	assert.Equal(t, now, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetByToken(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	repo, err := NewPostgresRepository(db)
	require.NoError(t, err)

	rows := sqlmock.NewRows(userColumns()).
		AddRow("u1", "alice", "t1", []byte("hash"), []byte("salt"), []byte(`[]`), time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("WHERE token = $1")).
		WithArgs("t1").
		WillReturnRows(rows)

	user, err := repo.GetByToken(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Empty(t, user.Friends)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetByUsername_NotFound(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	repo, err := NewPostgresRepository(db)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE username = $1")).
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestPostgresRepository_GetByID_QueryError(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	repo, err := NewPostgresRepository(db)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs("u1").
		WillReturnError(errors.New("connection refused"))

	_, err = repo.GetByID(context.Background(), "u1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrNotFound)
}
