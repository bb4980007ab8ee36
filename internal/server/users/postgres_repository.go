package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"calendard/internal/common"
	"calendard/internal/dbx"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {

	friends, err := json.Marshal(user.Friends)
	if err != nil {
		return nil, fmt.Errorf("error encoding friends: %w", err)
	}

	query :=
		`INSERT INTO users (id, username, token, password_hash, salt, friends)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		user.ID, user.Username, user.Token, user.PasswordHash, user.Salt, friends).Scan(&user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	return r.getOne(ctx, "username", username)
}

func (r *PostgresRepository) GetByToken(ctx context.Context, token string) (*User, error) {
	return r.getOne(ctx, "token", token)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*User, error) {
	return r.getOne(ctx, "id", id)
}

func (r *PostgresRepository) getOne(ctx context.Context, column, value string) (*User, error) {
	query := fmt.Sprintf(
		`SELECT id, username, token, password_hash, salt, friends, created_at FROM users
		 WHERE %s = $1
		 `, column)

	user := &User{}
	var friends []byte

	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&user.ID, &user.Username, &user.Token, &user.PasswordHash, &user.Salt, &friends, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	if err := json.Unmarshal(friends, &user.Friends); err != nil {
		return nil, fmt.Errorf("error decoding friends: %w", err)
	}

	return user, nil
}
