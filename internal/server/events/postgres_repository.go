package events

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"calendard/internal/common"
	"calendard/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, event *Event) (*Event, error) {

	query :=
		`INSERT INTO events (id, owner_id, name, start_ts, end_ts, description)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query,
		event.ID, event.OwnerID, event.Name, event.Start, event.End, event.Description)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return event, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Event, error) {

	query :=
		`SELECT id, owner_id, name, start_ts, end_ts, description FROM events
		 WHERE id = $1
		 `

	event := &Event{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&event.ID, &event.OwnerID, &event.Name, &event.Start, &event.End, &event.Description)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return event, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Event, error) {

	query :=
		`SELECT id, owner_id, name, start_ts, end_ts, description FROM events
		 WHERE owner_id = $1
		 ORDER BY start_ts, id
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	result := make([]*Event, 0)
	for rows.Next() {
		event := &Event{}
		if err := rows.Scan(&event.ID, &event.OwnerID, &event.Name, &event.Start, &event.End, &event.Description); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		result = append(result, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading rows: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Replace(ctx context.Context, event *Event) error {

	query :=
		`UPDATE events SET name = $2, start_ts = $3, end_ts = $4, description = $5
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		event.ID, event.Name, event.Start, event.End, event.Description)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading result: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {

	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading result: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}
