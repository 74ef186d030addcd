package storage

import (
	"context"
	"database/sql"
	"errors"
)

// postgresStorage keeps values in the kv_blobs table created by the migration package.
// It uses database/sql with parameterized queries only.
type postgresStorage struct {
	db *sql.DB
}

// NewPostgres returns a Store backed by an already opened database.
func NewPostgres(db *sql.DB) Store {
	return &postgresStorage{db: db}
}

func (p *postgresStorage) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT value FROM kv_blobs WHERE key = $1`
	var value []byte
	if err := p.db.QueryRowContext(ctx, q, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

func (p *postgresStorage) Put(ctx context.Context, key string, value []byte) error {
	const q = `
		INSERT INTO kv_blobs (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`
	_, err := p.db.ExecContext(ctx, q, key, value)
	return err
}

func (p *postgresStorage) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}
