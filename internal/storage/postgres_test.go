package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStorage_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := NewPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT value FROM kv_blobs WHERE key = \\$1").
			WithArgs("hub-state").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"revision":3}`)))

		got, err := s.Get(ctx, "hub-state")
		assert.NoError(t, err)
		assert.JSONEq(t, `{"revision":3}`, string(got))
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT value FROM kv_blobs").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		got, err := s.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, got)
	})

	t.Run("driver error", func(t *testing.T) {
		mock.ExpectQuery("SELECT value FROM kv_blobs").
			WithArgs("k").
			WillReturnError(errors.New("conn reset"))

		_, err := s.Get(ctx, "k")
		assert.EqualError(t, err, "conn reset")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_Put(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := NewPostgres(db)

	mock.ExpectExec("INSERT INTO kv_blobs (.+) ON CONFLICT \\(key\\) DO UPDATE").
		WithArgs("submissions", []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = s.Put(context.Background(), "submissions", []byte(`[]`))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("down"))

	err = NewPostgres(db).Ping(context.Background())
	assert.EqualError(t, err, "down")
	assert.NoError(t, mock.ExpectationsWereMet())
}
