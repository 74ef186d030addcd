package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campushub/internal/config"
)

func TestRedisStorage(t *testing.T) {
	srv := miniredis.RunT(t)

	client, err := NewRedisClient(config.RedisConfig{Addr: srv.Addr()})
	require.NoError(t, err)
	defer client.Close()

	s := NewRedis(client, "campushub:")
	ctx := context.Background()

	_, err = s.Get(ctx, "calendar-cache")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(ctx, "calendar-cache", []byte(`{"events":[]}`)))

	got, err := s.Get(ctx, "calendar-cache")
	require.NoError(t, err)
	assert.Equal(t, `{"events":[]}`, string(got))

	raw, err := srv.Get("campushub:calendar-cache")
	require.NoError(t, err)
	assert.Equal(t, `{"events":[]}`, raw)
	assert.Zero(t, srv.TTL("campushub:calendar-cache"))

	assert.NoError(t, s.Ping(ctx))
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()

	client, err := NewRedisClient(config.RedisConfig{Addr: addr})
	assert.Error(t, err)
	assert.Nil(t, client)
}
