package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
)

func TestMemoryStoreRollingWindow(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for i := 1; i <= 12; i++ {
		err := s.Append(ctx, "user1", fmt.Sprintf("query %d", i))
		assert.NoError(t, err)
	}

	history, err := s.History(ctx, "user1")
	assert.NoError(t, err)
	assert.Equal(t, 10, len(history))
	assert.Equal(t, "query 3", history[0])
	assert.Equal(t, "query 12", history[9])
}

func TestMemoryStoreIsolation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, s.Append(ctx, "user1", "hello"))

	history, err := s.History(ctx, "user2")
	assert.NoError(t, err)
	assert.Empty(t, history)

	// History hands out a copy; mutating it must not leak back.
	history, _ = s.History(ctx, "user1")
	history[0] = "changed"
	history, _ = s.History(ctx, "user1")
	assert.Equal(t, "hello", history[0])
}

func TestRedisStoreRollingWindow(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	s, err := NewRedisStore(ctx, mr.Addr(), "", 0)
	assert.NoError(t, err)
	defer s.Close()

	for i := 1; i <= 12; i++ {
		assert.NoError(t, s.Append(ctx, "user1", fmt.Sprintf("query %d", i)))
	}

	history, err := s.History(ctx, "user1")
	assert.NoError(t, err)
	assert.Equal(t, 10, len(history))
	assert.Equal(t, "query 3", history[0])
	assert.Equal(t, "query 12", history[9])

	assert.Greater(t, mr.TTL("conversation:user1").Seconds(), 0.0)
}

func TestRedisStoreConnectFailure(t *testing.T) {
	_, err := NewRedisStore(context.Background(), "127.0.0.1:1", "", 0)

	assert.Error(t, err)
}
