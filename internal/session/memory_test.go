package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/agent-console/internal/domain"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	session := &domain.ConsoleSession{
		ID:       "abc",
		AgentID:  1,
		Customer: domain.CustomerSnapshot{ID: 1, Name: "John Doe"},
	}
	require.NoError(t, store.Put(ctx, session))

	loaded, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, session.Customer, loaded.Customer)

	// The store hands out copies.
	loaded.Verified = true
	reloaded, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, reloaded.Verified)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &domain.ConsoleSession{ID: "abc"}))
	require.NoError(t, store.Delete(ctx, "abc"))

	_, err := store.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, store.Delete(ctx, "abc"), "deleting a missing session is a no-op")
}
