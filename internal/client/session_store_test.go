package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coopkiosk/backend/internal/models"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "nested", "session.json"))

	snap := Snapshot{
		Member: models.Member{
			ID:       7,
			FullName: "Juan Dela Cruz",
			Balance:  money(t, "150.00"),
			IsActive: true,
		},
		SessionID: "sid-123",
	}
	require.NoError(t, store.Set(snap))

	got, ok, err := store.Get()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 7, got.Member.ID)
	assert.Equal(t, "Juan Dela Cruz", got.Member.FullName)
	assert.True(t, got.Member.Balance.Equal(money(t, "150.00")))
	assert.Equal(t, "sid-123", got.SessionID)
	assert.False(t, got.SavedAt.IsZero(), "Set must stamp the save time")
}

func TestSessionStoreAbsentIsLoggedOut(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "session.json"))

	_, ok, err := store.Get()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionStoreClearIsIdempotent(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "session.json"))

	require.NoError(t, store.Clear())

	require.NoError(t, store.Set(Snapshot{SessionID: "sid-1"}))
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	_, ok, err := store.Get()
	require.NoError(t, err)
	assert.False(t, ok)
}
