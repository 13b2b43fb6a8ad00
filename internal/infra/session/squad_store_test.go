//go:build unit

package session_test

import (
	"context"
	"testing"

	"turfbook/internal/domain/squad"
	"turfbook/internal/infra"
	"turfbook/internal/infra/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSquad(t *testing.T) *squad.Squad {
	t.Helper()
	sq, err := squad.NewSquad("evt-2026-001", "Sunday Night League", "football", "Juhu Strikers", 5)
	require.NoError(t, err)
	return sq
}

func TestSquadStore_SaveAndFind(t *testing.T) {
	store := session.NewSquadStore()
	sq := newSquad(t)

	require.NoError(t, store.Save(context.Background(), sq))

	found, err := store.Find(context.Background(), sq.ID())
	require.NoError(t, err)
	assert.Same(t, sq, found)
}

func TestSquadStore_FindUnknown(t *testing.T) {
	store := session.NewSquadStore()

	_, err := store.Find(context.Background(), uuid.New())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestSquadStore_Delete(t *testing.T) {
	store := session.NewSquadStore()
	sq := newSquad(t)
	require.NoError(t, store.Save(context.Background(), sq))

	require.NoError(t, store.Delete(context.Background(), sq.ID()))

	_, err := store.Find(context.Background(), sq.ID())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestSquadStore_DeleteUnknown(t *testing.T) {
	store := session.NewSquadStore()

	err := store.Delete(context.Background(), uuid.New())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestSquadStore_SaveOverwrites(t *testing.T) {
	store := session.NewSquadStore()
	sq := newSquad(t)
	require.NoError(t, store.Save(context.Background(), sq))

	require.NoError(t, sq.Resize(7))
	require.NoError(t, store.Save(context.Background(), sq))

	found, err := store.Find(context.Background(), sq.ID())
	require.NoError(t, err)
	assert.Equal(t, 7, found.TargetSize())
}
