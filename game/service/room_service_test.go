package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voicebazaar/bazaar-server/game/room"
)

func TestRoomService(t *testing.T) {
	registry := room.NewRegistry()
	svc := NewRoomService(registry)
	ctx := context.Background()

	rooms, err := svc.ListRooms(ctx)
	require.NoError(t, err)
	assert.Empty(t, rooms)

	code := registry.CreateRoom("host-1")
	_, err = registry.AddPlayer(code, "host-1", room.Position{X: 600, Y: 300}, "")
	require.NoError(t, err)

	rooms, err = svc.ListRooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, code, rooms[0].Code)

	info, err := svc.GetRoom(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, 1, info.PlayerCount)
	assert.Contains(t, info.Players, "host-1")

	_, err = svc.GetRoom(ctx, "ZZZZZ")
	assert.ErrorIs(t, err, room.ErrRoomNotFound)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Rooms)
	assert.Equal(t, 1, stats.Players)
	assert.False(t, stats.StartedAt.IsZero())
}
