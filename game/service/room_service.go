package service

import (
	"context"

	"github.com/voicebazaar/bazaar-server/game/room"
)

// RoomService defines the read model consumed by the REST API and the MCP
// surface. Room mutation happens exclusively over the realtime protocol, so
// this interface is deliberately read-only.
type RoomService interface {
	// Room inspection
	ListRooms(ctx context.Context) ([]*room.Info, error)
	GetRoom(ctx context.Context, code string) (*room.Info, error)

	// Server stats
	Stats(ctx context.Context) (*StatsInfo, error)
}
