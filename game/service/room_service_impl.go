package service

import (
	"context"
	"time"

	"github.com/voicebazaar/bazaar-server/game/room"
)

// roomService implements RoomService on top of the room registry.
type roomService struct {
	registry  *room.Registry
	startedAt time.Time
}

// NewRoomService creates a RoomService backed by the given registry.
func NewRoomService(registry *room.Registry) RoomService {
	return &roomService{
		registry:  registry,
		startedAt: time.Now(),
	}
}

func (s *roomService) ListRooms(ctx context.Context) ([]*room.Info, error) {
	return s.registry.List(), nil
}

func (s *roomService) GetRoom(ctx context.Context, code string) (*room.Info, error) {
	return s.registry.Get(code)
}

func (s *roomService) Stats(ctx context.Context) (*StatsInfo, error) {
	now := time.Now()
	return &StatsInfo{
		Rooms:     s.registry.Count(),
		Players:   s.registry.PlayerCount(),
		StartedAt: s.startedAt,
		UptimeSec: now.Sub(s.startedAt).Seconds(),
	}, nil
}
