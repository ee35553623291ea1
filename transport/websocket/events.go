package websocket

import (
	"encoding/json"

	"github.com/voicebazaar/bazaar-server/game/room"
)

// Inbound event names (client -> server).
const (
	EventCreateRoom  = "create_room"
	EventJoinRoom    = "join_room"
	EventPlayerMove  = "player_move"
	EventPlayerEmote = "player_emote"
	EventPlayerName  = "player_name"
	EventLeaveRoom   = "leave_room"
)

// Outbound event names (server -> client).
const (
	EventConnected     = "connected"
	EventRoomCreated   = "room_created"
	EventRoomJoined    = "room_joined"
	EventRoomError     = "room_error"
	EventPlayerJoined  = "player_joined"
	EventPlayerMoved   = "player_moved"
	EventPlayerEmoted  = "player_emoted"
	EventPlayerRenamed = "player_renamed"
	EventPlayerLeft    = "player_left"
)

// Envelope is the wire frame used in both directions: a named event plus a
// structured payload.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Inbound payloads.

type JoinRoomRequest struct {
	RoomCode string `json:"roomCode"`
}

type MoveRequest struct {
	RoomCode string        `json:"roomCode"`
	Position room.Position `json:"position"`
}

type EmoteRequest struct {
	RoomCode string  `json:"roomCode"`
	Emote    *string `json:"emote"`
}

type NameRequest struct {
	RoomCode string `json:"roomCode"`
	Username string `json:"username"`
}

type LeaveRoomRequest struct {
	RoomCode string `json:"roomCode"`
}

// Outbound payloads.

type ConnectedPayload struct {
	ConnectionID string `json:"connectionId"`
}

type RoomCreatedPayload struct {
	RoomCode string `json:"roomCode"`
}

type RoomJoinedPayload struct {
	RoomCode string                  `json:"roomCode"`
	Players  map[string]*room.Player `json:"players"`
}

type RoomErrorPayload struct {
	Message string `json:"message"`
}

type PlayerJoinedPayload struct {
	Player *room.Player `json:"player"`
}

type PlayerMovedPayload struct {
	PlayerID string        `json:"playerId"`
	Position room.Position `json:"position"`
}

type PlayerEmotedPayload struct {
	PlayerID string  `json:"playerId"`
	Emote    *string `json:"emote"`
}

type PlayerRenamedPayload struct {
	PlayerID string `json:"playerId"`
	Username string `json:"username"`
}

type PlayerLeftPayload struct {
	PlayerID string `json:"playerId"`
}

// marshalEvent encodes a payload into a wire frame.
func marshalEvent(event string, payload interface{}) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Event: event, Data: data})
}
