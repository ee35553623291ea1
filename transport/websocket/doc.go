// Package websocket provides the realtime transport for the bazaar
// multiplayer server.
//
// The package uses a hub-and-spoke model where a central Hub owns every
// client connection. Each connection is handled by a read and a write
// goroutine, while a single Run goroutine processes all inbound events and
// is the only caller of registry mutations. That single ownership makes
// check-then-broadcast sequences atomic without per-room locking, and it
// preserves per-sender event ordering: broadcasts triggered by one
// connection go out in the order its events arrived.
//
// Message Protocol:
//
// Frames are JSON envelopes in both directions:
//
//	{"event": "join_room", "data": {"roomCode": "AB12C"}}
//	{"event": "player_moved", "data": {"playerId": "...", "position": {"x": 610, "y": 300}}}
//
// Inbound events: create_room, join_room, player_move, player_emote,
// player_name, leave_room. Outbound events: connected, room_created,
// room_joined, room_error, player_joined, player_moved, player_emoted,
// player_renamed, player_left. Room-scoped updates are broadcast to every
// member of the room except the sender.
//
// Connection Lifecycle:
//
// 1. Client connects; the hub assigns a connection identity and sends it back
// 2. Client creates or joins a room by code
// 3. Position, emote, and name updates are fanned out to the rest of the room
// 4. leave_room returns the connection to the room-less state
// 5. Disconnection (including ping/pong timeout) runs the same cleanup
//
// Error Policy:
//
// Joining an unknown room yields a room_error reply to the requester only.
// Updates racing a disconnect are dropped silently; a live session prefers
// availability over strict error reporting, and no event handling failure is
// fatal to the process or visible to other rooms.
package websocket
