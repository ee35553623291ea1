// Package room provides the session registry for the bazaar multiplayer server.
//
// The room package implements:
//   - Thread-safe storage of live rooms and their players
//   - Unique, human-typeable room code generation
//   - Player attribute updates (position, username, emote)
//   - Automatic garbage collection of empty rooms
//
// Core Types:
//
// Registry is the single owner of all room state. Room and Player are never
// handed out directly; read paths return Info snapshots so that callers can
// not alias maps that are mutated under the registry lock.
//
// Room Codes:
//
// Rooms use 5-character codes drawn from uppercase letters and digits, so a
// player can read one out loud to a friend. Codes are generated with
// cryptographic randomness and regenerated on collision. Uniqueness is only
// guaranteed among live rooms; once a room is deleted its code may come back.
//
// Lifecycle:
//
// A room is created on demand by a connecting client and deleted the instant
// its last player leaves or disconnects. There is no explicit close operation
// and nothing is persisted across server restarts.
//
// Failure Policy:
//
// Mutating operations on a missing room or player degrade to no-ops rather
// than errors. Live sessions race movement updates against disconnects all
// the time; a stale update must never crash or resurrect state.
//
// Usage:
//
//	registry := room.NewRegistry()
//
//	code := registry.CreateRoom(hostID)
//	players, err := registry.AddPlayer(code, connID, room.Position{X: 600, Y: 300}, "")
//	if err != nil {
//		// room disappeared between lookup and join
//	}
//
//	registry.UpdatePosition(code, connID, room.Position{X: 610, Y: 300})
//	registry.RemovePlayer(code, connID)
package room
