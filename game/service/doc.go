// Package service defines the read-model service layer for the bazaar
// multiplayer server.
//
// RoomService is the interface the REST API and the MCP surface consume,
// keeping transports decoupled from the registry implementation. It is
// read-only by design: rooms are created and mutated exclusively through the
// realtime WebSocket protocol, where join/leave semantics and empty-room
// garbage collection are enforced.
package service
