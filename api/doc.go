// Package api provides the HTTP surface for the bazaar multiplayer server.
//
// Endpoints:
//
// Room inspection:
//   - GET /api/rooms - List live rooms (sort, order, limit query params)
//   - GET /api/rooms/{code} - Get one room including its players
//   - GET /api/stats - Room/player counts and uptime
//
// Realtime:
//   - GET /ws - WebSocket upgrade onto the hub
//
// Liveness:
//   - GET / - Plain-text liveness line
//   - GET /healthz - JSON health status
//
// The API is read-only with respect to rooms: rooms only come into existence
// through the realtime protocol, because a room created out-of-band with no
// connected players would never be garbage collected by the empty-room rule.
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "Room AB12C not found"
//	}
package api
