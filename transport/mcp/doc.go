// Package mcp exposes the bazaar multiplayer server over the Model Context
// Protocol so that the voice agent can inspect live rooms.
//
// The package follows a thin-client design: every tool call is proxied to
// the REST API rather than touching the registry directly, so the MCP
// surface stays consistent with what HTTP consumers see regardless of which
// process hosts it.
//
// Tools:
//   - list_rooms: live rooms with player counts
//   - get_room: one room's full player state
//   - server_stats: totals and uptime
//
// All tools are read-only. Room creation and player updates belong to the
// players' own realtime connections.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:3002")
//	server.ServeStdio(client.GetMCPServer())
package mcp
