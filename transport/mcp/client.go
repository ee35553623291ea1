package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/voicebazaar/bazaar-server/game/room"
	"github.com/voicebazaar/bazaar-server/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Bazaar Multiplayer Server",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Bazaar Multiplayer Server - MCP Interface

This is a thin client that proxies all requests to the REST API server.

The server coordinates realtime multiplayer rooms for the bazaar game world.
Players connect over WebSocket, create or join rooms by 5-character code, and
see each other's position, name, and emote updates live.

AVAILABLE TOOLS:
- list_rooms: List all live rooms with player counts
- get_room: Get one room's full state including its players
- server_stats: Room/player totals and server uptime

All tools are read-only. Rooms are created and mutated exclusively by the
players' own realtime connections.`),
	)

	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_rooms",
		Description: "List all live rooms with their host and player count",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListRooms)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_room",
		Description: "Get the full state of one room, including every player's position, username and emote",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"room_code": map[string]interface{}{
					"type":        "string",
					"description": "5-character room code (uppercase letters and digits)",
				},
			},
			Required: []string{"room_code"},
		},
	}, c.handleGetRoom)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "server_stats",
		Description: "Get room/player totals and server uptime",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleServerStats)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// apiCall issues a request against the REST API and decodes the response.
func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleListRooms(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count int          `json:"count"`
		Rooms []*room.Info `json:"rooms"`
	}

	err := c.apiCall("GET", "/api/rooms", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Live Rooms (%d):\n\n", response.Count)
	for _, r := range response.Rooms {
		result += fmt.Sprintf("- %s (players: %d, created: %s)\n",
			r.Code, r.PlayerCount, r.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetRoom(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	roomCode, _ := args["room_code"].(string)

	var info room.Info
	err := c.apiCall("GET", fmt.Sprintf("/api/rooms/%s", roomCode), nil, &info)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatRoomInfo(&info)), nil
}

func (c *Client) handleServerStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var stats service.StatsInfo
	err := c.apiCall("GET", "/api/stats", nil, &stats)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Server Stats:\n- Rooms: %d\n- Players: %d\n- Uptime: %.0fs\n",
		stats.Rooms, stats.Players, stats.UptimeSec)
	return mcp.NewToolResultText(result), nil
}

// formatRoomInfo renders a room snapshot as readable text.
func formatRoomInfo(info *room.Info) string {
	result := fmt.Sprintf("Room %s\nHost: %s\nPlayers: %d\nCreated: %s\n",
		info.Code, info.HostID, info.PlayerCount, info.CreatedAt.Format(time.RFC3339))

	if len(info.Players) == 0 {
		return result
	}

	// Stable order for readability
	ids := make([]string, 0, len(info.Players))
	for id := range info.Players {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	result += "\n"
	for _, id := range ids {
		p := info.Players[id]
		emote := "none"
		if p.Emote != nil {
			emote = *p.Emote
		}
		result += fmt.Sprintf("- %s (%s) at (%.0f, %.0f), emote: %s\n",
			p.Username, p.ID, p.Position.X, p.Position.Y, emote)
	}
	return result
}
