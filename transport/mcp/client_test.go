package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/voicebazaar/bazaar-server/game/room"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:3002"
	client := NewClient(baseURL)

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.baseURL != baseURL {
		t.Errorf("Expected baseURL %s, got %s", baseURL, client.baseURL)
	}

	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}

	if client.mcpServer == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"rooms":   2,
			"players": 5,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var result map[string]interface{}
	if err := client.apiCall("GET", "/api/stats", nil, &result); err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}

	if result["rooms"] != float64(2) {
		t.Errorf("Expected 2 rooms, got %v", result["rooms"])
	}
}

func TestClient_apiCallError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Room ZZZZZ not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api/rooms/ZZZZZ", nil, nil)
	if err == nil {
		t.Fatal("Expected error for 404 response")
	}
	if err.Error() != "Room ZZZZZ not found" {
		t.Errorf("Expected API error message to surface, got %q", err.Error())
	}
}

func TestHandleListRooms(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/rooms" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"count": 1,
			"rooms": []*room.Info{
				{Code: "AB12C", HostID: "host-1", PlayerCount: 2, CreatedAt: time.Now()},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	result, err := client.handleListRooms(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("handleListRooms failed: %v", err)
	}

	text := toolResultText(t, result)
	if !strings.Contains(text, "AB12C") {
		t.Errorf("Expected room code in output, got %q", text)
	}
	if !strings.Contains(text, "players: 2") {
		t.Errorf("Expected player count in output, got %q", text)
	}
}

func TestHandleGetRoom(t *testing.T) {
	wave := "wave"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/rooms/AB12C" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(&room.Info{
			Code:        "AB12C",
			HostID:      "host-1",
			PlayerCount: 1,
			CreatedAt:   time.Now(),
			Players: map[string]*room.Player{
				"host-1": {
					ID:       "host-1",
					Position: room.Position{X: 600, Y: 300},
					Username: "Alice",
					Emote:    &wave,
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]interface{}{"room_code": "AB12C"}

	result, err := client.handleGetRoom(context.Background(), request)
	if err != nil {
		t.Fatalf("handleGetRoom failed: %v", err)
	}

	text := toolResultText(t, result)
	for _, want := range []string{"AB12C", "Alice", "(600, 300)", "wave"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in output, got %q", want, text)
		}
	}
}

func TestHandleGetRoomError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Room ZZZZZ not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]interface{}{"room_code": "ZZZZZ"}

	result, err := client.handleGetRoom(context.Background(), request)
	if err != nil {
		t.Fatalf("handleGetRoom returned transport error: %v", err)
	}
	if !result.IsError {
		t.Error("Expected an error tool result for a missing room")
	}
}

func TestHandleServerStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"rooms":          3,
			"players":        7,
			"uptime_seconds": 42.0,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	result, err := client.handleServerStats(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("handleServerStats failed: %v", err)
	}

	text := toolResultText(t, result)
	if !strings.Contains(text, "Rooms: 3") || !strings.Contains(text, "Players: 7") {
		t.Errorf("Expected totals in output, got %q", text)
	}
}

// toolResultText extracts the text content from a tool result.
func toolResultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if len(result.Content) == 0 {
		t.Fatal("Tool result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("Expected text content, got %T", result.Content[0])
	}
	return text.Text
}
