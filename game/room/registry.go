package room

import (
	"crypto/rand"
	"errors"
	"log"
	"sync"
	"time"
)

var (
	ErrRoomNotFound = errors.New("room not found")
)

const (
	// CodeLength is the number of characters in a room code.
	CodeLength = 5

	// codeAlphabet is the set of characters room codes are drawn from.
	// Uppercase plus digits keeps codes easy to read out loud and type.
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// DefaultUsername is assigned to a player until the client sets a name.
	DefaultUsername = "Guest"
)

// Position is a 2D coordinate in world pixels. The server stores the last
// value reported by the owning client; it does not simulate movement.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Player is the per-connection state visible to other room members.
// The ID is the owning connection's identity and doubles as the map key.
type Player struct {
	ID       string   `json:"id"`
	Position Position `json:"position"`
	Username string   `json:"username"`
	Emote    *string  `json:"emote"`
}

// Room is an isolated multiplayer session identified by a short code.
// Rooms are owned exclusively by the Registry; callers only see snapshots.
type Room struct {
	Code      string
	HostID    string
	Players   map[string]*Player
	CreatedAt time.Time
}

// Info is a read-only snapshot of a room, safe to hand to API and MCP
// consumers outside the registry lock.
type Info struct {
	Code        string             `json:"code"`
	HostID      string             `json:"host_id"`
	PlayerCount int                `json:"player_count"`
	CreatedAt   time.Time          `json:"created_at"`
	Players     map[string]*Player `json:"players,omitempty"`
}

// Registry handles room lifecycle and per-room player state.
type Registry struct {
	rooms map[string]*Room
	mu    sync.RWMutex
}

// NewRegistry creates an empty room registry.
func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[string]*Room),
	}
}

// CreateRoom inserts a new empty room and returns its code. Codes are
// regenerated on collision, checked only against currently live rooms, so a
// code may be reused after its room has been deleted.
func (r *Registry) CreateRoom(hostID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	code := generateCode()
	for {
		if _, exists := r.rooms[code]; !exists {
			break
		}
		code = generateCode()
	}

	r.rooms[code] = &Room{
		Code:      code,
		HostID:    hostID,
		Players:   make(map[string]*Player),
		CreatedAt: time.Now(),
	}

	log.Printf("Room created: %s (host %s, active rooms: %d)", code, hostID, len(r.rooms))
	return code
}

// RoomExists reports whether a live room has the given code.
func (r *Registry) RoomExists(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.rooms[code]
	return exists
}

// AddPlayer inserts a new player into the room and returns a snapshot of the
// full player set, including the new player, so the joining client can render
// everyone already present. An empty username falls back to DefaultUsername.
func (r *Registry) AddPlayer(code, playerID string, spawn Position, username string) (map[string]*Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, exists := r.rooms[code]
	if !exists {
		return nil, ErrRoomNotFound
	}

	if username == "" {
		username = DefaultUsername
	}
	room.Players[playerID] = &Player{
		ID:       playerID,
		Position: spawn,
		Username: username,
		Emote:    nil,
	}

	log.Printf("Player %s joined room %s (%d players)", playerID, code, len(room.Players))
	return snapshotPlayers(room.Players), nil
}

// UpdatePosition records the player's last reported position. It reports
// whether the player was found; a stale event for a missing room or player
// is a silent no-op so that updates racing a disconnect cannot corrupt state.
func (r *Registry) UpdatePosition(code, playerID string, pos Position) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	player, ok := r.lookup(code, playerID)
	if !ok {
		return false
	}
	player.Position = pos
	return true
}

// UpdateEmote sets the player's current emote. A nil emote clears it.
// Last write wins; emotes persist until the next change or disconnect.
func (r *Registry) UpdateEmote(code, playerID string, emote *string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	player, ok := r.lookup(code, playerID)
	if !ok {
		return false
	}
	player.Emote = emote
	return true
}

// UpdateUsername sets the player's display name.
func (r *Registry) UpdateUsername(code, playerID, username string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	player, ok := r.lookup(code, playerID)
	if !ok {
		return false
	}
	player.Username = username
	return true
}

// RemovePlayer deletes the player from the room. The room itself is deleted
// the instant its player map becomes empty.
func (r *Registry) RemovePlayer(code, playerID string) (removed, roomDeleted bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, exists := r.rooms[code]
	if !exists {
		return false, false
	}
	if _, exists := room.Players[playerID]; !exists {
		return false, false
	}

	delete(room.Players, playerID)
	log.Printf("Player %s left room %s (%d players remaining)", playerID, code, len(room.Players))

	if len(room.Players) == 0 {
		delete(r.rooms, code)
		log.Printf("Room deleted: %s (active rooms: %d)", code, len(r.rooms))
		return true, true
	}
	return true, false
}

// Get returns a snapshot of a single room, players included.
func (r *Registry) Get(code string) (*Info, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, exists := r.rooms[code]
	if !exists {
		return nil, ErrRoomNotFound
	}

	return &Info{
		Code:        room.Code,
		HostID:      room.HostID,
		PlayerCount: len(room.Players),
		CreatedAt:   room.CreatedAt,
		Players:     snapshotPlayers(room.Players),
	}, nil
}

// List returns snapshots of all live rooms, without per-player detail.
func (r *Registry) List() []*Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Info, 0, len(r.rooms))
	for _, room := range r.rooms {
		result = append(result, &Info{
			Code:        room.Code,
			HostID:      room.HostID,
			PlayerCount: len(room.Players),
			CreatedAt:   room.CreatedAt,
		})
	}
	return result
}

// Count returns the number of live rooms.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

// PlayerCount returns the number of players across all live rooms.
func (r *Registry) PlayerCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, room := range r.rooms {
		total += len(room.Players)
	}
	return total
}

// lookup resolves a player within a room. Callers must hold the lock.
func (r *Registry) lookup(code, playerID string) (*Player, bool) {
	room, exists := r.rooms[code]
	if !exists {
		return nil, false
	}
	player, exists := room.Players[playerID]
	return player, exists
}

// snapshotPlayers copies the player map so callers never alias state that is
// mutated under the registry lock.
func snapshotPlayers(players map[string]*Player) map[string]*Player {
	snapshot := make(map[string]*Player, len(players))
	for id, p := range players {
		copied := *p
		snapshot[id] = &copied
	}
	return snapshot
}

// generateCode produces a candidate room code using cryptographic randomness.
func generateCode() string {
	buf := make([]byte, CodeLength)
	rand.Read(buf)

	code := make([]byte, CodeLength)
	for i, b := range buf {
		code[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(code)
}
