package websocket

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/voicebazaar/bazaar-server/game/config"
	"github.com/voicebazaar/bazaar-server/game/room"
)

// Time allowed to write a message to the peer.
const writeWait = 10 * time.Second

// errClientGone reports that the connection was force-dropped before the
// operation could complete.
var errClientGone = errors.New("client no longer connected")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		// TODO: Configure this for production
		return true
	},
}

// inboundFrame pairs a decoded wire frame with the connection it arrived on.
type inboundFrame struct {
	client   *Client
	envelope Envelope
}

// Hub owns every client connection and is the sole translator between wire
// events and registry calls. All registry mutations happen on the Run loop
// goroutine, so check-then-broadcast sequences are atomic with respect to
// other connections' events.
type Hub struct {
	registry    *room.Registry
	spawn       room.Position
	defaultName string

	// Subscriber sets per room code, plus the full client set. Touched only
	// by the Run goroutine.
	rooms   map[string]map[*Client]bool
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	inbound    chan inboundFrame

	pongWait       time.Duration
	pingPeriod     time.Duration
	maxMessageSize int64
}

// NewHub creates a hub bound to a room registry and server settings.
func NewHub(registry *room.Registry, settings *config.Settings) *Hub {
	pongWait := time.Duration(settings.PongWaitSeconds) * time.Second
	return &Hub{
		registry:       registry,
		spawn:          settings.SpawnPosition(),
		defaultName:    settings.DefaultUsername,
		rooms:          make(map[string]map[*Client]bool),
		clients:        make(map[*Client]bool),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		inbound:        make(chan inboundFrame, 64),
		pongWait:       pongWait,
		pingPeriod:     (pongWait * 9) / 10,
		maxMessageSize: settings.MaxMessageSize,
	}
}

// Run starts the hub's event loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case frame := <-h.inbound:
			h.dispatch(frame.client, frame.envelope)
		}
	}
}

// ServeWS handles WebSocket requests from clients. Each connection gets a
// unique identity which doubles as its player ID inside a room.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		id:   uuid.NewString(),
		hub:  h,
		conn: conn,
		send: make(chan []byte, 256),
	}

	h.register <- client

	go client.writePump()
	go client.readPump()
}

// registerClient adds a fresh, room-less connection and tells it its identity.
func (h *Hub) registerClient(client *Client) {
	h.clients[client] = true
	log.Printf("Client connected: %s (total clients: %d)", client.id, len(h.clients))
	h.send(client, EventConnected, ConnectedPayload{ConnectionID: client.id})
}

// unregisterClient runs the full disconnect path: leave the current room,
// notify the remaining members, and discard the connection. Safe to call
// twice; the second call is a no-op.
func (h *Hub) unregisterClient(client *Client) {
	if _, exists := h.clients[client]; !exists {
		return
	}

	if client.room != "" {
		h.leaveRoom(client, client.room)
	}

	delete(h.clients, client)
	close(client.send)
	log.Printf("Client disconnected: %s (total clients: %d)", client.id, len(h.clients))
}

// dispatch routes one inbound frame. Frames from connections that were
// force-dropped earlier in the same tick are discarded.
func (h *Hub) dispatch(client *Client, envelope Envelope) {
	if _, exists := h.clients[client]; !exists {
		return
	}

	switch envelope.Event {
	case EventCreateRoom:
		code := h.registry.CreateRoom(client.id)
		players, err := h.bindRoom(client, code)
		if err != nil {
			// Unreachable: registration was checked on entry and the code
			// was just generated on this goroutine
			break
		}
		h.send(client, EventRoomCreated, RoomCreatedPayload{RoomCode: code})
		h.send(client, EventRoomJoined, RoomJoinedPayload{RoomCode: code, Players: players})

	case EventJoinRoom:
		var req JoinRoomRequest
		if !h.decode(client, envelope, &req) {
			return
		}
		h.joinRoom(client, req.RoomCode)

	case EventPlayerMove:
		var req MoveRequest
		if !h.decode(client, envelope, &req) {
			return
		}
		if h.registry.UpdatePosition(req.RoomCode, client.id, req.Position) {
			h.broadcast(req.RoomCode, client, EventPlayerMoved, PlayerMovedPayload{
				PlayerID: client.id,
				Position: req.Position,
			})
		}

	case EventPlayerEmote:
		var req EmoteRequest
		if !h.decode(client, envelope, &req) {
			return
		}
		if h.registry.UpdateEmote(req.RoomCode, client.id, req.Emote) {
			h.broadcast(req.RoomCode, client, EventPlayerEmoted, PlayerEmotedPayload{
				PlayerID: client.id,
				Emote:    req.Emote,
			})
		}

	case EventPlayerName:
		var req NameRequest
		if !h.decode(client, envelope, &req) {
			return
		}
		if h.registry.UpdateUsername(req.RoomCode, client.id, req.Username) {
			h.broadcast(req.RoomCode, client, EventPlayerRenamed, PlayerRenamedPayload{
				PlayerID: client.id,
				Username: req.Username,
			})
		}

	case EventLeaveRoom:
		var req LeaveRoomRequest
		if !h.decode(client, envelope, &req) {
			return
		}
		h.leaveRoom(client, req.RoomCode)

	default:
		log.Printf("Unknown event %q from %s", envelope.Event, client.id)
	}
}

// joinRoom adds the client to a room, replies with the full player set, and
// announces the newcomer to everyone else.
func (h *Hub) joinRoom(client *Client, code string) {
	players, err := h.bindRoom(client, code)
	if err != nil {
		h.send(client, EventRoomError, RoomErrorPayload{Message: "Room not found"})
		return
	}

	h.send(client, EventRoomJoined, RoomJoinedPayload{RoomCode: code, Players: players})

	// The reply may have force-dropped a slow client; its departure has
	// already been announced, so the newcomer broadcast must not follow.
	if _, registered := h.clients[client]; !registered {
		return
	}
	h.broadcast(code, client, EventPlayerJoined, PlayerJoinedPayload{Player: players[client.id]})
}

// bindRoom moves the client into a room: leaves any previous room, inserts
// the player into the registry, and records the subscription. Membership is
// established before any reply is sent, so if a later send force-drops the
// client, the normal disconnect path removes the player and the room can
// still be garbage-collected. A connection belongs to at most one room, so
// binding while already in a room leaves the old one first.
func (h *Hub) bindRoom(client *Client, code string) (map[string]*room.Player, error) {
	if _, registered := h.clients[client]; !registered {
		return nil, errClientGone
	}

	if client.room != "" && client.room != code {
		h.leaveRoom(client, client.room)
	}

	players, err := h.registry.AddPlayer(code, client.id, h.spawn, h.defaultName)
	if err != nil {
		return nil, err
	}

	if h.rooms[code] == nil {
		h.rooms[code] = make(map[*Client]bool)
	}
	h.rooms[code][client] = true
	client.room = code
	return players, nil
}

// leaveRoom removes the client from a room and notifies the remaining
// members. The connection stays open and returns to the room-less state.
func (h *Hub) leaveRoom(client *Client, code string) {
	removed, _ := h.registry.RemovePlayer(code, client.id)

	if subscribers, ok := h.rooms[code]; ok {
		delete(subscribers, client)
		if len(subscribers) == 0 {
			delete(h.rooms, code)
		}
	}
	if client.room == code {
		client.room = ""
	}

	if removed {
		h.broadcast(code, client, EventPlayerLeft, PlayerLeftPayload{PlayerID: client.id})
	}
}

// broadcast fans an event out to every subscriber of the room except the
// sender. Delivery is fire-and-forget; a client whose send buffer is full is
// dropped through the normal disconnect path.
func (h *Hub) broadcast(code string, sender *Client, event string, payload interface{}) {
	data, err := marshalEvent(event, payload)
	if err != nil {
		log.Printf("Failed to marshal %s broadcast: %v", event, err)
		return
	}

	for client := range h.rooms[code] {
		if client == sender {
			continue
		}
		if _, registered := h.clients[client]; !registered {
			continue
		}
		select {
		case client.send <- data:
		default:
			h.unregisterClient(client)
		}
	}
}

// send delivers an event to a single client. A client that was force-dropped
// earlier in the same dispatch has a closed send channel, so sends to
// unregistered clients are discarded.
func (h *Hub) send(client *Client, event string, payload interface{}) {
	if _, registered := h.clients[client]; !registered {
		return
	}

	data, err := marshalEvent(event, payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", event, err)
		return
	}

	select {
	case client.send <- data:
	default:
		h.unregisterClient(client)
	}
}

// decode unmarshals an event payload, dropping the frame on malformed input.
func (h *Hub) decode(client *Client, envelope Envelope, dst interface{}) bool {
	if err := json.Unmarshal(envelope.Data, dst); err != nil {
		log.Printf("Dropping malformed %s payload from %s: %v", envelope.Event, client.id, err)
		return false
	}
	return true
}
