// Package live tracks connected musicians and fans out live-session events
// over websockets. A single goroutine owns the connection registry and the
// session state transitions, so connect, disconnect, go-live and quit are
// processed strictly in arrival order without locks.
package live

import (
	"encoding/json"
	"log/slog"

	"github.com/NizCom/JaMoveo-backend/internal/models"
	"github.com/NizCom/JaMoveo-backend/internal/session"
)

// Event names on the wire, shared with the frontend.
const (
	EventStartLivePage = "startLivePage"
	EventQuitSession   = "quitSession"
)

// Envelope is the frame format in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type eventKind int

const (
	eventConnect eventKind = iota
	eventDisconnect
	eventGoLive
	eventQuit
)

type event struct {
	kind     eventKind
	client   *Client
	senderID string
	payload  json.RawMessage
}

// Hub owns the connection registry and dispatches broadcasts. All events
// funnel through one channel so Run processes them one at a time.
type Hub struct {
	state   *session.State
	events  chan event
	clients map[string]*Client
}

// NewHub creates a Hub that records the live song in the given session state.
func NewHub(state *session.State) *Hub {
	return &Hub{
		state:   state,
		events:  make(chan event, 16),
		clients: make(map[string]*Client),
	}
}

// Connect registers a client with the hub.
func (h *Hub) Connect(c *Client) {
	h.events <- event{kind: eventConnect, client: c}
}

// Disconnect removes a client from the hub.
func (h *Hub) Disconnect(c *Client) {
	h.events <- event{kind: eventDisconnect, client: c}
}

// GoLive broadcasts a startLivePage event to every client except the sender,
// which already renders the song locally. The payload also becomes the
// current live song, so late joiners polling the session state see it.
func (h *Hub) GoLive(senderID string, payload json.RawMessage) {
	h.events <- event{kind: eventGoLive, senderID: senderID, payload: payload}
}

// Quit clears the live song and broadcasts quitSession to every client,
// sender included, so the initiating client resets its own view too.
func (h *Hub) Quit() {
	h.events <- event{kind: eventQuit}
}

// Run processes hub events until the events channel is exhausted. It is the
// only goroutine that touches the registry or the session state.
func (h *Hub) Run() {
	for ev := range h.events {
		switch ev.kind {
		case eventConnect:
			h.clients[ev.client.ID] = ev.client
			slog.Info("musician connected", slog.String("conn_id", ev.client.ID), slog.String("username", ev.client.Username))
		case eventDisconnect:
			if _, ok := h.clients[ev.client.ID]; ok {
				delete(h.clients, ev.client.ID)
				close(ev.client.send)
				slog.Info("musician disconnected", slog.String("conn_id", ev.client.ID), slog.String("username", ev.client.Username))
			}
		case eventGoLive:
			var song models.Song
			if err := json.Unmarshal(ev.payload, &song); err != nil {
				slog.Warn("go-live payload is not a song, broadcasting anyway", slog.Any("error", err))
			} else {
				h.state.SetLive(&song)
			}
			h.broadcast(Envelope{Event: EventStartLivePage, Data: ev.payload}, ev.senderID)
		case eventQuit:
			h.state.Clear()
			h.broadcast(Envelope{Event: EventQuitSession}, "")
		}
	}
}

// broadcast delivers a frame to every registered client except excludeID.
// Sends are non-blocking: a client whose buffer is full is dropped so one
// stalled connection never holds up the rest.
func (h *Hub) broadcast(env Envelope, excludeID string) {
	frame, err := json.Marshal(env)
	if err != nil {
		slog.Error("failed to encode broadcast frame", slog.Any("error", err))
		return
	}
	for id, c := range h.clients {
		if id == excludeID {
			continue
		}
		select {
		case c.send <- frame:
		default:
			delete(h.clients, id)
			close(c.send)
			slog.Warn("dropping stalled connection", slog.String("conn_id", id))
		}
	}
}
