package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/NizCom/JaMoveo-backend/internal/live"
	"github.com/NizCom/JaMoveo-backend/internal/services"
	"github.com/NizCom/JaMoveo-backend/internal/session"
)

func newLiveServer(t *testing.T) (*httptest.Server, *services.AuthService, *session.State) {
	t.Helper()
	state := session.New()
	hub := live.NewHub(state)
	go hub.Run()

	authService := services.NewAuthService("test-secret", time.Hour)
	handler := NewLiveHandler(hub, authService, nil)

	srv := httptest.NewServer(http.HandlerFunc(handler.Serve))
	t.Cleanup(srv.Close)
	return srv, authService, state
}

func dialWS(t *testing.T, srv *httptest.Server, token string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) live.Envelope {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("websocket read: %v", err)
	}
	var env live.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	return env
}

func TestLiveHandler_RejectsUnauthenticated(t *testing.T) {
	srv, authService, _ := newLiveServer(t)

	tests := []struct {
		name  string
		token string
	}{
		{"missing token", ""},
		{"garbage token", "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?token=" + tt.token
			_, resp, err := websocket.DefaultDialer.Dial(url, nil)
			if err == nil {
				t.Fatal("dial should fail without a valid token")
			}
			if resp == nil || resp.StatusCode != http.StatusUnauthorized {
				t.Errorf("status = %v, want %d", resp, http.StatusUnauthorized)
			}
		})
	}

	// Sanity: a real token connects.
	token, err := authService.GenerateToken("dana", services.RolePlayer)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	dialWS(t, srv, token)
}

func TestLiveHandler_GoLiveRoundTrip(t *testing.T) {
	srv, authService, state := newLiveServer(t)

	token, err := authService.GenerateToken("dana", services.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	leader := dialWS(t, srv, token)
	followerA := dialWS(t, srv, token)
	followerB := dialWS(t, srv, token)

	frame := `{"event":"startLivePage","data":{"songName":"hey_jude","lyrics":["Hey Jude"],"chords":["F"]}}`
	if err := leader.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
		t.Fatalf("write: %v", err)
	}

	for _, follower := range []*websocket.Conn{followerA, followerB} {
		env := readEnvelope(t, follower)
		if env.Event != live.EventStartLivePage {
			t.Errorf("event = %q, want %q", env.Event, live.EventStartLivePage)
		}
	}

	// Sender is excluded from its own go-live broadcast; the next frame the
	// leader sees is the quit it triggers below.
	if err := leader.WriteMessage(websocket.TextMessage, []byte(`{"event":"quitSession"}`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	if env := readEnvelope(t, leader); env.Event != live.EventQuitSession {
		t.Errorf("leader saw %q, want %q (and no copy of its own go-live)", env.Event, live.EventQuitSession)
	}
	for _, follower := range []*websocket.Conn{followerA, followerB} {
		if env := readEnvelope(t, follower); env.Event != live.EventQuitSession {
			t.Errorf("event = %q, want %q", env.Event, live.EventQuitSession)
		}
	}

	if state.Current() != nil {
		t.Error("session should be idle after quit")
	}
}
