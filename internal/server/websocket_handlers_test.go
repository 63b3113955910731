package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/scandefaults/internal/augcache"
	"github.com/MeKo-Tech/scandefaults/internal/barcode"
)

func newTestSession(t *testing.T, server *Server) *trackingSession {
	t.Helper()
	sess, err := server.newTrackingSession(slog.Default())
	require.NoError(t, err)
	t.Cleanup(sess.close)
	return sess
}

func sessionMessage(requestID string, added []augcache.TrackedBarcode, removed []int) string {
	req := WebSocketRequest{
		Type:      msgSession,
		RequestID: requestID,
		Session:   &augcache.Session{Added: added, Removed: removed},
	}
	data, _ := json.Marshal(req)
	return string(data)
}

func code128(id int, data string) augcache.TrackedBarcode {
	return augcache.TrackedBarcode{ID: id, Barcode: barcode.Barcode{Symbology: barcode.SymbologyCode128, Data: data}}
}

func TestServer_HandleWebSocketMessage_Session(t *testing.T) {
	server := newTestServer(t, true)
	sess := newTestSession(t, server)
	conn := &mockWebSocketConn{}

	server.handleWebSocketMessage(conn, sess, []byte(sessionMessage("req-1", []augcache.TrackedBarcode{code128(1, "ABC-123")}, nil)))

	resp := conn.last(t)
	assert.Equal(t, msgSessionResponse, resp.Type)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, "req-1", resp.RequestID)
	assert.Equal(t, []string{"9577a00f50851b9ce82aea19ac1353456790e15626ea0640b290199170e5a4ec"}, resp.Identities)
	assert.Equal(t, 1, sess.tracked)
}

func TestServer_HandleWebSocketMessage_Augmentations(t *testing.T) {
	server := newTestServer(t, true)
	sess := newTestSession(t, server)
	conn := &mockWebSocketConn{}

	server.handleWebSocketMessage(conn, sess, []byte(sessionMessage("", []augcache.TrackedBarcode{code128(1, "X")}, nil)))
	identity := conn.last(t).Identities[0]

	server.handleWebSocketMessage(conn, sess,
		[]byte(`{"type":"set_highlight","identity":"`+identity+`","descriptor":{"type":"rectangle"}}`))
	ack := conn.last(t)
	assert.Equal(t, msgAck, ack.Type)
	assert.Equal(t, identity, ack.Identity)
	assert.NotEmpty(t, ack.RequestID, "a request id is generated when the client sends none")

	server.handleWebSocketMessage(conn, sess,
		[]byte(`{"type":"set_annotation","identity":"`+identity+`","descriptor":{"text":"hi"}}`))
	assert.Equal(t, msgAck, conn.last(t).Type)

	server.handleWebSocketMessage(conn, sess, []byte(`{"type":"get_augmentations","identity":"`+identity+`"}`))
	got := conn.last(t)
	assert.Equal(t, msgAugmentations, got.Type)
	assert.Equal(t, "rectangle", got.Highlight["type"])
	assert.Equal(t, "hi", got.Annotation["text"])
}

func TestServer_HandleWebSocketMessage_Errors(t *testing.T) {
	server := newTestServer(t, true)
	sess := newTestSession(t, server)

	tests := []struct {
		name      string
		message   string
		errorType string
	}{
		{"bad json", `{"type":`, "invalid_request"},
		{"unknown type", `{"type":"ocr"}`, "invalid_request"},
		{"missing session", `{"type":"session"}`, "invalid_request"},
		{"missing identity", `{"type":"set_highlight"}`, "invalid_request"},
		{"get without identity", `{"type":"get_augmentations"}`, "invalid_request"},
		{"bad symbology", `{"type":"session","session":{"added":[{"id":1,"barcode":{"symbology":"nope"}}]}}`, "invalid_request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := &mockWebSocketConn{}
			server.handleWebSocketMessage(conn, sess, []byte(tt.message))

			require.Len(t, conn.sentMessages, 1)
			assert.Equal(t, websocket.TextMessage, conn.sentMessages[0].messageType)
			resp := conn.last(t)
			assert.Equal(t, msgError, resp.Type)
			assert.Equal(t, "error", resp.Status)
			assert.Equal(t, tt.errorType, resp.ErrorType)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestServer_HandleWebSocketMessage_ClosedSession(t *testing.T) {
	server := newTestServer(t, true)
	sess := newTestSession(t, server)
	require.NoError(t, sess.cache.Close())

	conn := &mockWebSocketConn{}
	server.handleWebSocketMessage(conn, sess, []byte(sessionMessage("r", nil, []int{1})))
	resp := conn.last(t)
	assert.Equal(t, "processing_error", resp.ErrorType)
	assert.Equal(t, "r", resp.RequestID)
}

func TestServer_SendWebSocketError(t *testing.T) {
	mockConn := &mockWebSocketConn{}
	server := &Server{}

	server.sendWebSocketError(mockConn, "id-1", "test_error", "Test error message")

	response := mockConn.last(t)
	assert.Equal(t, "error", response.Type)
	assert.Equal(t, "error", response.Status)
	assert.Equal(t, "id-1", response.RequestID)
	assert.Equal(t, "Test error message", response.Error)
	assert.Equal(t, "test_error", response.ErrorType)
}

func TestWebSocketUpgrader(t *testing.T) {
	origin := func(o string) *http.Request {
		return &http.Request{Header: http.Header{"Origin": []string{o}}}
	}

	t.Run("wildcard allows any origin", func(t *testing.T) {
		up := (&Server{corsOrigin: "*"}).upgrader()
		assert.True(t, up.CheckOrigin(origin("http://example.com")))
		assert.True(t, up.CheckOrigin(origin("https://another-domain.com")))
	})

	t.Run("configured origin only", func(t *testing.T) {
		up := (&Server{corsOrigin: "https://app.example.com"}).upgrader()
		assert.True(t, up.CheckOrigin(origin("https://app.example.com")))
		assert.False(t, up.CheckOrigin(origin("https://evil.example.com")))
	})

	t.Run("buffer sizes", func(t *testing.T) {
		up := (&Server{}).upgrader()
		assert.Equal(t, 1024, up.ReadBufferSize)
		assert.Equal(t, 1024, up.WriteBufferSize)
	})
}

func TestSessionWebSocket_EndToEnd(t *testing.T) {
	_, mux := newTestMux(t, true)
	ts := httptest.NewServer(mux)
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/session"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()
	defer func() { _ = resp.Body.Close() }()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage,
		[]byte(sessionMessage("e2e", []augcache.TrackedBarcode{code128(3, "ABC-123")}, nil))))

	var got WebSocketResponse
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, msgSessionResponse, got.Type)
	assert.Equal(t, "e2e", got.RequestID)
	require.Len(t, got.Identities, 1)
	assert.Len(t, got.Identities[0], barcode.HashLength)

	require.NoError(t, conn.WriteJSON(WebSocketRequest{
		Type:       msgSetHighlight,
		Identity:   got.Identities[0],
		Descriptor: augcache.Descriptor{"type": "dot"},
	}))
	var ack WebSocketResponse
	require.NoError(t, conn.ReadJSON(&ack))
	assert.Equal(t, msgAck, ack.Type)

	// The code leaves the frame; its highlight outlives it for the deletion delay.
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(sessionMessage("gone", nil, []int{3}))))
	var removed WebSocketResponse
	require.NoError(t, conn.ReadJSON(&removed))
	assert.Equal(t, "gone", removed.RequestID)
	assert.Empty(t, removed.Identities)

	require.NoError(t, conn.WriteJSON(WebSocketRequest{Type: msgGetAugmentations, Identity: ack.Identity}))
	var aug WebSocketResponse
	require.NoError(t, conn.ReadJSON(&aug))
	assert.Equal(t, "dot", aug.Highlight["type"])
}
