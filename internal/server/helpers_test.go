package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/scandefaults/internal/catalog"
)

// newTestServer creates a server on a freshly built registry.
func newTestServer(t *testing.T, ws bool) *Server {
	t.Helper()
	reg, err := catalog.Build()
	require.NoError(t, err)

	srv, err := NewServer(Config{
		Host:             "localhost",
		Port:             8080,
		CORSOrigin:       "*",
		WebSocketEnabled: ws,
		DeletionDelay:    time.Second,
		CacheCapacity:    16,
		Registry:         reg,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Close() })
	return srv
}

// newTestMux returns the routed handler of a test server.
func newTestMux(t *testing.T, ws bool) (*Server, *http.ServeMux) {
	t.Helper()
	srv := newTestServer(t, ws)
	mux := http.NewServeMux()
	srv.SetupRoutes(mux)
	return srv, mux
}

// doRequest sends a request through the handler and records the response.
func doRequest(h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// mockWebSocketConn records the messages written to it.
type mockWebSocketConn struct {
	sentMessages []sentMessage
}

type sentMessage struct {
	messageType int
	data        []byte
}

func (m *mockWebSocketConn) WriteMessage(messageType int, data []byte) error {
	m.sentMessages = append(m.sentMessages, sentMessage{
		messageType: messageType,
		data:        data,
	})
	return nil
}

// last decodes the most recent message.
func (m *mockWebSocketConn) last(t *testing.T) WebSocketResponse {
	t.Helper()
	require.NotEmpty(t, m.sentMessages)
	var resp WebSocketResponse
	require.NoError(t, json.Unmarshal(m.sentMessages[len(m.sentMessages)-1].data, &resp))
	return resp
}
