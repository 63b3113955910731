package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/MeKo-Tech/scandefaults/internal/augcache"
)

const (
	wsReadTimeout  = 60 * time.Second
	wsPingInterval = 30 * time.Second
	wsWriteTimeout = 10 * time.Second
)

// WebSocket message types.
const (
	msgSession          = "session"
	msgSetHighlight     = "set_highlight"
	msgSetAnnotation    = "set_annotation"
	msgGetAugmentations = "get_augmentations"

	msgSessionResponse = "session_response"
	msgAugmentations   = "augmentations"
	msgAck             = "ack"
	msgError           = "error"
)

// WebSocketRequest is a client message on /ws/session.
type WebSocketRequest struct {
	Type       string              `json:"type"`
	RequestID  string              `json:"request_id,omitempty"`
	Session    *augcache.Session   `json:"session,omitempty"`
	Identity   string              `json:"identity,omitempty"`
	Descriptor augcache.Descriptor `json:"descriptor,omitempty"`
}

// WebSocketConnWriter is an interface for writing WebSocket messages.
type WebSocketConnWriter interface {
	WriteMessage(messageType int, data []byte) error
}

// WebSocketResponse is a server message on /ws/session.
type WebSocketResponse struct {
	Type       string              `json:"type"`
	Status     string              `json:"status"` // "completed", "error"
	RequestID  string              `json:"request_id,omitempty"`
	Identities []string            `json:"identities,omitempty"`
	Identity   string              `json:"identity,omitempty"`
	Highlight  augcache.Descriptor `json:"highlight,omitempty"`
	Annotation augcache.Descriptor `json:"annotation,omitempty"`
	Error      string              `json:"error,omitempty"`
	ErrorType  string              `json:"error_type,omitempty"`
}

// trackingSession is the per-connection tracking state.
type trackingSession struct {
	cache     *augcache.Cache
	tracked   int
	evictions uint64
}

func (s *Server) newTrackingSession(logger *slog.Logger) (*trackingSession, error) {
	cache, err := augcache.New(s.cacheCapacity,
		augcache.WithDeletionDelay(s.deletionDelay),
		augcache.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return &trackingSession{cache: cache}, nil
}

// recordStats moves the shared gauges by this session's changes.
func (ts *trackingSession) recordStats() {
	st := ts.cache.Stats()
	trackedBarcodes.Add(float64(st.Tracked - ts.tracked))
	ts.tracked = st.Tracked
	if st.Evictions > ts.evictions {
		augmentationEvictionsTotal.Add(float64(st.Evictions - ts.evictions))
		ts.evictions = st.Evictions
	}
}

func (ts *trackingSession) close() {
	trackedBarcodes.Sub(float64(ts.tracked))
	ts.tracked = 0
	_ = ts.cache.Close()
}

// upgrader returns a WebSocket upgrader honouring the configured CORS origin.
func (s *Server) upgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if s.corsOrigin == "" || s.corsOrigin == "*" {
				return true
			}
			return r.Header.Get("Origin") == s.corsOrigin
		},
	}
}

// sessionWebSocketHandler handles WebSocket connections for barcode tracking.
func (s *Server) sessionWebSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader().Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade connection to WebSocket", "error", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	connID := uuid.NewString()
	logger := slog.Default().With("connection", connID)

	sess, err := s.newTrackingSession(logger)
	if err != nil {
		logger.Error("Failed to create tracking session", "error", err)
		return
	}
	defer sess.close()

	websocketConnections.Inc()
	defer websocketConnections.Dec()

	logger.Info("WebSocket connection established", "remote_addr", r.RemoteAddr)
	s.handleWebSocketConnection(conn, sess)
	logger.Info("WebSocket connection closed")
}

// handleWebSocketConnection processes messages from a WebSocket connection.
func (s *Server) handleWebSocketConnection(conn *websocket.Conn, sess *trackingSession) {
	_ = conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
		return nil
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(wsPingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(wsWriteTimeout)); err != nil {
					return
				}
			}
		}
	}()

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Error("WebSocket error", "error", err)
			}
			return
		}

		websocketMessagesTotal.WithLabelValues("received").Inc()

		if messageType == websocket.TextMessage {
			s.handleWebSocketMessage(conn, sess, data)
		}
	}
}

// handleWebSocketMessage processes a WebSocket message.
func (s *Server) handleWebSocketMessage(conn WebSocketConnWriter, sess *trackingSession, data []byte) {
	var req WebSocketRequest
	if err := json.Unmarshal(data, &req); err != nil {
		s.sendWebSocketError(conn, "", "invalid_request", fmt.Sprintf("Failed to parse request: %v", err))
		return
	}

	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}

	switch req.Type {
	case msgSession:
		s.processSessionUpdate(conn, sess, req, requestID)
	case msgSetHighlight, msgSetAnnotation:
		s.processSetAugmentation(conn, sess, req, requestID)
	case msgGetAugmentations:
		s.processGetAugmentations(conn, sess, req, requestID)
	default:
		s.sendWebSocketError(conn, requestID, "invalid_request", "Unsupported request type: "+req.Type)
	}
}

// processSessionUpdate applies one frame of tracking changes and answers
// with the identities of the added barcodes.
func (s *Server) processSessionUpdate(conn WebSocketConnWriter, sess *trackingSession, req WebSocketRequest, requestID string) {
	if req.Session == nil {
		s.sendWebSocketError(conn, requestID, "invalid_request", "No session update provided")
		return
	}

	ids, err := sess.cache.Update(*req.Session)
	if err != nil {
		s.sendWebSocketError(conn, requestID, "processing_error", fmt.Sprintf("Session update failed: %v", err))
		return
	}
	barcodeHashesTotal.WithLabelValues("websocket").Add(float64(len(ids)))
	sess.recordStats()

	s.sendWebSocketResponse(conn, WebSocketResponse{
		Type:       msgSessionResponse,
		Status:     "completed",
		RequestID:  requestID,
		Identities: ids,
	})
}

// processSetAugmentation stores a highlight or annotation descriptor.
func (s *Server) processSetAugmentation(conn WebSocketConnWriter, sess *trackingSession, req WebSocketRequest, requestID string) {
	if req.Identity == "" {
		s.sendWebSocketError(conn, requestID, "invalid_request", "No identity provided")
		return
	}

	var err error
	kind := "highlight"
	if req.Type == msgSetAnnotation {
		kind = "annotation"
		err = sess.cache.SetAnnotation(req.Identity, req.Descriptor)
	} else {
		err = sess.cache.SetHighlight(req.Identity, req.Descriptor)
	}
	if err != nil {
		s.sendWebSocketError(conn, requestID, "processing_error", fmt.Sprintf("Storing %s failed: %v", kind, err))
		return
	}
	augmentationsSetTotal.WithLabelValues(kind).Inc()
	sess.recordStats()

	s.sendWebSocketResponse(conn, WebSocketResponse{
		Type:      msgAck,
		Status:    "completed",
		RequestID: requestID,
		Identity:  req.Identity,
	})
}

// processGetAugmentations returns whatever is stored for an identity.
func (s *Server) processGetAugmentations(conn WebSocketConnWriter, sess *trackingSession, req WebSocketRequest, requestID string) {
	if req.Identity == "" {
		s.sendWebSocketError(conn, requestID, "invalid_request", "No identity provided")
		return
	}

	highlight, _ := sess.cache.Highlight(req.Identity)
	annotation, _ := sess.cache.Annotation(req.Identity)

	s.sendWebSocketResponse(conn, WebSocketResponse{
		Type:       msgAugmentations,
		Status:     "completed",
		RequestID:  requestID,
		Identity:   req.Identity,
		Highlight:  highlight,
		Annotation: annotation,
	})
}

// sendWebSocketResponse sends a response message over WebSocket.
func (s *Server) sendWebSocketResponse(conn WebSocketConnWriter, response WebSocketResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		slog.Error("Failed to marshal WebSocket response", "error", err)
		return
	}

	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		slog.Error("Failed to send WebSocket message", "error", err)
		return
	}

	websocketMessagesTotal.WithLabelValues("sent").Inc()
}

// sendWebSocketError sends an error message over WebSocket.
func (s *Server) sendWebSocketError(conn WebSocketConnWriter, requestID, errorType, message string) {
	s.sendWebSocketResponse(conn, WebSocketResponse{
		Type:      msgError,
		Status:    "error",
		RequestID: requestID,
		Error:     message,
		ErrorType: errorType,
	})
}
