package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"chatitude/errors"
	"chatitude/sink"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Server owns the HTTP surface: the websocket endpoint every client talks
// through, plus the static frontend with an index fallback.
type Server struct {
	log        *slog.Logger
	hub        *Hub
	upgrader   websocket.Upgrader
	bufferSize int
	staticDir  string
}

func NewServer(log *slog.Logger, hub *Hub, bufferSize int, staticDir string) *Server {
	return &Server{
		log: log,
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		bufferSize: bufferSize,
		staticDir:  staticDir,
	}
}

func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), cors.Default())
	router.GET("/ws", s.handleSocket)
	if s.staticDir != "" {
		router.NoRoute(s.serveStatic)
	}
	return router
}

// handleSocket upgrades the connection and runs its read loop until the
// client goes away. Each connection gets a buffered sink drained by a
// dedicated writer goroutine, so a slow client never blocks the hub.
func (s *Server) handleSocket(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Error("WebSocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	connectionID := uuid.NewString()
	connectionSink := sink.NewConnection(s.log, s.bufferSize)
	s.hub.Connect(connectionID, connectionSink)
	s.log.Info("New connection", "connection_id", connectionID)

	done := make(chan struct{})
	defer close(done)
	go s.writePump(conn, connectionSink, done)

	ctx := context.Background()
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			s.log.Info("Connection read ended", "connection_id", connectionID, "reason", err)
			break
		}
		s.dispatch(ctx, connectionID, raw)
	}
	s.hub.Disconnect(ctx, connectionID)
}

// dispatch routes one inbound frame. Handler failures are logged and
// otherwise dropped: the wire protocol has no error channel, the client
// observes failure as "the expected event never arrived".
func (s *Server) dispatch(ctx context.Context, connectionID string, raw []byte) {
	var f frame
	if err := json.Unmarshal(raw, &f); err != nil {
		s.log.Warn("Undecodable frame", "connection_id", connectionID, "error", err)
		return
	}

	var err error
	switch f.Event {
	case eventUserJoin:
		var payload joinPayload
		if payload, err = decodePayload[joinPayload](f.Data); err == nil {
			err = s.hub.Join(ctx, connectionID, payload)
		}
	case eventUserAll:
		s.hub.SendParticipants(ctx, connectionID)
	case eventMessageAll:
		err = s.hub.SendTranscript(ctx, connectionID)
	case eventMessageSend:
		var payload sendPayload
		if payload, err = decodePayload[sendPayload](f.Data); err == nil {
			err = s.hub.Send(ctx, connectionID, payload)
		}
	case eventMessageUpdate:
		var payload updatePayload
		if payload, err = decodePayload[updatePayload](f.Data); err == nil {
			err = s.hub.Update(ctx, connectionID, payload)
		}
	default:
		err = fmt.Errorf("%w: %s", errors.ErrUnknownEvent, f.Event)
	}
	if err != nil {
		s.log.Error("Event handling failed", "event", f.Event, "connection_id", connectionID, "error", err)
	}
}

func (s *Server) writePump(conn *websocket.Conn, connectionSink *sink.Connection, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case e := <-connectionSink.Events:
			if err := conn.WriteJSON(outboundFrame{Event: e.Name(), Data: e.Payload()}); err != nil {
				s.log.Warn("Write to connection failed", "error", err)
				return
			}
		}
	}
}

// serveStatic serves the frontend; anything that is not a real file falls
// back to index.html so client-side routes keep working.
func (s *Server) serveStatic(c *gin.Context) {
	requested := filepath.Join(s.staticDir, filepath.Clean("/"+c.Request.URL.Path))
	if info, err := os.Stat(requested); err == nil && !info.IsDir() {
		c.File(requested)
		return
	}
	c.File(filepath.Join(s.staticDir, "index.html"))
}
