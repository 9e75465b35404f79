package connectionhub

import (
	"sync"

	wsmodels "recruitment-backend/models/ws"

	"github.com/gofiber/contrib/websocket"
)

type clientSession struct {
	conn *websocket.Conn
	// the websocket connection allows one concurrent writer
	writeMu sync.Mutex
	closed  bool
}

func newSession(conn *websocket.Conn) *clientSession {
	return &clientSession{
		conn: conn,
	}
}

func (s *clientSession) send(msg wsmodels.ServerMessage) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if s.closed {
		return nil
	}
	return s.conn.WriteJSON(msg)
}

func (s *clientSession) stop() {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	_ = s.conn.Close()
}
