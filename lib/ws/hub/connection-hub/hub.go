package connectionhub

import (
	"sync"

	wsmodels "recruitment-backend/models/ws"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	AddClient(clientID string, conn *websocket.Conn)
	DeleteClient(clientID string)
	// Broadcast pushes the message to every connected dashboard client.
	Broadcast(msg wsmodels.ServerMessage)
	IsConnected(clientID string) bool
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]*clientSession{},
	}
}

type impl struct {
	mu      sync.Mutex
	clients map[string]*clientSession //map[clientID]
}

func (i *impl) AddClient(clientID string, conn *websocket.Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	oldSess, ok := i.clients[clientID]
	if ok {
		oldSess.stop()
	}
	i.clients[clientID] = newSession(conn)
}

func (i *impl) DeleteClient(clientID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[clientID]
	if !ok {
		return
	}
	delete(i.clients, clientID)
	sess.stop()
}

func (i *impl) Broadcast(msg wsmodels.ServerMessage) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for clientID, sess := range i.clients {
		if err := sess.send(msg); err != nil {
			log.WithError(err).
				WithField("client_id", clientID).
				Warn("feed push failed, dropping client")
			delete(i.clients, clientID)
			sess.stop()
		}
	}
}

func (i *impl) IsConnected(clientID string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[clientID]
	return ok && sess.conn != nil
}
