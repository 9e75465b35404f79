package apiv1

import (
	candidatehandler "recruitment-backend/lib/candidate"
	connectionhub "recruitment-backend/lib/ws/hub/connection-hub"
	wsmodels "recruitment-backend/models/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// InitFeedApiRouters wires the live candidate feed. Each connected client
// receives the full candidate list on connect and again after every
// candidate mutation.
func InitFeedApiRouters(app *fiber.App) {
	app.Use("candidate_feed", func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("candidate_feed", websocket.New(handleFeed))
}

func handleFeed(conn *websocket.Conn) {
	clientID := uuid.NewString()
	logger := log.WithField("client_id", clientID)

	// push the snapshot before subscribing so it never races a broadcast
	list, err := candidatehandler.Instance.List()
	if err != nil {
		logger.WithError(err).Error("initial feed snapshot failed")
		return
	}
	err = conn.WriteJSON(wsmodels.ServerMessage{
		MsgType: wsmodels.MsgTypeCandidates,
		Data:    list,
	})
	if err != nil {
		logger.WithError(err).Warn("initial feed push failed")
		return
	}

	connectionhub.Instance.AddClient(clientID, conn)
	// the unsubscribe runs on every exit path, error included
	defer connectionhub.Instance.DeleteClient(clientID)

	// the feed is one-directional; reads only detect the disconnect
	for {
		if _, _, err = conn.ReadMessage(); err != nil {
			logger.Debug("feed client disconnected")
			return
		}
	}
}
