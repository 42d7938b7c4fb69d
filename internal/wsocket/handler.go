package wsocket

import (
	"context"
	"net/http"

	"agent_review_go_backend/internal/broker"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Handler streams ledger change events to connected clients over a
// websocket, replacing client-side polling. The stream is push-only: the
// read loop exists solely to notice the peer going away.
type Handler struct {
	events   *broker.Broker
	upgrader websocket.Upgrader
}

func NewHandler(events *broker.Broker, upgrader websocket.Upgrader) *Handler {
	return &Handler{
		events:   events,
		upgrader: upgrader,
	}
}

func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	paperUpdates := h.events.Subscribe(broker.TopicPaperUpdated)
	defer h.events.Unsubscribe(broker.TopicPaperUpdated, paperUpdates)
	leaderboardUpdates := h.events.Subscribe(broker.TopicLeaderboardUpdated)
	defer h.events.Unsubscribe(broker.TopicLeaderboardUpdated, leaderboardUpdates)

	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-paperUpdates:
			if !ok {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				log.Error().Err(err).Msg("failed to send paper update")
				return
			}
		case event, ok := <-leaderboardUpdates:
			if !ok {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				log.Error().Err(err).Msg("failed to send leaderboard update")
				return
			}
		}
	}
}
