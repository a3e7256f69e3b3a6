package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-deliveries/internal/logger"
	"github.com/gorilla/websocket"
)

const wsWriteTimeout = 10 * time.Second

// streamNotices relays delivery notices to a websocket client. Each session
// holds its own subscription, so every client sees every notice published
// while it is connected. Frames carry the notice ciphertext as text.
func (h *Handler) streamNotices(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// subscribe first so a broker failure is still an ordinary HTTP error
	sub, err := h.services.NoticeService.Subscribe(ctx)
	if err != nil {
		h.respondError(w, r, "*Handler.streamNotices", err)
		return
	}
	defer sub.Close()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already answered the client
		log.Warn().Err(err).Str("func", "*Handler.streamNotices").Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	log.Info().Msg("websocket session opened")

	// the hijacked connection no longer cancels r.Context, so a reader
	// loop watches for the client going away
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
			log.Info().Msg("websocket session closed")
			return
		case notice, ok := <-sub.Notices():
			if !ok {
				closeSession(conn, websocket.CloseGoingAway, "notice stream ended")
				return
			}

			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(notice.Payload)); err != nil {
				log.Warn().Err(err).Str("func", "*Handler.streamNotices").Msg("error writing notice, closing session")
				return
			}
		}
	}
}

func closeSession(conn *websocket.Conn, code int, text string) {
	msg := websocket.FormatCloseMessage(code, text)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
}
