package router

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/logger"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/middlewares"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/models"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/services"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamTracking upgrades the request and pushes the session's events to the client,
// starting with the current snapshot. The subscription is taken before the snapshot
// so no event falls between them. The stream ends when the session stops.
func StreamTracking(w http.ResponseWriter, r *http.Request) {
	orderID, ok := orderIDParam(w, r)
	if !ok {
		return
	}

	viewer, ok := middlewares.GetViewerFromContext(w, r)
	if !ok {
		return
	}

	trackingService := middlewares.GetServiceFromContext[models.TrackingService](w, r, middlewares.TrackingServiceKey)
	if trackingService == nil {
		return
	}

	events, unsubscribe, err := (*trackingService).Subscribe(viewer, orderID)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			http.Error(w, fmt.Sprintf("Order %s is not tracked", orderID), http.StatusNotFound)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during subscribing: %s", err.Error()), http.StatusInternalServerError)
		return
	}
	defer unsubscribe()

	snapshot, err := (*trackingService).GetSnapshot(viewer, orderID)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			http.Error(w, fmt.Sprintf("Order %s is not tracked", orderID), http.StatusNotFound)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during getting snapshot: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Warn("websocket upgrade failed", zap.String("orderID", orderID), zap.Error(err))
		return
	}
	defer conn.Close()

	done := make(chan struct{})
	go readPump(conn, done)

	if err := writeEvent(conn, models.TrackingEvent{Type: models.EventSnapshot, Snapshot: snapshot}); err != nil {
		return
	}

	writePump(conn, events, done)
}

// readPump discards client messages and keeps the read deadline fresh on pongs.
// done is closed once the client goes away.
func readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writePump(conn *websocket.Conn, events <-chan models.TrackingEvent, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "tracking stopped"))
				return
			}

			if err := writeEvent(conn, event); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func writeEvent(conn *websocket.Conn, event models.TrackingEvent) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))

	if err := conn.WriteJSON(event); err != nil {
		logger.Log.Debug("failed to write event", zap.String("event", string(event.Type)), zap.Error(err))
		return err
	}

	return nil
}
