package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/talkincode/latencyglobe/internal/session"
	"github.com/talkincode/latencyglobe/internal/webserver"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Same-origin dashboard, no cross-site credentials involved
	CheckOrigin: func(r *http.Request) bool { return true },
}

const (
	writeTimeout = 10 * time.Second
	pingInterval = 30 * time.Second
)

func registerStreamRoutes() {
	webserver.ApiGET("/stream", getStream)
}

// getStream upgrades to a websocket and pushes one frame per view
// recomputation: filter changes, search commits and batch refreshes all
// land here through the view topic.
func getStream(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	sess := GetSession(c)
	frames := make(chan session.ViewEvent, 8)
	handler := func(ev session.ViewEvent) {
		select {
		case frames <- ev:
		default:
			// Slow consumer: drop the frame, the next recomputation
			// supersedes it anyway
		}
	}
	if err := sess.Bus().Subscribe(session.TopicView, handler); err != nil {
		conn.Close()
		return err
	}

	defer func() {
		if err := sess.Bus().Unsubscribe(session.TopicView, handler); err != nil {
			zap.L().Warn("stream unsubscribe failed", zap.Error(err))
		}
		conn.Close()
	}()

	// Reader goroutine only consumes control frames and detects close
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// Initial frame so a new client renders without waiting for a change
	initial := session.ViewEvent{
		BatchID:     sess.Batch().ID,
		GeneratedAt: sess.Batch().GeneratedAt,
		View:        sess.View(),
		Metrics:     sess.Metrics(),
	}
	if err := writeFrame(conn, initial); err != nil {
		return nil
	}

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return nil
		case ev := <-frames:
			if err := writeFrame(conn, ev); err != nil {
				return nil
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		}
	}
}

func writeFrame(conn *websocket.Conn, ev session.ViewEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteMessage(websocket.TextMessage, payload)
}
