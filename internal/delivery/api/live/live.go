// Package live streams live query snapshots to browsers over websockets.
package live

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/forcollegesake07/food-bridge/config"
	deliverycontext "github.com/forcollegesake07/food-bridge/internal/delivery/context"
	"github.com/forcollegesake07/food-bridge/internal/usecase"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
)

// MessageType identifies a websocket frame.
type MessageType string

const (
	MessageSnapshot MessageType = "snapshot"
	MessagePing     MessageType = "ping"
	MessagePong     MessageType = "pong"
)

// Message is the JSON frame exchanged with the client.
type Message struct {
	Type MessageType `json:"type"`
	Data any         `json:"data,omitempty"`
}

// SubscribeFunc starts a live query whose snapshots are handed to publish.
type SubscribeFunc func(ctx context.Context, publish func(any)) (usecase.Subscription, error)

// Streamer upgrades requests and pumps live query snapshots to the connection.
type Streamer struct {
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewStreamer creates a Streamer accepting the configured CORS origins.
func NewStreamer(cfg *config.Config, logger *slog.Logger) *Streamer {
	origins := cfg.HTTP.AllowedOrigins

	return &Streamer{
		upgrader: websocket.Upgrader{
			ReadBufferSize:   1024,
			WriteBufferSize:  1024,
			HandshakeTimeout: writeWait,
			CheckOrigin: func(r *http.Request) bool {
				return originAllowed(origins, r.Header.Get("Origin"))
			},
		},
		logger: logger,
	}
}

func originAllowed(allowed []string, origin string) bool {
	if origin == "" || len(allowed) == 0 || slices.Contains(allowed, "*") {
		return true
	}

	return slices.Contains(allowed, origin)
}

// Stream serves one websocket connection until the client leaves. Only the most
// recent snapshot is kept when the client reads slower than the query changes.
func (s *Streamer) Stream(c echo.Context, subscribe SubscribeFunc) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), s.logger)

	conn, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader already answered with an HTTP error.
		logger.Debug("[Live] Upgrade failed", slog.Any("error", err))

		return nil
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	latest := make(chan any, 1)
	publish := func(v any) {
		select {
		case <-latest:
		default:
		}
		latest <- v
	}

	sub, err := subscribe(ctx, publish)
	if err != nil {
		logger.Warn("[Live] Subscription failed", slog.Any("error", err))
		closeWith(conn, websocket.CloseInternalServerErr, "subscription failed")

		return nil
	}
	defer sub.Unsubscribe()

	pongs := make(chan struct{}, 1)
	go readLoop(conn, cancel, pongs, logger)
	writeLoop(ctx, conn, latest, pongs, logger)

	return nil
}

func readLoop(conn *websocket.Conn, cancel context.CancelFunc, pongs chan<- struct{}, logger *slog.Logger) {
	defer cancel()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				logger.Debug("[Live] Connection closed unexpectedly", slog.Any("error", err))
			}

			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))

		if msg.Type == MessagePing {
			select {
			case pongs <- struct{}{}:
			default:
			}
		}
	}
}

func writeLoop(ctx context.Context, conn *websocket.Conn, latest <-chan any, pongs <-chan struct{}, logger *slog.Logger) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			closeWith(conn, websocket.CloseNormalClosure, "")

			return
		case data := <-latest:
			if err := writeJSON(conn, Message{Type: MessageSnapshot, Data: data}); err != nil {
				logger.Debug("[Live] Failed to write snapshot", slog.Any("error", err))

				return
			}
		case <-pongs:
			if err := writeJSON(conn, Message{Type: MessagePong}); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

func writeJSON(conn *websocket.Conn, msg Message) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return conn.WriteJSON(msg)
}

func closeWith(conn *websocket.Conn, code int, text string) {
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), time.Now().Add(writeWait))
}
