package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"delishub/config"
	deliverycontext "delishub/internal/delivery/context"
	"delishub/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Client message types accepted on the presence socket.
const (
	messageTypeUserActive = "user-active"
	messageTypePing       = "ping"
	messageTypePong       = "pong"
	messageTypeOnline     = "online"
)

// presenceMessage is the envelope exchanged on the presence socket.
// The user is always the authenticated caller; a client never names it.
type presenceMessage struct {
	Type string `json:"type"`
}

// PresenceSocketHandler upgrades authenticated requests to the presence websocket.
type PresenceSocketHandler struct {
	presence  usecase.PresenceUsecase
	logger    *slog.Logger
	upgrader  websocket.Upgrader
	pongWait  time.Duration
	writeWait time.Duration
	readLimit int64
}

// NewPresenceSocketHandler is the constructor for PresenceSocketHandler, injected by Fx.
func NewPresenceSocketHandler(presence usecase.PresenceUsecase, cfg *config.Config, logger *slog.Logger) *PresenceSocketHandler {
	allowedOrigin := cfg.HTTP.ClientOrigin

	return &PresenceSocketHandler{
		presence: presence,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Non-browser clients send no Origin header.
				origin := r.Header.Get("Origin")
				return origin == "" || origin == allowedOrigin
			},
		},
		pongWait:  cfg.Presence.PongWait,
		writeWait: cfg.Presence.WriteWait,
		readLimit: cfg.Presence.ReadLimit,
	}
}

// Serve runs one presence connection until the client leaves or stops answering pings.
func (h *PresenceSocketHandler) Serve(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already written the HTTP error.
		h.logger.Warn("Presence upgrade failed", slog.Any("error", err))
		return nil
	}

	// The connection outlives the HTTP exchange once hijacked.
	ctx := context.WithoutCancel(c.Request().Context())
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger).With(
		slog.String("user_id", userID.String()),
	)
	connID := uuid.NewString()

	done := make(chan struct{})
	defer func() {
		close(done)
		h.presence.Disconnect(ctx, connID)
		if err := conn.Close(); err != nil {
			logger.Debug("Presence connection close failed", slog.Any("error", err))
		}
	}()

	if err := h.presence.Attach(ctx, userID, connID, h.evictor(conn)); err != nil {
		logger.Info("Presence session refused", slog.Any("error", err))
		h.closeWith(conn, websocket.ClosePolicyViolation, "account no longer exists")
		return nil
	}

	go h.keepAlive(conn, done)

	h.readLoop(ctx, conn, logger, userID, connID)

	return nil
}

func (h *PresenceSocketHandler) readLoop(ctx context.Context, conn *websocket.Conn, logger *slog.Logger, userID uuid.UUID, connID string) {
	conn.SetReadLimit(h.readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(h.pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.pongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Info("Presence connection closed unexpectedly", slog.Any("error", err))
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(h.pongWait))

		var msg presenceMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Debug("Ignoring malformed presence message", slog.Any("error", err))
			continue
		}

		var reply string
		switch msg.Type {
		case messageTypeUserActive:
			h.presence.Connect(ctx, userID, connID)
			reply = messageTypeOnline
		case messageTypePing:
			reply = messageTypePong
		default:
			continue
		}

		if err := h.write(conn, presenceMessage{Type: reply}); err != nil {
			logger.Info("Presence write failed", slog.Any("error", err))
			return
		}
	}
}

// keepAlive pings the peer so a silent client is detected within pongWait.
// WriteControl is safe to call concurrently with the reader's writes.
func (h *PresenceSocketHandler) keepAlive(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(h.pongWait * 9 / 10)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(h.writeWait)); err != nil {
				return
			}
		}
	}
}

// evictor closes the socket from outside the read loop, which then unwinds on its read error.
func (h *PresenceSocketHandler) evictor(conn *websocket.Conn) func() {
	return func() {
		h.closeWith(conn, websocket.ClosePolicyViolation, "account deleted")
		_ = conn.Close()
	}
}

func (h *PresenceSocketHandler) closeWith(conn *websocket.Conn, code int, reason string) {
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), time.Now().Add(h.writeWait))
}

func (h *PresenceSocketHandler) write(conn *websocket.Conn, msg presenceMessage) error {
	if err := conn.SetWriteDeadline(time.Now().Add(h.writeWait)); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(conn.WriteJSON(msg))
}
