package http

import (
	"context"
	"errors"
	"io"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/akulagin/codeshare-server/internal/core"
	"github.com/akulagin/codeshare-server/internal/proto"
	"github.com/akulagin/codeshare-server/internal/store"
)

// WSHandler upgrades HTTP connections on /ws/:room_id and drives the
// session protocol: room lookup, raw-nickname handshake, join, edit loop,
// leave on disconnect.
type WSHandler struct {
	sessions  *core.SessionManager
	directory store.Directory
	log       *zerolog.Logger
}

// NewWSHandler builds a new WebSocket handler.
func NewWSHandler(sessions *core.SessionManager, directory store.Directory, logger *zerolog.Logger) *WSHandler {
	return &WSHandler{sessions: sessions, directory: directory, log: logger}
}

// Handle runs one connection's session from accept to teardown.
func (h *WSHandler) Handle(c *gin.Context) {
	roomID := c.Param("room_id")

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("ws accept error")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")

	ctx := c.Request.Context()

	// A directory failure is treated the same as an unknown room: the peer
	// gets a single error event and the channel closes.
	if _, err := h.directory.GetRoomByID(ctx, roomID); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			h.log.Error().Err(err).Str("room", roomID).Msg("room lookup failed")
		}
		_ = wsjson.Write(ctx, conn, proto.Message{Event: proto.EventError, Error: core.MsgRoomNotFound})
		conn.Close(websocket.StatusNormalClosure, "room not found")
		return
	}

	// Handshake: the first inbound frame is the raw nickname, not JSON.
	_, raw, err := conn.Read(ctx)
	if err != nil {
		h.log.Debug().Err(err).Str("room", roomID).Msg("connection closed before handshake")
		return
	}
	nickname := string(raw)

	client := core.NewClient(roomID, nickname)
	h.sessions.Join(roomID, client)

	// Roster persistence is best-effort; the live session proceeds regardless.
	if err := h.directory.AppendRoster(ctx, roomID, nickname); err != nil {
		h.log.Warn().Err(err).Str("room", roomID).Str("user", nickname).Msg("roster append failed")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)
	go func() {
		errCh <- h.readLoop(ctx, conn, client)
	}()
	go func() {
		errCh <- h.writeLoop(ctx, conn, client)
	}()

	err = <-errCh
	cancel()
	client.Close()
	h.sessions.Leave(roomID, client)
	<-errCh

	status := websocket.StatusNormalClosure
	reason := "closing"
	if err != nil && !errors.Is(err, context.Canceled) {
		if errors.Is(err, io.EOF) {
			err = nil
		}
		if s := websocket.CloseStatus(err); s != 0 {
			status = s
		}
		if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
			err = nil
		}
		if err != nil {
			if status == websocket.StatusNormalClosure {
				status = websocket.StatusInternalError
			}
			reason = err.Error()
			h.log.Debug().Err(err).Str("room", roomID).Str("user", nickname).Msg("ws connection closed with error")
		}
	}

	conn.Close(status, reason)
}

func (h *WSHandler) readLoop(ctx context.Context, conn *websocket.Conn, client *core.Client) error {
	for {
		_, raw, err := conn.Read(ctx)
		if err != nil {
			return err
		}

		action, ok := parseInbound(raw)
		if !ok {
			// Diagnostic goes to the sender alone; the session continues.
			h.log.Debug().Str("room", client.Room).Str("user", client.Nickname).Msg("malformed message dropped")
			client.Deliver(&core.Event{Kind: core.EventMalformed, Err: "malformed message"})
			continue
		}

		switch action.kind {
		case inboundEdit:
			h.sessions.Edit(client.Room, client, action.code)
		case inboundIgnore:
			// Unknown event types are a no-op for forward compatibility.
		}
	}
}

func (h *WSHandler) writeLoop(ctx context.Context, conn *websocket.Conn, client *core.Client) error {
	for {
		select {
		case ev := <-client.Events():
			if err := wsjson.Write(ctx, conn, outboundFromEvent(ev)); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

