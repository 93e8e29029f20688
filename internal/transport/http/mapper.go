package http

import (
	"encoding/json"

	"github.com/akulagin/codeshare-server/internal/core"
	"github.com/akulagin/codeshare-server/internal/proto"
)

type inboundKind int

const (
	inboundEdit inboundKind = iota
	inboundIgnore
)

// inboundAction is what the read loop should do with a structured frame.
type inboundAction struct {
	kind inboundKind
	code string
}

// parseInbound interprets a structured frame from the client. The second
// return is false for payloads that cannot be interpreted at all: non-JSON
// text, or a recognized event missing its required fields.
func parseInbound(raw []byte) (inboundAction, bool) {
	var msg struct {
		Event string  `json:"event"`
		Code  *string `json:"code"`
	}
	if err := json.Unmarshal(raw, &msg); err != nil {
		return inboundAction{}, false
	}

	switch msg.Event {
	case proto.EventEdit:
		if msg.Code == nil {
			return inboundAction{}, false
		}
		return inboundAction{kind: inboundEdit, code: *msg.Code}, true
	default:
		return inboundAction{kind: inboundIgnore}, true
	}
}

func outboundFromEvent(ev *core.Event) proto.Message {
	switch ev.Kind {
	case core.EventJoined:
		return proto.Message{Event: proto.EventJoin, User: ev.User}
	case core.EventLeft:
		return proto.Message{Event: proto.EventLeave, User: ev.User}
	case core.EventEdited:
		return proto.Message{Event: proto.EventEdit, User: ev.User, Code: &ev.Code}
	case core.EventCodeSync:
		return proto.Message{Event: proto.EventCodeSync, Code: &ev.Code}
	case core.EventUsersSync:
		return proto.Message{Event: proto.EventUsersSync, Users: ev.Users}
	case core.EventMalformed:
		return proto.Message{Event: proto.EventMalformed, Error: ev.Err}
	default:
		return proto.Message{Event: proto.EventError, Error: ev.Err}
	}
}
