package server

import "go.uber.org/zap"

// handleRequest dispatches one client command. Failed mutations answer
// only the requester with an error and never trigger a display refresh;
// successful ones broadcast the new state to every client of the session.
func (h *Hub) handleRequest(c *Client, req Request) {
	h.logger.Debug("handling request",
		zap.String("type", req.Type),
		zap.String("session_id", req.SessionID),
	)

	switch req.Type {
	case RequestCreateSession:
		s, err := h.sessions.Create()
		if err != nil {
			c.sendResponse(h, Response{Type: ResponseError, Error: err.Error()})
			return
		}
		c.sessionID = s.ID
		c.sendResponse(h, Response{Type: ResponseSessionState, Data: s.View()})

	case RequestJoinSession:
		s, ok := h.sessions.Get(req.SessionID)
		if !ok {
			c.sendResponse(h, Response{Type: ResponseError, Error: "unknown session"})
			return
		}
		c.sessionID = s.ID
		c.sendResponse(h, Response{Type: ResponseSessionState, Data: s.View()})

	case RequestSearch:
		c.sendResponse(h, Response{
			Type: ResponseSearchResults,
			Data: h.catalog.Search(req.Query),
		})

	case RequestPlayHand:
		h.mutate(c, func(s sessionCommands) bool { return s.PlayHandSlot(req.Slot) }, "card not in hand")

	case RequestPlayDraw:
		h.mutate(c, func(s sessionCommands) bool { return s.PlayDrawPileSlot(req.Slot) }, "card not in draw pile")

	case RequestAddCard:
		h.mutate(c, func(s sessionCommands) bool { return s.AddByName(req.Name) }, "card cannot be added")

	case RequestAddToDeck:
		h.mutate(c, func(s sessionCommands) bool { return s.AddToDeckByName(req.Name) }, "card cannot be added to deck")

	case RequestUndo:
		h.mutate(c, func(s sessionCommands) bool { return s.Undo() }, "nothing to undo")

	case RequestReset:
		h.mutate(c, func(s sessionCommands) bool { s.Reset(); return true }, "")

	default:
		c.sendResponse(h, Response{Type: ResponseError, Error: "unknown request type"})
	}
}

// sessionCommands is the mutating surface the hub drives. Matches
// *session.Session.
type sessionCommands interface {
	PlayHandSlot(i int) bool
	PlayDrawPileSlot(i int) bool
	AddByName(name string) bool
	AddToDeckByName(name string) bool
	Undo() bool
	Reset()
}

// mutate resolves the client's session, runs the command, and broadcasts
// the refreshed state only when the command succeeded.
func (h *Hub) mutate(c *Client, op func(sessionCommands) bool, failure string) {
	s, ok := h.sessions.Get(c.sessionID)
	if !ok {
		c.sendResponse(h, Response{Type: ResponseError, Error: "no session attached"})
		return
	}

	if !op(s) {
		c.sendResponse(h, Response{Type: ResponseError, Error: failure})
		return
	}

	h.broadcastSessionState(s)
}
