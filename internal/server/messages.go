package server

// Request types accepted from clients.
const (
	RequestCreateSession = "create_session"
	RequestJoinSession   = "join_session"
	RequestPlayHand      = "play_hand"
	RequestPlayDraw      = "play_draw"
	RequestAddCard       = "add_card"
	RequestAddToDeck     = "add_to_deck"
	RequestUndo          = "undo"
	RequestReset         = "reset"
	RequestSearch        = "search"
)

// Response types sent to clients.
const (
	ResponseSessionState  = "session_state"
	ResponseSearchResults = "search_results"
	ResponseError         = "error"
)

// Request is one client command. Slot indexes address the hand or draw
// pile for play commands; Name selects a catalog entry for add commands.
type Request struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id,omitempty"`
	Slot      int    `json:"slot,omitempty"`
	Name      string `json:"name,omitempty"`
	Query     string `json:"query,omitempty"`
}

// Response is one server reply or push.
type Response struct {
	Type  string `json:"type"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}
