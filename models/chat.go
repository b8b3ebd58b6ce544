package models

// ChatRequest is the payload coming from the chat widget into /api/chat.
type ChatRequest struct {
	ChatID string `json:"chatId"` // per-widget conversation identifier
	Text   string `json:"text"`   // user's typed message
}

// ChatTurn is one message of a stored conversation.
type ChatTurn struct {
	Role string `json:"role"` // "user" or "bot"
	Text string `json:"text"`
}

// ChatResponse is what the chat handler returns to the widget.
type ChatResponse struct {
	Reply    string   `json:"reply"`
	Actions  []string `json:"actions,omitempty"`  // quick-action suggestions
	Navigate string   `json:"navigate,omitempty"` // client route, e.g. "/booking"
	Offline  bool     `json:"offline,omitempty"`  // fallback reply was served
}
