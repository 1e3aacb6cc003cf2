package dto

// ChatRequest is the body of POST /api/chat
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the backend answer relayed by POST /api/chat.
// Documentation only; the handler passes the backend bytes through unchanged.
type ChatResponse struct {
	Response string        `json:"response"`
	Sources  []interface{} `json:"sources,omitempty"`
}

// ErrorResponse is the error body of every endpoint. Response is set only by
// the chat proxy, carrying the text the UI shows in place of an answer.
type ErrorResponse struct {
	Error    string `json:"error"`
	Response string `json:"response,omitempty"`
}
