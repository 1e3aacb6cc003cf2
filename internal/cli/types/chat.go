package types

// ChatRequest is the body of POST /api/chat
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the answer relayed from the chat backend.
// Sources are citation objects whose shape the backend decides.
type ChatResponse struct {
	Response string                   `json:"response"`
	Sources  []map[string]interface{} `json:"sources,omitempty"`
}

// ErrorResponse is the error body returned by the proxy
type ErrorResponse struct {
	Error    string `json:"error"`
	Response string `json:"response,omitempty"`
}
