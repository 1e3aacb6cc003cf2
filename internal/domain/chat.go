package domain

import "context"

// ============ Types used inside the usecase layer ============

// ChatReply is a successful answer from the chat backend.
// Raw holds the backend body exactly as received so it can be relayed
// without re-encoding. Response and Sources are read from Raw when present
// with the expected types and left empty otherwise.
type ChatReply struct {
	Raw      []byte
	Response string
	Sources  []interface{}
}

// BackendClient talks to the external chat backend
type BackendClient interface {
	// Chat sends a single message and waits for the full answer
	Chat(ctx context.Context, message string) (*ChatReply, error)

	// Health checks that the backend is reachable
	Health(ctx context.Context) error
}

// ChatUsecase validates and forwards chat messages
type ChatUsecase interface {
	// Chat forwards message to the backend (one attempt, no retry)
	Chat(ctx context.Context, message string) (*ChatReply, error)
}
