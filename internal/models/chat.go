package models

// ChatRequest is the payload for POST /api/chat/.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is what the chat endpoint returns. Degraded is true when an
// upstream failed and Response carries the canned apology instead of a
// grounded answer; the HTTP status stays 200 either way.
type ChatResponse struct {
	Response string `json:"response"`
	Degraded bool   `json:"degraded"`
}
