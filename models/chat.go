package models

// ChatTurn is one exchange in an assistant conversation.
type ChatTurn struct {
	Role string `json:"role"` // "user" or "assistant"
	Text string `json:"text"`
}

// ChatContext is the rolling conversation state kept per chat session.
type ChatContext struct {
	Turns []ChatTurn `json:"turns"`
}
