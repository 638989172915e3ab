package domain

import "time"

// Papéis das mensagens de chat
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage é um turno da conversa com o assistente
type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatMetadata acompanha cada resposta do assistente
type ChatMetadata struct {
	Model          string `json:"model"`
	ProcessingTime int64  `json:"processingTime"`
	TokensUsed     int64  `json:"tokensUsed"`
}

// ChatResponse é o envelope da resposta do assistente
type ChatResponse struct {
	Response  string       `json:"response"`
	SessionID string       `json:"sessionId"`
	MessageID string       `json:"messageId"`
	Timestamp time.Time    `json:"timestamp"`
	Metadata  ChatMetadata `json:"metadata"`
}

// Tipos de chunk emitidos pelo endpoint de streaming
const (
	ChatChunkContent  = "content"
	ChatChunkToolCall = "tool_call"
	ChatChunkError    = "error"
)

// ChatStreamChunk é um fragmento enviado via text/event-stream
type ChatStreamChunk struct {
	Content  string        `json:"content"`
	Type     string        `json:"type"`
	Metadata *ChatMetadata `json:"metadata,omitempty"`
}
