package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/config"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/domain"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/usecases/chatting"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/pkg/apiErrors"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/pkg/log"
)

// chatRequest é o corpo aceito por POST /api/chat e /api/chat/stream
type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
	Context   string `json:"context"`
}

// SendChatMessage atende POST /api/chat
func SendChatMessage(service chatting.Chatter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request chatRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("chat: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "corpo JSON inválido", nil)
			return
		}

		response, err := service.Send(r.Context(), request.SessionID, request.UserID, request.Message)
		if err != nil {
			logger.WithError(err).Error("chat: falha ao processar mensagem")
			apiErrors.WriteError(w, chatting.CodeForError(err), err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("chat: falha ao serializar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ChatStatus atende GET /api/chat com liveness e configuração do assistente
func ChatStatus(service chatting.Chatter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(service.Status())
	})
}

// ClearChatSession atende DELETE /api/chat?sessionId=
func ClearChatSession(service chatting.Chatter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("sessionId")
		if sessionID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "sessionId é obrigatório", nil)
			return
		}

		service.ClearSession(sessionID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"cleared": true, "sessionId": sessionID})
	})
}

// StreamChatMessage atende POST /api/chat/stream via text/event-stream.
// A resposta completa do modelo é decomposta em chunks por palavra, com um
// atraso fixo entre chunks para ritmo de UI.
func StreamChatMessage(service chatting.Chatter, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request chatRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("chat: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "corpo JSON inválido", nil)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "streaming não suportado", nil)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		response, err := service.Send(r.Context(), request.SessionID, request.UserID, request.Message)
		if err != nil {
			logger.WithError(err).Error("chat: falha ao processar mensagem no streaming")
			writeStreamChunk(w, flusher, domain.ChatStreamChunk{
				Content: err.Error(),
				Type:    domain.ChatChunkError,
			})
			return
		}

		delay := time.Duration(cfg.Chat.StreamDelayMillis) * time.Millisecond
		chunks := chatting.ChunkWords(response.Response)

		for i, chunk := range chunks {
			streamChunk := domain.ChatStreamChunk{
				Content: chunk,
				Type:    domain.ChatChunkContent,
			}

			// Último chunk leva os metadados da resposta
			if i == len(chunks)-1 {
				metadata := response.Metadata
				streamChunk.Metadata = &metadata
			}

			writeStreamChunk(w, flusher, streamChunk)

			if i < len(chunks)-1 {
				select {
				case <-r.Context().Done():
					return
				case <-time.After(delay):
				}
			}
		}
	})
}

func writeStreamChunk(w http.ResponseWriter, flusher http.Flusher, chunk domain.ChatStreamChunk) {
	payload, err := json.Marshal(chunk)
	if err != nil {
		return
	}

	fmt.Fprintf(w, "data: %s\n\n", payload)
	flusher.Flush()
}
