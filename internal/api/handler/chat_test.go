package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/config"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/domain"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/usecases/chatting"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
)

// fakeChatter devolve uma resposta fixa e registra a sessão limpa
type fakeChatter struct {
	response *domain.ChatResponse
	err      error
	status   chatting.Status

	cleared string
}

func (f *fakeChatter) Send(_ context.Context, sessionID, userID, message string) (*domain.ChatResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func (f *fakeChatter) ClearSession(sessionID string) {
	f.cleared = sessionID
}

func (f *fakeChatter) Status() chatting.Status {
	return f.status
}

func chatResponse(text string) *domain.ChatResponse {
	return &domain.ChatResponse{
		Response:  text,
		SessionID: "session-1",
		MessageID: "msg-1",
		Timestamp: time.Now(),
		Metadata: domain.ChatMetadata{
			Model:          "claude-3-5-haiku-latest",
			ProcessingTime: 120,
			TokensUsed:     55,
		},
	}
}

func TestSendChatMessage(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		service    *fakeChatter
		wantStatus int
		validate   func(t *testing.T, body map[string]any)
	}{
		{
			name:       "Mensagem válida - devolve a resposta com metadados",
			body:       `{"message": "Quais as taxas da Stone?", "sessionId": "session-1"}`,
			service:    &fakeChatter{response: chatResponse("A Stone cobra 2,5% no crédito.")},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "A Stone cobra 2,5% no crédito.", body["response"])
				assert.Equal(t, "session-1", body["sessionId"])

				metadata := body["metadata"].(map[string]any)
				assert.Equal(t, "claude-3-5-haiku-latest", metadata["model"])
				assert.Equal(t, float64(55), metadata["tokensUsed"])
			},
		},
		{
			name:       "Corpo inválido - 400 VAL_001",
			body:       `{invalid`,
			service:    &fakeChatter{},
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body map[string]any) {
				apiErr := body["error"].(map[string]any)
				assert.Equal(t, "VAL_001", apiErr["code"])
			},
		},
		{
			name: "Mensagem vazia - 400 VAL_002",
			body: `{"message": ""}`,
			service: &fakeChatter{
				err: chatting.NewChatError(chatting.ErrEmptyMessage, apiErrors.ErrMissingRequiredData, "o campo message é obrigatório"),
			},
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body map[string]any) {
				apiErr := body["error"].(map[string]any)
				assert.Equal(t, "VAL_002", apiErr["code"])
			},
		},
		{
			name: "Credencial ausente - 500 SRV_003",
			body: `{"message": "olá"}`,
			service: &fakeChatter{
				err: chatting.NewChatError(chatting.ErrMissingCredentials, apiErrors.ErrMissingConfig, ""),
			},
			wantStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, body map[string]any) {
				apiErr := body["error"].(map[string]any)
				assert.Equal(t, "SRV_003", apiErr["code"])
			},
		},
		{
			name: "Falha upstream - 502 SRV_004",
			body: `{"message": "olá"}`,
			service: &fakeChatter{
				err: chatting.NewChatError(chatting.ErrUpstreamFailure, apiErrors.ErrExternalService, "overloaded_error"),
			},
			wantStatus: http.StatusBadGateway,
			validate: func(t *testing.T, body map[string]any) {
				apiErr := body["error"].(map[string]any)
				assert.Equal(t, "SRV_004", apiErr["code"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()

			SendChatMessage(tt.service).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var body map[string]any
			assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			tt.validate(t, body)
		})
	}
}

func TestChatStatus(t *testing.T) {
	service := &fakeChatter{
		status: chatting.Status{
			Enabled:        true,
			Model:          "claude-3-5-haiku-latest",
			ActiveSessions: 3,
		},
	}

	request := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	recorder := httptest.NewRecorder()

	ChatStatus(service).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, true, body["enabled"])
	assert.Equal(t, float64(3), body["active_sessions"])
}

func TestClearChatSession(t *testing.T) {
	t.Run("Com sessionId - limpa e confirma", func(t *testing.T) {
		service := &fakeChatter{}

		request := httptest.NewRequest(http.MethodDelete, "/api/chat?sessionId=session-1", nil)
		recorder := httptest.NewRecorder()

		ClearChatSession(service).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "session-1", service.cleared)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, true, body["cleared"])
		assert.Equal(t, "session-1", body["sessionId"])
	})

	t.Run("Sem sessionId - 400", func(t *testing.T) {
		service := &fakeChatter{}

		request := httptest.NewRequest(http.MethodDelete, "/api/chat", nil)
		recorder := httptest.NewRecorder()

		ClearChatSession(service).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Empty(t, service.cleared)
	})
}

func TestStreamChatMessage(t *testing.T) {
	cfg := &config.Config{
		Chat: config.Chat{StreamDelayMillis: 0},
	}

	t.Run("Resposta em chunks por palavra, metadados no último", func(t *testing.T) {
		service := &fakeChatter{response: chatResponse("taxa zero no débito")}

		request := httptest.NewRequest(http.MethodPost, "/api/chat/stream", strings.NewReader(`{"message": "olá"}`))
		recorder := httptest.NewRecorder()

		StreamChatMessage(service, cfg).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "text/event-stream", recorder.Header().Get("Content-Type"))

		chunks := decodeStreamChunks(t, recorder.Body.String())
		assert.Len(t, chunks, 4)

		var rebuilt strings.Builder
		for _, chunk := range chunks {
			assert.Equal(t, domain.ChatChunkContent, chunk.Type)
			rebuilt.WriteString(chunk.Content)
		}
		assert.Equal(t, "taxa zero no débito", rebuilt.String())

		// Só o último chunk carrega os metadados
		assert.Nil(t, chunks[0].Metadata)
		assert.NotNil(t, chunks[3].Metadata)
		assert.Equal(t, "claude-3-5-haiku-latest", chunks[3].Metadata.Model)
	})

	t.Run("Erro do serviço - um único chunk de erro", func(t *testing.T) {
		service := &fakeChatter{
			err: chatting.NewChatError(chatting.ErrUpstreamFailure, apiErrors.ErrExternalService, "overloaded_error"),
		}

		request := httptest.NewRequest(http.MethodPost, "/api/chat/stream", strings.NewReader(`{"message": "olá"}`))
		recorder := httptest.NewRecorder()

		StreamChatMessage(service, cfg).ServeHTTP(recorder, request)

		chunks := decodeStreamChunks(t, recorder.Body.String())
		assert.Len(t, chunks, 1)
		assert.Equal(t, domain.ChatChunkError, chunks[0].Type)
	})

	t.Run("Corpo inválido - 400 antes de abrir o stream", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/api/chat/stream", strings.NewReader(`{invalid`))
		recorder := httptest.NewRecorder()

		StreamChatMessage(&fakeChatter{}, cfg).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func decodeStreamChunks(t *testing.T, raw string) []domain.ChatStreamChunk {
	t.Helper()

	var chunks []domain.ChatStreamChunk
	for _, line := range strings.Split(raw, "\n") {
		if !strings.HasPrefix(line, "data: ") {
			continue
		}

		var chunk domain.ChatStreamChunk
		assert.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &chunk))
		chunks = append(chunks, chunk)
	}

	return chunks
}
