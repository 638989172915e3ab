package chatting

import (
	"context"
	"strings"
	"time"

	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/infrastructure/integrator/llm"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/config"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/domain"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/pkg/apiErrors"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/pkg/log"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/pkg/utils"
	"github.com/google/uuid"
)

// Status é o payload de liveness/configuração do assistente
type Status struct {
	Enabled        bool   `json:"enabled"`
	Model          string `json:"model"`
	ActiveSessions int    `json:"active_sessions"`
}

// Chatter é o relay de chat: histórico em memória + completions upstream
type Chatter interface {
	Send(ctx context.Context, sessionID, userID, message string) (*domain.ChatResponse, error)
	ClearSession(sessionID string)
	Status() Status
}

type Service struct {
	cfg       *config.Config
	completer llm.Completer
	sessions  *SessionStore
}

func NewService(cfg *config.Config, completer llm.Completer, sessions *SessionStore) *Service {
	return &Service{
		cfg:       cfg,
		completer: completer,
		sessions:  sessions,
	}
}

// Send encaminha a mensagem ao modelo com o histórico da sessão e devolve a
// resposta. Falhas upstream não são retentadas.
func (s *Service) Send(ctx context.Context, sessionID, userID, message string) (*domain.ChatResponse, error) {
	if strings.TrimSpace(message) == "" {
		return nil, NewChatError(ErrEmptyMessage, apiErrors.ErrMissingRequiredData, "o campo message é obrigatório")
	}

	if !s.cfg.HasAnthropicCredentials() {
		return nil, NewChatError(ErrMissingCredentials, apiErrors.ErrMissingConfig, "ANTHROPIC_API_KEY não configurada")
	}

	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	start := time.Now()

	history := s.sessions.Append(sessionID, domain.ChatMessage{
		Role:      domain.ChatRoleUser,
		Content:   message,
		Timestamp: start,
	})

	result, err := s.completer.Complete(ctx, trimContext(history, s.cfg.Chat.ContextMessages))
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("session_id", sessionID).Error("chat: falha na chamada de completions")
		return nil, NewChatError(ErrUpstreamFailure, apiErrors.ErrExternalService, err.Error())
	}

	s.sessions.Append(sessionID, domain.ChatMessage{
		Role:      domain.ChatRoleAssistant,
		Content:   result.Text,
		Timestamp: time.Now(),
	})

	messageID, err := utils.GenerateID()
	if err != nil {
		messageID = uuid.New().String()
	}

	response := &domain.ChatResponse{
		Response:  result.Text,
		SessionID: sessionID,
		MessageID: messageID,
		Timestamp: time.Now(),
		Metadata: domain.ChatMetadata{
			Model:          result.Model,
			ProcessingTime: time.Since(start).Milliseconds(),
			TokensUsed:     result.InputTokens + result.OutputTokens,
		},
	}

	if userID != "" {
		log.ForContext(ctx).WithFields(log.Fields{
			"session_id": sessionID,
			"user_id":    userID,
		}).Debug("chat: resposta gerada")
	}

	return response, nil
}

// ClearSession descarta o histórico; seguro para sessões inexistentes
func (s *Service) ClearSession(sessionID string) {
	s.sessions.Clear(sessionID)
}

func (s *Service) Status() Status {
	return Status{
		Enabled:        s.cfg.HasAnthropicCredentials(),
		Model:          s.cfg.Anthropic.Model,
		ActiveSessions: s.sessions.ActiveSessions(),
	}
}

// trimContext limita quantas mensagens vão para o modelo, preservando as
// mais recentes
func trimContext(history []domain.ChatMessage, max int) []domain.ChatMessage {
	if max <= 0 || len(history) <= max {
		return history
	}
	return history[len(history)-max:]
}

// ChunkWords decompõe a resposta em chunks por palavra para o streaming,
// preservando os espaços de separação
func ChunkWords(text string) []string {
	words := strings.Fields(text)
	chunks := make([]string, 0, len(words))

	for i, word := range words {
		if i < len(words)-1 {
			chunks = append(chunks, word+" ")
			continue
		}
		chunks = append(chunks, word)
	}

	return chunks
}
