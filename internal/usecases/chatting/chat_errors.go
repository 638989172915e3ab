package chatting

import (
	"errors"
	"fmt"

	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/pkg/apiErrors"
)

// Erros do assistente de chat
var (
	ErrMissingCredentials = errors.New("credencial da API de completions ausente")
	ErrEmptyMessage       = errors.New("mensagem vazia")
	ErrUpstreamFailure    = errors.New("falha no serviço de completions")
)

// ChatError carrega o código de API junto do erro base
type ChatError struct {
	Err     error
	Code    string
	Details string
}

func (e *ChatError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ChatError) Unwrap() error {
	return e.Err
}

func NewChatError(err error, code string, details string) *ChatError {
	return &ChatError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// CodeForError traduz um erro do chat para o código de API correspondente
func CodeForError(err error) string {
	var chatErr *ChatError
	if errors.As(err, &chatErr) {
		return chatErr.Code
	}

	switch {
	case errors.Is(err, ErrMissingCredentials):
		return apiErrors.ErrMissingConfig
	case errors.Is(err, ErrEmptyMessage):
		return apiErrors.ErrMissingRequiredData
	case errors.Is(err, ErrUpstreamFailure):
		return apiErrors.ErrExternalService
	default:
		return apiErrors.ErrInternalServer
	}
}
