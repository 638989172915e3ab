package llm

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/config"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/domain"
	"github.com/pkg/errors"
)

const systemPrompt = `Você é o assistente interno do Ad Intelligence Hub. ` +
	`Responda perguntas sobre criativos de concorrentes, métricas de marketing ` +
	`e KPIs usando o contexto da conversa. Seja direto e responda em português.`

// CompletionResult carrega a resposta do modelo e os metadados de uso
type CompletionResult struct {
	Text         string
	Model        string
	InputTokens  int64
	OutputTokens int64
}

// Completer define a dependência de completions do assistente de chat.
// O cliente é stateless e pode ser recriado a qualquer momento.
type Completer interface {
	Complete(ctx context.Context, messages []domain.ChatMessage) (*CompletionResult, error)
}

type Client struct {
	cfg       *config.Config
	anthropic anthropic.Client
}

func NewClient(cfg *config.Config) *Client {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.Anthropic.APIKey),
	)

	return &Client{
		cfg:       cfg,
		anthropic: client,
	}
}

// Complete envia o histórico da conversa e retorna a resposta do modelo
func (c *Client) Complete(ctx context.Context, messages []domain.ChatMessage) (*CompletionResult, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.cfg.Anthropic.Model),
		MaxTokens: int64(c.cfg.Anthropic.MaxTokens),
		Messages:  toAnthropicMessages(messages),
		System: []anthropic.TextBlockParam{
			{
				Type: "text",
				Text: systemPrompt,
			},
		},
	}

	response, err := c.anthropic.Messages.New(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao chamar a API de completions")
	}

	var text string
	for _, block := range response.Content {
		if textBlock, ok := block.AsAny().(anthropic.TextBlock); ok {
			text += textBlock.Text
		}
	}

	return &CompletionResult{
		Text:         text,
		Model:        string(response.Model),
		InputTokens:  response.Usage.InputTokens,
		OutputTokens: response.Usage.OutputTokens,
	}, nil
}

func toAnthropicMessages(messages []domain.ChatMessage) []anthropic.MessageParam {
	params := make([]anthropic.MessageParam, 0, len(messages))

	for _, msg := range messages {
		switch msg.Role {
		case domain.ChatRoleAssistant:
			params = append(params, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			params = append(params, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}

	return params
}
