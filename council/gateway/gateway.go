package gateway

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/frankwear858/ai-council/council/contract"
	openrouterx "github.com/frankwear858/ai-council/pkg/openrouter"
)

// Model adapts an eino chat model to the council's Gateway contract:
// one generation per call, assembled as system + prior turns + user.
// Timeout enforcement lives in the underlying model's HTTP client.
type Model struct {
	chat einomodel.BaseChatModel
}

var _ contractx.Gateway = (*Model)(nil)

func New(chat einomodel.BaseChatModel) (*Model, error) {
	if chat == nil {
		return nil, fmt.Errorf("%w: chat model is required", contractx.ErrValidation)
	}
	return &Model{chat: chat}, nil
}

// NewFromConfig builds the OpenRouter chat model and wraps it.
func NewFromConfig(ctx context.Context, cfg openrouterx.Config) (*Model, error) {
	chat, err := cfg.New(ctx)
	if err != nil {
		return nil, err
	}
	return New(chat)
}

func (m *Model) Generate(ctx context.Context, system string, user string, history []*schema.Message) (string, error) {
	messages := make([]*schema.Message, 0, len(history)+2)
	messages = append(messages, schema.SystemMessage(system))
	messages = append(messages, history...)
	messages = append(messages, schema.UserMessage(user))

	msg, err := m.chat.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("%w: generate: %v", contractx.ErrInference, err)
	}
	if msg == nil {
		return "", fmt.Errorf("%w: model returned nil message", contractx.ErrInference)
	}

	// Empty content is a valid (if useless) generation, not a transport
	// failure: a judge verdict with no text still resolves via the
	// fallback, and a member's empty answer is recorded verbatim.
	return strings.TrimSpace(msg.Content), nil
}
