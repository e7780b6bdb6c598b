package gateway

import (
	"context"
	"errors"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/frankwear858/ai-council/council/contract"
)

type fakeChatModel struct {
	response *schema.Message
	err      error
	received []*schema.Message
}

func (f *fakeChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error) {
	f.received = input
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func (f *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not implemented in fake model")
}

func TestGenerateAssemblesMessagesAndTrims(t *testing.T) {
	t.Parallel()

	fake := &fakeChatModel{response: &schema.Message{Content: "  the answer \n"}}
	gw, err := New(fake)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	history := []*schema.Message{
		schema.UserMessage("earlier question"),
		schema.AssistantMessage("earlier answer", nil),
	}

	got, err := gw.Generate(context.Background(), "system text", "user text", history)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "the answer" {
		t.Fatalf("Generate() = %q, want trimmed answer", got)
	}

	if len(fake.received) != 4 {
		t.Fatalf("model received %d messages, want 4", len(fake.received))
	}
	if fake.received[0].Role != schema.System || fake.received[0].Content != "system text" {
		t.Fatalf("first message = %+v, want system instruction", fake.received[0])
	}
	if fake.received[1].Content != "earlier question" || fake.received[2].Content != "earlier answer" {
		t.Fatal("prior turns not replayed in order")
	}
	if fake.received[3].Role != schema.User || fake.received[3].Content != "user text" {
		t.Fatalf("last message = %+v, want user instruction", fake.received[3])
	}
}

func TestGenerateWrapsModelFailure(t *testing.T) {
	t.Parallel()

	fake := &fakeChatModel{err: errors.New("connection refused")}
	gw, err := New(fake)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = gw.Generate(context.Background(), "s", "u", nil)
	if !errors.Is(err, contractx.ErrInference) {
		t.Fatalf("Generate() error = %v, want ErrInference", err)
	}
}

func TestGenerateAllowsEmptyContent(t *testing.T) {
	t.Parallel()

	// A whitespace-only completion is a valid generation, not a
	// transport failure; callers decide what an empty text means.
	fake := &fakeChatModel{response: &schema.Message{Content: "   "}}
	gw, err := New(fake)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got, err := gw.Generate(context.Background(), "s", "u", nil)
	if err != nil {
		t.Fatalf("Generate() error = %v, want nil", err)
	}
	if got != "" {
		t.Fatalf("Generate() = %q, want empty string", got)
	}
}

func TestGenerateRejectsNilMessage(t *testing.T) {
	t.Parallel()

	fake := &fakeChatModel{response: nil}
	gw, err := New(fake)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = gw.Generate(context.Background(), "s", "u", nil)
	if !errors.Is(err, contractx.ErrInference) {
		t.Fatalf("Generate() error = %v, want ErrInference", err)
	}
}

func TestNewRequiresModel(t *testing.T) {
	t.Parallel()

	if _, err := New(nil); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("New(nil) error = %v, want ErrValidation", err)
	}
}
