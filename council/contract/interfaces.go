package contract

import (
	"context"

	"github.com/cloudwego/eino/schema"
)

// Gateway is the single capability the council consumes from the
// inference side: turn a system instruction, a user instruction, and
// optional prior-turn context into response text. Implementations must
// fail with a typed ErrInference rather than hang.
type Gateway interface {
	Generate(ctx context.Context, system string, user string, history []*schema.Message) (string, error)
}

// Archive is an optional append-only sink for completed rounds. It is
// write-only from the council's perspective: nothing is ever read back.
type Archive interface {
	Record(ctx context.Context, question string, result RoundResult) error
}

// Publisher emits round events to an external message queue.
type Publisher interface {
	PublishJSON(ctx context.Context, destination string, payload any) error
}
