package memory

import (
	"github.com/cloudwego/eino/schema"

	contractx "github.com/frankwear858/ai-council/council/contract"
)

const DefaultMaxTurns = 10

// Conversation is the council's shared short-term memory: the most
// recent question/accepted-answer turns, replayed as chat history to
// every persona on each new question. Not safe for concurrent use; the
// caller serializes rounds.
type Conversation struct {
	maxTurns int
	turns    []contractx.Turn
}

func New(maxTurns int) *Conversation {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &Conversation{maxTurns: maxTurns}
}

// AddTurn appends a completed turn and evicts the oldest turns beyond
// the bound.
func (c *Conversation) AddTurn(question, answer string) {
	c.turns = append(c.turns, contractx.Turn{Question: question, Answer: answer})
	if len(c.turns) > c.maxTurns {
		c.turns = c.turns[len(c.turns)-c.maxTurns:]
	}
}

// Context renders the stored turns as alternating user/assistant
// messages, oldest first. Empty memory yields an empty slice.
func (c *Conversation) Context() []*schema.Message {
	messages := make([]*schema.Message, 0, len(c.turns)*2)
	for _, turn := range c.turns {
		messages = append(messages,
			schema.UserMessage(turn.Question),
			schema.AssistantMessage(turn.Answer, nil),
		)
	}
	return messages
}

func (c *Conversation) Len() int {
	return len(c.turns)
}

// Turns returns a copy of the stored turns, oldest first.
func (c *Conversation) Turns() []contractx.Turn {
	out := make([]contractx.Turn, len(c.turns))
	copy(out, c.turns)
	return out
}
