package roundnode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"

	contractx "github.com/frankwear858/ai-council/council/contract"
)

var ErrInvalidQuestion = errors.New("question is empty")

type GraphInput struct {
	Question string
	Members  []*contractx.Persona
	History  []*schema.Message
}

type GraphOutput struct {
	Result contractx.RoundResult
}

type GraphState struct {
	Question string
	Members  []*contractx.Persona
	History  []*schema.Message

	// Answers and Answered stay index-aligned: Answered[i] is the
	// persona that produced Answers[i]. Counters are applied to
	// Answered only at resolve time, after the judge pass succeeded.
	Answers  []contractx.Answer
	Answered []*contractx.Persona

	Verdict    string
	WinnerName string
}

func ValidateQuestion(in GraphInput) (*GraphState, error) {
	question := strings.TrimSpace(in.Question)
	if question == "" {
		return nil, ErrInvalidQuestion
	}
	if len(in.Members) == 0 {
		return nil, fmt.Errorf("%w: round needs at least one persona", contractx.ErrValidation)
	}

	return &GraphState{
		Question: question,
		Members:  in.Members,
		History:  in.History,
	}, nil
}
