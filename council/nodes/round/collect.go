package roundnode

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "github.com/frankwear858/ai-council/council/contract"
	promptx "github.com/frankwear858/ai-council/council/prompt"
)

// CollectAnswers asks every persona the question, conditioned on the
// shared conversation history. A persona whose generation fails is
// excluded from the round; the round only aborts when nobody answers.
// No counters are touched here -- that waits for the judge verdict.
func CollectAnswers(
	ctx context.Context,
	in *GraphState,
	gw contractx.Gateway,
) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	for _, member := range in.Members {
		user := promptx.MemberPrompt(member.Name, member.Role, in.Question)

		text, err := gw.Generate(ctx, member.Instruction, user, in.History)
		if err != nil {
			if errors.Is(err, contractx.ErrInference) {
				log.Warn().
					Str("persona", member.Name).
					Err(err).
					Msg("persona excluded from round")
				continue
			}
			return nil, err
		}

		in.Answers = append(in.Answers, contractx.Answer{Persona: member.Name, Text: text})
		in.Answered = append(in.Answered, member)
	}

	if len(in.Answers) == 0 {
		return nil, fmt.Errorf("%w: question %q", contractx.ErrNoAnswers, in.Question)
	}
	return in, nil
}
