package roundnode

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/frankwear858/ai-council/council/contract"
	promptx "github.com/frankwear858/ai-council/council/prompt"
)

// JudgeAnswers runs the memory-free judging pass over the collected
// answers. A gateway failure here is NOT soft-handled: it propagates
// and aborts the round before any state is mutated. An unusable
// verdict, on the other hand, falls back to the first answering
// persona so every judged round has exactly one winner.
func JudgeAnswers(
	ctx context.Context,
	in *GraphState,
	gw contractx.Gateway,
	judgeInstruction string,
) (*GraphState, error) {
	if in == nil || len(in.Answers) == 0 {
		return nil, fmt.Errorf("%w: no answers to judge", contractx.ErrValidation)
	}

	verdict, err := gw.Generate(ctx, judgeInstruction, promptx.JudgePrompt(in.Question, in.Answers), nil)
	if err != nil {
		return nil, err
	}
	in.Verdict = verdict

	winner, ok := ParseVerdict(verdict, in.Answers)
	if !ok {
		winner = in.Answers[0].Persona
		log.Warn().
			Str("verdict", verdict).
			Str("fallback", winner).
			Msg("judge verdict names no persona, falling back to first")
	}
	in.WinnerName = winner

	return in, nil
}

// ParseVerdict extracts the chosen persona from the judge's raw
// output. Matching is case-insensitive substring search over the
// candidates in collection order, so when the output mentions several
// names the earliest-listed candidate wins, not the one mentioned
// first in the text.
func ParseVerdict(raw string, answers []contractx.Answer) (string, bool) {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	for _, a := range answers {
		if strings.Contains(lowered, strings.ToLower(a.Persona)) {
			return a.Persona, true
		}
	}
	return "", false
}
