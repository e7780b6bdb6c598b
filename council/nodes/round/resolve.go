package roundnode

import (
	"fmt"

	contractx "github.com/frankwear858/ai-council/council/contract"
)

// ResolveRound applies the deferred counter updates and assembles the
// round result. Every answering persona gets one more TotalAnswers and
// the winner one more Wins; personas excluded during collection are
// untouched. This is the only place a round mutates personas, which
// keeps a judge failure side-effect free.
func ResolveRound(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if in.WinnerName == "" {
		return GraphOutput{}, fmt.Errorf("%w: round has no winner", contractx.ErrValidation)
	}

	var winnerAnswer string
	found := false
	for _, a := range in.Answers {
		if a.Persona == in.WinnerName {
			winnerAnswer = a.Text
			found = true
			break
		}
	}
	if !found {
		return GraphOutput{}, fmt.Errorf("%w: winner %q has no recorded answer", contractx.ErrValidation, in.WinnerName)
	}

	for _, member := range in.Answered {
		member.TotalAnswers++
		if member.Name == in.WinnerName {
			member.Wins++
		}
	}

	return GraphOutput{
		Result: contractx.RoundResult{
			Answers:      in.Answers,
			WinnerName:   in.WinnerName,
			WinnerAnswer: winnerAnswer,
		},
	}, nil
}
