package session

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"

	roundnode "github.com/frankwear858/ai-council/council/nodes/round"
)

func (s *Session) compileRoundGraph(
	ctx context.Context,
) (compose.Runnable[roundnode.GraphInput, roundnode.GraphOutput], error) {
	graph := compose.NewGraph[roundnode.GraphInput, roundnode.GraphOutput]()

	if err := graph.AddLambdaNode("validate_question",
		compose.InvokableLambda(func(ctx context.Context, in roundnode.GraphInput) (*roundnode.GraphState, error) {
			return roundnode.ValidateQuestion(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node validate_question: %w", err)
	}

	if err := graph.AddLambdaNode("collect_answers",
		compose.InvokableLambda(func(ctx context.Context, in *roundnode.GraphState) (*roundnode.GraphState, error) {
			return roundnode.CollectAnswers(ctx, in, s.members)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node collect_answers: %w", err)
	}

	if err := graph.AddLambdaNode("judge_answers",
		compose.InvokableLambda(func(ctx context.Context, in *roundnode.GraphState) (*roundnode.GraphState, error) {
			return roundnode.JudgeAnswers(ctx, in, s.judge, s.prompts.Judge)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node judge_answers: %w", err)
	}

	if err := graph.AddLambdaNode("resolve_round",
		compose.InvokableLambda(func(ctx context.Context, in *roundnode.GraphState) (roundnode.GraphOutput, error) {
			return roundnode.ResolveRound(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node resolve_round: %w", err)
	}

	edges := [][2]string{
		{compose.START, "validate_question"},
		{"validate_question", "collect_answers"},
		{"collect_answers", "judge_answers"},
		{"judge_answers", "resolve_round"},
		{"resolve_round", compose.END},
	}

	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("council.run_round"))
	if err != nil {
		return nil, fmt.Errorf("compile round graph: %w", err)
	}
	return runner, nil
}
