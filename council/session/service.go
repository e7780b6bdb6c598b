package session

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"
	"github.com/rs/zerolog/log"

	contractx "github.com/frankwear858/ai-council/council/contract"
	memoryx "github.com/frankwear858/ai-council/council/memory"
	roundnode "github.com/frankwear858/ai-council/council/nodes/round"
	promptx "github.com/frankwear858/ai-council/council/prompt"
	rosterx "github.com/frankwear858/ai-council/council/roster"
)

var ErrInvalidQuestion = roundnode.ErrInvalidQuestion

// Session runs question rounds against a council. The round pipeline
// (validate -> collect -> judge -> resolve) is compiled once; the
// roster and memory are passed per round so the caller can swap the
// roster between rounds (e.g. after an elimination pass).
type Session struct {
	members contractx.Gateway
	judge   contractx.Gateway
	prompts promptx.Set

	archive     contractx.Archive
	events      contractx.Publisher
	eventsTopic string

	graphRunner compose.Runnable[roundnode.GraphInput, roundnode.GraphOutput]
}

type Option func(*Session)

// WithJudgeGateway routes the judging pass through its own gateway,
// e.g. a differently configured model.
func WithJudgeGateway(gw contractx.Gateway) Option {
	return func(s *Session) {
		if gw != nil {
			s.judge = gw
		}
	}
}

// WithArchive records every completed round to the archive.
// Archive failures degrade to a warning; they never fail the round.
func WithArchive(a contractx.Archive) Option {
	return func(s *Session) {
		s.archive = a
	}
}

// WithPublisher emits a verdict event per completed round.
func WithPublisher(p contractx.Publisher, topic string) Option {
	return func(s *Session) {
		s.events = p
		s.eventsTopic = topic
	}
}

func New(members contractx.Gateway, opts ...Option) (*Session, error) {
	if members == nil {
		return nil, fmt.Errorf("%w: member gateway is required", contractx.ErrValidation)
	}

	s := &Session{
		members: members,
		judge:   members,
		prompts: promptx.LoadSet(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	graphRunner, err := s.compileRoundGraph(context.Background())
	if err != nil {
		return nil, err
	}
	s.graphRunner = graphRunner

	return s, nil
}

// RunRound asks every roster persona the question (conditioned on the
// conversation), judges the answer set, and applies counters. The
// winning turn is NOT appended to memory here; the caller owns that,
// along with serializing rounds and elimination passes.
func (s *Session) RunRound(
	ctx context.Context,
	question string,
	ros *rosterx.Roster,
	mem *memoryx.Conversation,
) (contractx.RoundResult, error) {
	if ros == nil {
		return contractx.RoundResult{}, fmt.Errorf("%w: roster is required", contractx.ErrValidation)
	}

	in := roundnode.GraphInput{
		Question: question,
		Members:  ros.Members(),
	}
	if mem != nil {
		in.History = mem.Context()
	}

	out, err := s.graphRunner.Invoke(ctx, in)
	if err != nil {
		return contractx.RoundResult{}, err
	}
	result := out.Result

	log.Info().
		Str("winner", result.WinnerName).
		Int("answers", len(result.Answers)).
		Msg("council round decided")

	s.recordRound(ctx, question, result)
	return result, nil
}

// recordRound pushes the finished round to the optional side channels.
// Both are best effort: the round already completed.
func (s *Session) recordRound(ctx context.Context, question string, result contractx.RoundResult) {
	if s.archive != nil {
		if err := s.archive.Record(ctx, question, result); err != nil {
			log.Warn().Err(err).Msg("round archive write failed")
		}
	}
	if s.events != nil {
		payload := map[string]any{
			"question": question,
			"winner":   result.WinnerName,
			"answers":  len(result.Answers),
		}
		if err := s.events.PublishJSON(ctx, s.eventsTopic, payload); err != nil {
			log.Warn().Err(err).Msg("round event publish failed")
		}
	}
}
