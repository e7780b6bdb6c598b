package roster

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/frankwear858/ai-council/council/contract"
	promptx "github.com/frankwear858/ai-council/council/prompt"
)

const (
	DefaultThresholdAnswers = 10
	DefaultMinWinRate       = 0.1

	traineeRole   = "new trainee council member"
	traineePrefix = "Trainee_"
)

// EliminationConfig controls the periodic cull of underperforming
// personas. A persona is only judged once it has ThresholdAnswers
// samples; below that it is retained regardless of win rate.
type EliminationConfig struct {
	ThresholdAnswers int     `envconfig:"THRESHOLD_ANSWERS" split_words:"true" default:"10"`
	MinWinRate       float64 `envconfig:"MIN_WIN_RATE" split_words:"true" default:"0.1"`
}

func DefaultEliminationConfig() EliminationConfig {
	return EliminationConfig{
		ThresholdAnswers: DefaultThresholdAnswers,
		MinWinRate:       DefaultMinWinRate,
	}
}

// Replacement records one swap performed by Evaluate.
type Replacement struct {
	Eliminated string
	WinRate    float64
	Successor  string
}

// Evaluate scans the roster and replaces every persona whose win rate
// is strictly below cfg.MinWinRate after at least cfg.ThresholdAnswers
// answers. It returns a complete new roster; the input roster is left
// untouched, so the caller swaps atomically between rounds. Retained
// personas keep their counters.
func Evaluate(r *Roster, cfg EliminationConfig) (*Roster, []Replacement) {
	if cfg.ThresholdAnswers <= 0 {
		cfg.ThresholdAnswers = DefaultThresholdAnswers
	}

	prompts := promptx.LoadSet()
	next := make([]*contractx.Persona, 0, len(r.members))
	var swaps []Replacement

	taken := make(map[string]struct{}, len(r.members))
	for _, m := range r.members {
		taken[strings.ToLower(m.Name)] = struct{}{}
	}

	for _, m := range r.members {
		if m.TotalAnswers < cfg.ThresholdAnswers {
			next = append(next, m)
			continue
		}
		rate := m.WinRate()
		if rate >= cfg.MinWinRate {
			next = append(next, m)
			continue
		}

		successor := &contractx.Persona{
			Name:        traineeName(m.Name, taken),
			Role:        traineeRole,
			Instruction: prompts.Trainee,
		}
		taken[strings.ToLower(successor.Name)] = struct{}{}
		next = append(next, successor)
		swaps = append(swaps, Replacement{
			Eliminated: m.Name,
			WinRate:    rate,
			Successor:  successor.Name,
		})

		log.Info().
			Str("eliminated", m.Name).
			Float64("win_rate", rate).
			Str("successor", successor.Name).
			Msg("council persona replaced")
	}

	return &Roster{members: next}, swaps
}

// traineeName derives a replacement identity from the eliminated one,
// appending a counter when the derived name is already taken (a
// previously replaced trainee can itself be eliminated).
func traineeName(old string, taken map[string]struct{}) string {
	base := traineePrefix + old
	name := base
	for n := 2; ; n++ {
		if _, exists := taken[strings.ToLower(name)]; !exists {
			return name
		}
		name = fmt.Sprintf("%s_%d", base, n)
	}
}
