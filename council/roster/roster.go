package roster

import (
	"fmt"
	"strings"

	contractx "github.com/frankwear858/ai-council/council/contract"
	promptx "github.com/frankwear858/ai-council/council/prompt"
)

// Roster is the set of currently active council personas. Iteration
// order is the construction order and stays stable for the roster's
// lifetime, so answer collection and verdict tie-breaks are
// deterministic. The roster is replaced wholesale by the elimination
// policy, never mutated in place.
type Roster struct {
	members []*contractx.Persona
}

func New(members ...*contractx.Persona) (*Roster, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: roster needs at least one persona", contractx.ErrValidation)
	}

	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		if m == nil {
			return nil, fmt.Errorf("%w: persona is nil", contractx.ErrValidation)
		}
		name := strings.TrimSpace(m.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: persona name is empty", contractx.ErrValidation)
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: duplicate persona name %q", contractx.ErrValidation, m.Name)
		}
		seen[key] = struct{}{}
		if m.Wins > m.TotalAnswers {
			return nil, fmt.Errorf("%w: persona %q has wins > total answers", contractx.ErrValidation, m.Name)
		}
	}

	out := make([]*contractx.Persona, len(members))
	copy(out, members)
	return &Roster{members: out}, nil
}

// Founding builds the initial three-member council.
func Founding() *Roster {
	prompts := promptx.LoadSet()
	r, err := New(
		&contractx.Persona{Name: "Analyst", Role: "careful analyst", Instruction: prompts.Analyst},
		&contractx.Persona{Name: "Optimist", Role: "optimistic strategist", Instruction: prompts.Optimist},
		&contractx.Persona{Name: "Skeptic", Role: "critical reviewer", Instruction: prompts.Skeptic},
	)
	if err != nil {
		// founding members are static; a failure here is a programming error
		panic(err)
	}
	return r
}

// Members returns the personas in iteration order. The slice is a
// copy; the persona pointers are shared so round resolution can update
// counters.
func (r *Roster) Members() []*contractx.Persona {
	out := make([]*contractx.Persona, len(r.members))
	copy(out, r.members)
	return out
}

func (r *Roster) Len() int {
	return len(r.members)
}

// Contains reports whether a persona with the given name (compared
// case-insensitively, to match verdict parsing) is on the roster.
func (r *Roster) Contains(name string) bool {
	for _, m := range r.members {
		if strings.EqualFold(m.Name, name) {
			return true
		}
	}
	return false
}

// Stat is a display snapshot of one persona's performance.
type Stat struct {
	Name         string
	Wins         int
	TotalAnswers int
	WinRate      float64
}

func (r *Roster) Stats() []Stat {
	out := make([]Stat, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, Stat{
			Name:         m.Name,
			Wins:         m.Wins,
			TotalAnswers: m.TotalAnswers,
			WinRate:      m.WinRate(),
		})
	}
	return out
}
