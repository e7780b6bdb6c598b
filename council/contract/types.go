package contract

// Persona is one council member: a fixed identity plus running
// performance counters. Counters are touched only after a round's
// verdict is in, so Wins <= TotalAnswers always holds.
type Persona struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	Instruction  string `json:"instruction"`
	Wins         int    `json:"wins"`
	TotalAnswers int    `json:"total_answers"`
}

func (p *Persona) WinRate() float64 {
	if p == nil || p.TotalAnswers <= 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.TotalAnswers)
}

// Turn is one completed exchange: the user's question and the answer
// the council accepted for it.
type Turn struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Answer pairs a persona name with the text it produced this round.
// Order matters: answers are kept in roster iteration order so verdict
// tie-breaks and the judge fallback stay deterministic.
type Answer struct {
	Persona string `json:"persona"`
	Text    string `json:"text"`
}

// RoundResult is the outcome of one full question round. It is
// ephemeral: consumed by the caller to update memory and display, then
// discarded.
type RoundResult struct {
	Answers      []Answer `json:"answers"`
	WinnerName   string   `json:"winner_name"`
	WinnerAnswer string   `json:"winner_answer"`
}

// AnswerMap returns the answers keyed by persona name.
func (r RoundResult) AnswerMap() map[string]string {
	out := make(map[string]string, len(r.Answers))
	for _, a := range r.Answers {
		out[a.Persona] = a.Text
	}
	return out
}
