package prompt

import (
	"fmt"
	"strings"

	contractx "github.com/frankwear858/ai-council/council/contract"
)

// MemberPrompt frames the user's question for one council member. The
// member sees the shared conversation as chat history, so the framing
// only has to name the member and restate the question.
func MemberPrompt(name, role, question string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, a %s in a council of AIs.\n", name, role)
	b.WriteString("You see the recent conversation above as context. ")
	b.WriteString("Answer the user's new question clearly and concisely.\n\n")
	fmt.Fprintf(&b, "User's current question: %s", question)
	return b.String()
}

// JudgePrompt lists the question followed by every candidate answer
// labeled by member name, and asks for the winning name alone. Answer
// order is preserved from the round's collection order.
func JudgePrompt(question string, answers []contractx.Answer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question:\n%s\n\nAnswers:\n", question)
	for _, a := range answers {
		fmt.Fprintf(&b, "--- Member: %s ---\n%s\n\n", a.Persona, a.Text)
	}
	b.WriteString("Now, choose the single best answer overall.\n")
	b.WriteString("Reply with exactly the NAME of the winning member and nothing else.")
	return b.String()
}
