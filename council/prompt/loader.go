package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/judge.txt
	judgeRaw string

	//go:embed template/trainee.txt
	traineeRaw string

	//go:embed template/analyst.txt
	analystRaw string

	//go:embed template/optimist.txt
	optimistRaw string

	//go:embed template/skeptic.txt
	skepticRaw string
)

// Set holds loaded prompt content.
type Set struct {
	Judge    string
	Trainee  string
	Analyst  string
	Optimist string
	Skeptic  string
}

// LoadSet returns a Set with trimmed prompt strings.
// Safe to call concurrently; the embed is compile-time, and trimming is cheap.
func LoadSet() Set {
	return Set{
		Judge:    strings.TrimSpace(judgeRaw),
		Trainee:  strings.TrimSpace(traineeRaw),
		Analyst:  strings.TrimSpace(analystRaw),
		Optimist: strings.TrimSpace(optimistRaw),
		Skeptic:  strings.TrimSpace(skepticRaw),
	}
}
