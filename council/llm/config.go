package llm

import (
	"fmt"
	"strings"
	"time"

	contractx "github.com/frankwear858/ai-council/council/contract"
	openrouterx "github.com/frankwear858/ai-council/pkg/openrouter"
)

// Role selects which side of the council a model invocation serves.
type Role string

const (
	RoleMember Role = "member"
	RoleJudge  Role = "judge"
)

// Config holds the shared OpenRouter settings plus optional per-role
// overrides. By default the judge runs the same model as the members,
// matching the council's "same model, neutral instruction" setup.
type Config struct {
	BaseURL            string        `envconfig:"BASE_URL" split_words:"true" default:"https://openrouter.ai/api/v1"`
	APIKey             string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	Model              string        `envconfig:"MODEL" split_words:"true" required:"true"`
	MaxCompletionToken int           `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"2000"`
	Temperature        float32       `envconfig:"TEMPERATURE" split_words:"true" default:"0.7"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"120s"`
	SiteURL            string        `envconfig:"SITE_URL" split_words:"true"`
	SiteName           string        `envconfig:"SITE_NAME" split_words:"true"`

	JudgeModel       string  `envconfig:"JUDGE_MODEL" split_words:"true"`
	JudgeTemperature float32 `envconfig:"JUDGE_TEMPERATURE" split_words:"true" default:"-1"`
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: openrouter api key is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: default model is required", contractx.ErrValidation)
	}
	return nil
}

func (c Config) OpenRouterFor(role Role) openrouterx.Config {
	modelName := strings.TrimSpace(c.Model)
	temp := c.Temperature

	if role == RoleJudge {
		if v := strings.TrimSpace(c.JudgeModel); v != "" {
			modelName = v
		}
		if c.JudgeTemperature >= 0 {
			temp = c.JudgeTemperature
		}
	}

	maxCompletionToken := c.MaxCompletionToken
	return openrouterx.Config{
		BaseURL:            strings.TrimSpace(c.BaseURL),
		APIKey:             strings.TrimSpace(c.APIKey),
		Model:              modelName,
		MaxCompletionToken: &maxCompletionToken,
		Temperature:        temp,
		Timeout:            c.Timeout,
		SiteURL:            strings.TrimSpace(c.SiteURL),
		SiteName:           strings.TrimSpace(c.SiteName),
	}
}
