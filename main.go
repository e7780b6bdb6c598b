package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	archivex "github.com/frankwear858/ai-council/council/archive"
	gatewayx "github.com/frankwear858/ai-council/council/gateway"
	llmx "github.com/frankwear858/ai-council/council/llm"
	memoryx "github.com/frankwear858/ai-council/council/memory"
	rosterx "github.com/frankwear858/ai-council/council/roster"
	sessionx "github.com/frankwear858/ai-council/council/session"
	configx "github.com/frankwear858/ai-council/pkg/config"
	_ "github.com/frankwear858/ai-council/pkg/logger/autoload"
	openrouterx "github.com/frankwear858/ai-council/pkg/openrouter"
	qstashx "github.com/frankwear858/ai-council/pkg/qstash"
)

type AppConfig struct {
	MaxTurns       int  `envconfig:"MAX_TURNS" split_words:"true" default:"10"`
	EliminateEvery int  `envconfig:"ELIMINATE_EVERY" split_words:"true" default:"5"`
	ArchiveEnabled bool `envconfig:"ARCHIVE_ENABLED" split_words:"true" default:"false"`
	EventsEnabled  bool `envconfig:"EVENTS_ENABLED" split_words:"true" default:"false"`

	EventsDestination string `envconfig:"EVENTS_DESTINATION" split_words:"true"`
}

func main() {
	ctx := context.Background()

	appCfg := configx.MustNew[AppConfig]("COUNCIL")
	elimCfg := configx.MustNew[rosterx.EliminationConfig]("COUNCIL_ELIMINATION")

	llmCfg := configx.MustNew[llmx.Config]("OPENROUTER")
	if err := llmCfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid llm config")
	}

	if err := openrouterx.VerifyCredentials(ctx, llmCfg.OpenRouterFor(llmx.RoleMember)); err != nil {
		log.Warn().Err(err).Msg("openrouter credential check failed, continuing anyway")
	}

	memberGW, err := gatewayx.NewFromConfig(ctx, llmCfg.OpenRouterFor(llmx.RoleMember))
	if err != nil {
		log.Fatal().Err(err).Msg("create member gateway")
	}
	judgeGW, err := gatewayx.NewFromConfig(ctx, llmCfg.OpenRouterFor(llmx.RoleJudge))
	if err != nil {
		log.Fatal().Err(err).Msg("create judge gateway")
	}

	opts := []sessionx.Option{sessionx.WithJudgeGateway(judgeGW)}

	if appCfg.ArchiveEnabled {
		store, err := archivex.New(*configx.MustNew[archivex.Config]("COUNCIL_ARCHIVE"))
		if err != nil {
			log.Fatal().Err(err).Msg("create round archive")
		}
		defer store.Close()
		if err := store.Init(ctx); err != nil {
			log.Fatal().Err(err).Msg("init round archive")
		}
		opts = append(opts, sessionx.WithArchive(store))
	}

	if appCfg.EventsEnabled {
		client := qstashx.MustNew(*configx.MustNew[qstashx.Config]("QSTASH"))
		opts = append(opts, sessionx.WithPublisher(client, appCfg.EventsDestination))
	}

	sess, err := sessionx.New(memberGW, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("create council session")
	}

	ros := rosterx.Founding()
	mem := memoryx.New(appCfg.MaxTurns)

	fmt.Println("=== AI Council ===")
	fmt.Printf("Model: %s\n", llmCfg.Model)
	fmt.Println("Type a question and press Enter. Type 'quit' to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	rounds := 0
	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			fmt.Println("\nExiting.")
			return
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		switch strings.ToLower(question) {
		case "quit", "exit":
			fmt.Println("Goodbye.")
			return
		}

		result, err := sess.RunRound(ctx, question, ros, mem)
		if err != nil {
			fmt.Printf("Round failed: %v\n", err)
			continue
		}
		rounds++

		fmt.Println("\n================= Council Answers =================")
		for _, a := range result.Answers {
			fmt.Printf("\n===== %s =====\n%s\n", strings.ToUpper(a.Persona), a.Text)
		}

		fmt.Println("\n================= Council Verdict =================")
		fmt.Printf("Winning member: %s\n\nAnswer:\n%s\n", result.WinnerName, result.WinnerAnswer)

		mem.AddTurn(question, result.WinnerAnswer)

		if appCfg.EliminateEvery > 0 && rounds%appCfg.EliminateEvery == 0 {
			fmt.Println("\n[Council maintenance] Checking for underperforming members...")
			var swaps []rosterx.Replacement
			ros, swaps = rosterx.Evaluate(ros, *elimCfg)
			for _, swap := range swaps {
				fmt.Printf("Replaced %s (win rate %.2f%%) with %s\n",
					swap.Eliminated, swap.WinRate*100, swap.Successor)
			}
		}

		fmt.Println("\n[Stats]")
		for _, stat := range ros.Stats() {
			fmt.Printf("%s: %d wins / %d answers (win rate %.2f%%)\n",
				stat.Name, stat.Wins, stat.TotalAnswers, stat.WinRate*100)
		}
	}
}
