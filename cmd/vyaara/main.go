package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/meera/vyaara/config"
	"github.com/meera/vyaara/internal/agent"
	"github.com/meera/vyaara/internal/classify"
	"github.com/meera/vyaara/internal/discord"
	"github.com/meera/vyaara/internal/journal"
	"github.com/meera/vyaara/internal/llm"
	"github.com/meera/vyaara/internal/notify"
	"github.com/meera/vyaara/internal/scheduler"
	"github.com/meera/vyaara/internal/store"
)

func main() {
	cfg := config.Load()

	cmd := "bot"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	if cfg.DiscordToken == "" {
		log.Fatalf("DISCORD_BOT_TOKEN is not defined")
	}

	switch cmd {
	case "bot":
		runBot(cfg)
	case "checkin", "milestones", "morning", "night":
		runBatch(cfg, cmd)
	default:
		fmt.Fprintf(os.Stderr, "usage: vyaara [bot|checkin|milestones|morning|night]\n")
		os.Exit(2)
	}
}

func runBot(cfg *config.Config) {
	if cfg.LLMProvider != "ollama" && cfg.CompletionKey() == "" {
		log.Fatalf("no API key configured for LLM provider %q", cfg.LLMProvider)
	}

	client, err := llm.NewClient(llm.ProviderConfig{
		Provider: cfg.LLMProvider,
		APIKey:   cfg.CompletionKey(),
		Model:    cfg.LLMModel,
		BaseURL:  cfg.OllamaBaseURL,
	})
	if err != nil {
		log.Fatalf("failed to create LLM client: %v", err)
	}

	st := store.Open(cfg.StorePath)

	jn, err := journal.Open(cfg.JournalPath)
	if err != nil {
		log.Fatalf("failed to open journal: %v", err)
	}
	defer jn.Close()

	ag := agent.New(client, classify.NewDetector())

	bot, err := discord.NewBot(cfg.DiscordToken, ag, st, jn)
	if err != nil {
		log.Fatalf("failed to start Discord bot: %v", err)
	}
	defer bot.Close()

	sched := scheduler.New(st, bot, cfg.CheckInCron)
	sched.Start()
	defer sched.Stop()

	log.Println("bot is running. Press Ctrl+C to exit.")
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down.")
}

// runBatch executes one notifier pass and exits, for cron-style
// invocation alongside the long-running bot process.
func runBatch(cfg *config.Config, job string) {
	sender, err := discord.NewSender(cfg.DiscordToken)
	if err != nil {
		log.Fatalf("failed to connect to Discord: %v", err)
	}
	defer sender.Close()

	st := store.Open(cfg.StorePath)

	switch job {
	case "checkin":
		notify.CheckIns(st, sender)
	case "milestones":
		notify.Milestones(st, sender)
	case "morning", "night":
		jn, err := journal.Open(cfg.JournalPath)
		if err != nil {
			log.Fatalf("failed to open journal: %v", err)
		}
		defer jn.Close()
		if job == "morning" {
			notify.Morning(jn, sender)
		} else {
			notify.Night(jn, sender)
		}
	}

	log.Printf("%s run complete", job)
}
